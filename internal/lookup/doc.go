// Package lookup implements the breach, paste and password lookups.
//
// BreachClient and PasswordClient are independent. Each builds its URLs with
// an endpoint.Builder, runs the request under its own resilience.Policy and
// decodes through a transport.Client. Both are safe for concurrent use and
// hold no mutable state after construction.
//
// A 404 from the account, paste and password endpoints means "nothing
// found" and is returned as an empty result. Every other failure reaches the
// caller as a *domain.Error.
package lookup
