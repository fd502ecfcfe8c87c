// Package main runs the in-memory mock of the breach, paste and password APIs
// used during development, demos and CLI tests.
//
// HTTP API
//
//	GET /api/breachedaccount/{account}?includeUnverified=&truncateResponse=&domain=
//	    Breaches the account is in. 404 when there are none.
//
//	GET /api/breaches?domain=
//	    The breach catalog, optionally for one domain.
//
//	GET /api/breach/{name}
//	    A single breach. 404 for an unknown name.
//
//	GET /api/dataclasses
//	    Every data class name.
//
//	GET /api/pasteaccount/{account}
//	    Pastes the account is in. 404 when there are none.
//
//	GET /pwnedpassword/{password}
//	    The occurrence count as a JSON number. 404 for an unseen password.
//
//	GET /metrics
//	    Prometheus metrics.
//
// Behaviour
//
//   - /api routes answer 400 without an api-version header.
//   - --rate-limit-every N answers every Nth /api request with 429.
//   - Data comes from --fixtures, or the built-in sample when the file is
//     absent; --write-fixtures dumps that sample for editing.
//   - Access logs record method, route pattern, status and duration.
//
// Point the CLI at it with
//
//	pwned --service-url http://127.0.0.1:8080/api/ --passwords-url http://127.0.0.1:8080/ ...
package main
