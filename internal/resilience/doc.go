// Package resilience wraps a single remote call in a timeout and a retry
// policy chosen by endpoint class.
//
// # Profiles
//
//   - Breach: 30s overall deadline, at most 2 retries, only after HTTP 429 or
//     a transport failure, waiting base·2^(n-1) before retry n (2s, 4s with
//     the default base).
//   - Password: 2s overall deadline, at most 3 retries after a transport
//     failure or a 5xx, exponential spacing from a small base capped at a
//     quarter of the deadline.
//
// Decisions only look at the failure kind and status code of the call, never
// at a decoded body, so decode failures are not retried. Backoff state is
// created per call, which gives every concurrent call its own retry budget.
//
// A caller cancelling its context ends the call at once, even during a backoff
// wait, with a Cancelled error; an expired deadline yields Timeout.
package resilience
