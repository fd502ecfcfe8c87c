// Package transport performs the HTTP exchange of a lookup and decodes the
// response body.
//
// A Client issues one GET per call with a fixed header set (Accept,
// User-Agent and, for the breach API, api-version). A 2xx body is decoded as
// JSON into the caller's value; anything else becomes a typed error:
//
//   - non-2xx status: domain.KindRemote carrying the status code, body unread
//   - malformed or mismatched body: domain.KindDecode
//   - connectivity failure: domain.KindTransport
//
// The package never retries and never interprets a status; 404 handling
// belongs to the lookup layer.
package transport
