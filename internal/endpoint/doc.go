// Package endpoint holds the catalog of remote operations and builds their
// request URLs.
//
// Each Operation maps to a path on one of two base URLs: the breach/paste
// API or the passwords API. The catalog also fixes which query filters an
// operation accepts and the order they are emitted in, so a given input always
// produces the same URL byte for byte:
//
//	breachedaccount/{account}  includeUnverified, truncateResponse, domain
//	breaches                   domain
//	breach/{name}
//	dataclasses
//	pasteaccount/{account}
//	pwnedpassword/{password}   (passwords API)
//
// Path parameters are escaped with url.PathEscape. Text filters are
// query-escaped; boolean filters are written as the literal tokens true and
// false. Filters left at their default are omitted, and a URL whose filters are
// all at default carries no query string.
package endpoint
