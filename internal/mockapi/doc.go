// Package mockapi simulates the breach, paste and password APIs from a
// fixture dataset.
//
// Breach routes live under /api and require an api-version header; the
// password route lives at the root, mirroring the two real base URLs. Every
// Nth breach request can be answered with 429 to exercise client retries.
// Access logs name the route pattern, never the path, so passwords and email
// addresses stay out of them.
package mockapi
