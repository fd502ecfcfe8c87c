// Package validation rejects passwords that appear in known breaches.
//
// It is the hook identity systems call while creating an account or changing
// a password. A lookup failure never produces an accepted verdict.
package validation
