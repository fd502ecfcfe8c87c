// Package pwned checks email addresses and passwords against the
// haveibeenpwned breach, paste and password APIs.
//
// Build a BreachClient or PasswordClient from a Config and share it between
// goroutines. Each call runs under its own timeout and retry budget and
// returns either a typed result or an *Error whose Kind says what failed:
//
//	passwords, err := pwned.NewPasswordClient(pwned.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	v := pwned.NewValidator(passwords, nil)
//	if err := v.ValidatePassword(ctx, candidate); err != nil {
//		// *PasswordRejectedError, or the lookup failure
//	}
//
// A failed password lookup never validates as accepted.
package pwned
