package types

import "fmt"

// Outcome is the terminal state of a password validation.
type Outcome uint8

const (
	// OutcomeUnknown is the zero value; it is never a passing result.
	OutcomeUnknown Outcome = iota
	OutcomeAccepted
	OutcomeRejected
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// RejectionCode is the error code identity systems receive for a breached
// password.
const RejectionCode = "PwnedPassword"

// Verdict is what the validation adapter decides for a password.
type Verdict struct {
	Outcome Outcome `json:"outcome"`
	// Count is the number of times the password appeared in breaches.
	Count int64 `json:"count,omitempty"`
	// Reason is a human-readable explanation, set on rejection.
	Reason string `json:"reason,omitempty"`
}

// Accepted reports whether the password may be used.
func (v Verdict) Accepted() bool { return v.Outcome == OutcomeAccepted }

// Err returns nil for an accepted password and a *PasswordRejectedError
// otherwise.
func (v Verdict) Err() error {
	switch v.Outcome {
	case OutcomeAccepted:
		return nil
	case OutcomeRejected:
		return &PasswordRejectedError{Code: RejectionCode, Count: v.Count, Description: v.Reason}
	default:
		return fmt.Errorf("password validation did not complete")
	}
}

// PasswordRejectedError blocks account creation or a password change.
type PasswordRejectedError struct {
	Code        string
	Count       int64
	Description string
}

func (e *PasswordRejectedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}
