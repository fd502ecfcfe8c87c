package interfaces

import (
	"context"

	domaintypes "pwned/internal/domain/types"
)

// PasswordValidator decides whether a password may be used for an account.
type PasswordValidator interface {
	Validate(ctx context.Context, password string) (domaintypes.Verdict, error)
	// ValidatePassword is the hook form: nil means accepted.
	ValidatePassword(ctx context.Context, password string) error
}
