package interfaces

import (
	"context"

	domaintypes "pwned/internal/domain/types"
)

// BreachService looks up accounts and breaches on the breach/paste API.
type BreachService interface {
	// BreachesForAccount returns the breaches an account appears in, in
	// server order. An unknown account yields an empty slice.
	BreachesForAccount(
		ctx context.Context,
		account domaintypes.Account,
		filter domaintypes.BreachFilter,
	) ([]domaintypes.Breach, error)
	// AllBreaches returns the breach catalog, optionally for one domain.
	AllBreaches(ctx context.Context, domain string) ([]domaintypes.Breach, error)
	// Breach returns a single breach by name.
	Breach(ctx context.Context, name domaintypes.BreachName) (domaintypes.Breach, error)
	// DataClasses returns every known data class in server order.
	DataClasses(ctx context.Context) ([]string, error)
	// PastesForAccount returns the pastes an account appears in.
	PastesForAccount(
		ctx context.Context,
		account domaintypes.Account,
	) ([]domaintypes.PasteAccount, error)
}

// PasswordService checks passwords against the breach corpus.
type PasswordService interface {
	LookupPassword(ctx context.Context, password string) (domaintypes.PasswordResult, error)
}
