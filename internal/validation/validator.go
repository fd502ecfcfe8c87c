package validation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pwned/internal/domain"
	"pwned/internal/metrics"
)

// Validator turns password lookups into verdicts.
type Validator struct {
	passwords domain.PasswordService
	log       *zap.Logger
}

var _ domain.PasswordValidator = (*Validator)(nil)

// New returns a Validator backed by passwords. A nil logger discards output.
func New(passwords domain.PasswordService, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{passwords: passwords, log: logger.Named("validator")}
}

// Validate looks password up and decides whether it may be used. On a lookup
// failure the verdict is the zero value, whose outcome is Unknown, and the
// failure is returned.
func (v *Validator) Validate(ctx context.Context, password string) (domain.Verdict, error) {
	res, err := v.passwords.LookupPassword(ctx, password)
	if err != nil {
		metrics.VerdictsTotal.WithLabelValues(domain.OutcomeUnknown.String()).Inc()
		v.log.Warn("password lookup failed, refusing to accept",
			zap.String("kind", domain.KindOf(err).String()),
			zap.Error(err),
		)
		return domain.Verdict{}, err
	}

	verdict := domain.Verdict{Outcome: domain.OutcomeAccepted}
	if res.Compromised {
		verdict = domain.Verdict{
			Outcome: domain.OutcomeRejected,
			Count:   res.Count,
			Reason:  rejectionReason(res.Count),
		}
	}
	metrics.VerdictsTotal.WithLabelValues(verdict.Outcome.String()).Inc()
	v.log.Debug("password validated",
		zap.Stringer("outcome", verdict.Outcome),
		zap.Int64("count", verdict.Count),
	)
	return verdict, nil
}

// ValidatePassword is the hook form of Validate: nil when the password may be
// used, a *domain.PasswordRejectedError when it is breached, or the lookup
// failure.
func (v *Validator) ValidatePassword(ctx context.Context, password string) error {
	verdict, err := v.Validate(ctx, password)
	if err != nil {
		return fmt.Errorf("validate password: %w", err)
	}
	return verdict.Err()
}

func rejectionReason(count int64) string {
	return fmt.Sprintf("The password you chose has appeared in a data breach %d times. "+
		"It is recommended that you choose a different password.", count)
}
