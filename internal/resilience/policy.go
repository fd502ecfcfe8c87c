package resilience

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"pwned/internal/domain"
	"pwned/internal/metrics"
)

// Policy is an immutable timeout and retry profile. The zero value is not
// usable; build one with Breach or Password.
type Policy struct {
	// Class labels logs and metrics, e.g. "breach".
	Class   string
	Timeout time.Duration
	// Retries is the number of additional attempts after the first one.
	Retries uint64

	backoff   func() retry.Backoff
	retryable func(error) bool
	log       *zap.Logger
}

// Breach returns the breach/paste profile.
func Breach(timeout time.Duration, retries uint64, base time.Duration) Policy {
	return Policy{
		Class:   "breach",
		Timeout: timeout,
		Retries: retries,
		backoff: func() retry.Backoff {
			return retry.NewExponential(base)
		},
		retryable: retryOnRateLimit,
		log:       zap.NewNop(),
	}
}

// Password returns the password profile.
func Password(timeout time.Duration, retries uint64, base time.Duration) Policy {
	ceiling := timeout / 4
	if ceiling < base {
		ceiling = base
	}
	return Policy{
		Class:   "password",
		Timeout: timeout,
		Retries: retries,
		backoff: func() retry.Backoff {
			return retry.WithCappedDuration(ceiling, retry.NewExponential(base))
		},
		retryable: retryOnTransient,
		log:       zap.NewNop(),
	}
}

// WithLogger returns a copy of p that logs retries to l.
func (p Policy) WithLogger(l *zap.Logger) Policy {
	if l != nil {
		p.log = l
	}
	return p
}

// Do runs call under p. op names the operation in errors and logs.
//
// The error is nil, the last error of call, or a *domain.Error of kind
// Cancelled or Timeout when ctx was cancelled or the deadline expired.
func (p Policy) Do(ctx context.Context, op string, call func(ctx context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	attempt := 0
	b := retry.WithMaxRetries(p.Retries, p.backoff())
	err := retry.Do(callCtx, b, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			metrics.RetriesTotal.WithLabelValues(p.Class).Inc()
			p.log.Debug("retrying remote call",
				zap.String("op", op),
				zap.String("class", p.Class),
				zap.Int("attempt", attempt),
			)
		}

		err := call(ctx)
		if err == nil || ctx.Err() != nil || !p.retryable(err) {
			return err
		}
		p.log.Warn("remote call failed, will retry if budget allows",
			zap.String("op", op),
			zap.String("class", p.Class),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		return retry.RetryableError(err)
	})
	return classify(ctx, callCtx, op, err)
}

// classify turns context failures into Cancelled or Timeout. Cancellation by
// the caller wins over an expired deadline.
func classify(parent, callCtx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(parent.Err(), context.Canceled) {
		return &domain.Error{Kind: domain.KindCancelled, Op: op, Err: context.Canceled}
	}
	if callCtx.Err() != nil {
		return &domain.Error{Kind: domain.KindTimeout, Op: op, Err: context.DeadlineExceeded}
	}
	return err
}

// retryOnRateLimit retries connectivity failures and HTTP 429.
func retryOnRateLimit(err error) bool {
	switch domain.KindOf(err) {
	case domain.KindTransport:
		return true
	case domain.KindRemote:
		return domain.StatusCode(err) == http.StatusTooManyRequests
	}
	return false
}

// retryOnTransient retries connectivity failures and 5xx responses.
func retryOnTransient(err error) bool {
	switch domain.KindOf(err) {
	case domain.KindTransport:
		return true
	case domain.KindRemote:
		return domain.StatusCode(err) >= http.StatusInternalServerError
	}
	return false
}
