package validation_test

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pwned/internal/domain"
	"pwned/internal/metrics"
	"pwned/internal/validation"
)

// stubPasswords answers every lookup with a fixed result or error.
type stubPasswords struct {
	result domain.PasswordResult
	err    error
	seen   []string
}

func (s *stubPasswords) LookupPassword(_ context.Context, password string) (domain.PasswordResult, error) {
	s.seen = append(s.seen, password)
	return s.result, s.err
}

func TestValidate_Rejected(t *testing.T) {
	for _, n := range []int64{1, 42, 3861493} {
		stub := &stubPasswords{result: domain.NewPasswordResult(n)}
		v := validation.New(stub, nil)

		verdict, err := v.Validate(context.Background(), "P@ssword")
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeRejected, verdict.Outcome)
		assert.False(t, verdict.Accepted())
		assert.Equal(t, n, verdict.Count)
		assert.Contains(t, verdict.Reason, strconv.FormatInt(n, 10))
		assert.Equal(t, []string{"P@ssword"}, stub.seen)
	}
}

func TestValidate_Accepted(t *testing.T) {
	v := validation.New(&stubPasswords{result: domain.NewPasswordResult(0)}, nil)

	verdict, err := v.Validate(context.Background(), "correct-horse-battery-staple")
	require.NoError(t, err)
	assert.True(t, verdict.Accepted())
	assert.Zero(t, verdict.Count)
	assert.Empty(t, verdict.Reason)
}

func TestValidate_FailsClosed(t *testing.T) {
	failures := []error{
		&domain.Error{Kind: domain.KindTimeout, Op: "pwnedpassword", Err: context.DeadlineExceeded},
		&domain.Error{Kind: domain.KindDecode, Op: "pwnedpassword", Err: errors.New("bad body")},
		&domain.Error{Kind: domain.KindRemote, Op: "pwnedpassword", StatusCode: http.StatusServiceUnavailable},
		&domain.Error{Kind: domain.KindTransport, Op: "pwnedpassword", Err: errors.New("connection refused")},
	}
	for _, failure := range failures {
		before := testutil.ToFloat64(metrics.VerdictsTotal.WithLabelValues("unknown"))
		v := validation.New(&stubPasswords{err: failure}, nil)

		verdict, err := v.Validate(context.Background(), "P@ssword")
		assert.ErrorIs(t, err, failure)
		assert.False(t, verdict.Accepted())
		assert.Equal(t, domain.OutcomeUnknown, verdict.Outcome)
		assert.Error(t, verdict.Err())
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.VerdictsTotal.WithLabelValues("unknown")))
	}
}

func TestValidatePassword(t *testing.T) {
	err := validation.New(&stubPasswords{result: domain.NewPasswordResult(0)}, nil).
		ValidatePassword(context.Background(), "fine")
	assert.NoError(t, err)

	err = validation.New(&stubPasswords{result: domain.NewPasswordResult(3861493)}, nil).
		ValidatePassword(context.Background(), "P@ssword")
	var rejected *domain.PasswordRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, domain.RejectionCode, rejected.Code)
	assert.Equal(t, int64(3861493), rejected.Count)
	assert.Contains(t, rejected.Description, "3861493")

	err = validation.New(&stubPasswords{err: &domain.Error{Kind: domain.KindTimeout}}, nil).
		ValidatePassword(context.Background(), "P@ssword")
	assert.ErrorIs(t, err, domain.ErrTimeout)
	assert.False(t, errors.As(err, &rejected))
}

func TestZeroVerdictIsNeverAccepted(t *testing.T) {
	var v domain.Verdict
	assert.False(t, v.Accepted())
	assert.Error(t, v.Err())
}
