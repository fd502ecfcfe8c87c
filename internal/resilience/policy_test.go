package resilience_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pwned/internal/domain"
	"pwned/internal/metrics"
	"pwned/internal/resilience"
)

func remote(status int) error {
	return &domain.Error{Kind: domain.KindRemote, Op: "test", StatusCode: status}
}

func transport() error {
	return &domain.Error{Kind: domain.KindTransport, Op: "test", Err: errors.New("connection refused")}
}

func decode() error {
	return &domain.Error{Kind: domain.KindDecode, Op: "test", Err: errors.New("unexpected token")}
}

// failing returns a call that always fails with err and counts its attempts.
func failing(err error) (func(context.Context) error, *atomic.Int32) {
	var n atomic.Int32
	return func(context.Context) error {
		n.Add(1)
		return err
	}, &n
}

func fastBreach() resilience.Policy {
	return resilience.Breach(5*time.Second, 2, time.Millisecond)
}

func fastPassword() resilience.Policy {
	return resilience.Password(2*time.Second, 3, time.Millisecond)
}

func TestBreachPolicy_RetryDecisions(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		calls int32
	}{
		{"rate limited", remote(http.StatusTooManyRequests), 3},
		{"transport failure", transport(), 3},
		{"server error", remote(http.StatusInternalServerError), 1},
		{"service unavailable", remote(http.StatusServiceUnavailable), 1},
		{"bad request", remote(http.StatusBadRequest), 1},
		{"not found", remote(http.StatusNotFound), 1},
		{"decode failure", decode(), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			call, n := failing(tc.err)
			err := fastBreach().Do(context.Background(), "test", call)
			assert.Equal(t, tc.calls, n.Load())
			assert.Equal(t, domain.KindOf(tc.err), domain.KindOf(err))
			assert.Equal(t, domain.StatusCode(tc.err), domain.StatusCode(err))
		})
	}
}

func TestPasswordPolicy_RetryDecisions(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		calls int32
	}{
		{"server error", remote(http.StatusInternalServerError), 4},
		{"bad gateway", remote(http.StatusBadGateway), 4},
		{"transport failure", transport(), 4},
		{"bad request", remote(http.StatusBadRequest), 1},
		{"rate limited", remote(http.StatusTooManyRequests), 1},
		{"decode failure", decode(), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			call, n := failing(tc.err)
			err := fastPassword().Do(context.Background(), "test", call)
			assert.Equal(t, tc.calls, n.Load())
			assert.Equal(t, domain.KindOf(tc.err), domain.KindOf(err))
		})
	}
}

func TestPolicy_SucceedsAfterRetry(t *testing.T) {
	var n atomic.Int32
	err := fastBreach().Do(context.Background(), "test", func(context.Context) error {
		if n.Add(1) == 1 {
			return remote(http.StatusTooManyRequests)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), n.Load())
}

func TestPolicy_ZeroRetries(t *testing.T) {
	call, n := failing(transport())
	err := resilience.Breach(time.Second, 0, time.Millisecond).Do(context.Background(), "test", call)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, int32(1), n.Load())
}

func TestPolicy_BreachBackoffIsExponential(t *testing.T) {
	var stamps []time.Time
	base := 20 * time.Millisecond
	err := resilience.Breach(5*time.Second, 2, base).Do(context.Background(), "test", func(context.Context) error {
		stamps = append(stamps, time.Now())
		return remote(http.StatusTooManyRequests)
	})
	require.Error(t, err)
	require.Len(t, stamps, 3)

	first := stamps[1].Sub(stamps[0])
	second := stamps[2].Sub(stamps[1])
	assert.GreaterOrEqual(t, first, base)
	assert.GreaterOrEqual(t, second, 2*base)
}

func TestPolicy_CancelDuringBackoff(t *testing.T) {
	// A 10s base means the first wait is far longer than the test budget.
	p := resilience.Breach(30*time.Second, 2, 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	call, n := failing(remote(http.StatusTooManyRequests))
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	err := p.Do(ctx, "test", call)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.NotErrorIs(t, err, domain.ErrTimeout)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), n.Load())
}

func TestPolicy_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	call, n := failing(transport())
	err := fastPassword().Do(ctx, "test", call)
	assert.ErrorIs(t, err, domain.ErrCancelled)
	assert.Equal(t, int32(0), n.Load())
}

func TestPolicy_Timeout(t *testing.T) {
	p := resilience.Password(50*time.Millisecond, 3, time.Millisecond)
	err := p.Do(context.Background(), "test", func(ctx context.Context) error {
		<-ctx.Done()
		return &domain.Error{Kind: domain.KindTransport, Op: "test", Err: ctx.Err()}
	})
	assert.ErrorIs(t, err, domain.ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, domain.ErrCancelled)
}

func TestPolicy_IndependentBudgets(t *testing.T) {
	p := fastBreach()

	const callers = 8
	counts := make([]atomic.Int32, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), fmt.Sprintf("caller-%d", i), func(context.Context) error {
				counts[i].Add(1)
				return remote(http.StatusTooManyRequests)
			})
		}()
	}
	wg.Wait()

	for i := range counts {
		assert.Equal(t, int32(3), counts[i].Load(), "caller %d", i)
	}
}

func TestPolicy_CountsRetries(t *testing.T) {
	counter := metrics.RetriesTotal.WithLabelValues("password")
	before := testutil.ToFloat64(counter)

	call, _ := failing(remote(http.StatusInternalServerError))
	_ = fastPassword().Do(context.Background(), "test", call)

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}
