package lookup

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"pwned/internal/domain"
	"pwned/internal/endpoint"
	"pwned/internal/metrics"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
)

// observe records the metrics of one finished lookup and logs failures.
func observe(log *zap.Logger, op endpoint.Operation, start time.Time, outcome string, err error) {
	metrics.LookupDuration.WithLabelValues(string(op)).Observe(time.Since(start).Seconds())
	if err != nil {
		outcome = domain.KindOf(err).String()
	}
	metrics.LookupsTotal.WithLabelValues(string(op), outcome).Inc()

	if err == nil {
		return
	}
	lvl := zap.ErrorLevel
	if errors.Is(err, context.Canceled) || domain.KindOf(err) == domain.KindInvalidArgument {
		lvl = zap.DebugLevel
	}
	log.Check(lvl, "lookup failed").Write(
		zap.String("op", string(op)),
		zap.String("kind", domain.KindOf(err).String()),
		zap.Int("status", domain.StatusCode(err)),
		zap.Error(err),
	)
}

// isNotFound reports whether err is the 404 that account, paste and password
// endpoints use for "nothing found".
func isNotFound(err error) bool {
	return domain.StatusCode(err) == http.StatusNotFound
}
