// Package metrics holds the Prometheus collectors of the lookup client.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LookupsTotal counts finished lookup calls by operation and outcome
	// ("ok", "not_found" or a failure kind).
	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pwned_lookups_total",
		Help: "The total number of lookup calls by operation and outcome",
	}, []string{"operation", "outcome"})

	// LookupDuration observes the wall time of a lookup call including retries.
	LookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pwned_lookup_duration_seconds",
		Help:    "The lookup call duration in seconds, retries included",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// RetriesTotal counts retry attempts by resilience class.
	RetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pwned_retries_total",
		Help: "The total number of retried remote calls by class",
	}, []string{"class"})

	// VerdictsTotal counts password validation outcomes.
	VerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pwned_password_verdicts_total",
		Help: "The total number of password validations by outcome",
	}, []string{"outcome"})

	// MockRequestsTotal counts requests served by the mock API by route
	// pattern and status code.
	MockRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pwned_mock_requests_total",
		Help: "The total number of requests served by the mock API",
	}, []string{"route", "status"})
)
