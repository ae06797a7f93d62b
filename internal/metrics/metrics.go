// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Extractions counts extraction outcomes by the strategy that produced the candidate.
	Extractions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "texttx",
		Name:      "extractions_total",
		Help:      "Extractions by winning strategy.",
	}, []string{"source"})

	// Outcomes counts assistant outcomes by kind.
	Outcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "texttx",
		Name:      "assistant_outcomes_total",
		Help:      "Assistant outcomes by kind.",
	}, []string{"kind"})

	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "texttx",
		Name:      "provider_requests_total",
		Help:      "Calls to the external extraction provider.",
	}, []string{"operation", "status"})

	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "texttx",
		Name:      "provider_request_duration_seconds",
		Help:      "Latency of external extraction provider calls.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
	}, []string{"operation"})

	PatternsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "texttx",
		Name:      "learned_patterns_recorded_total",
		Help:      "Learned patterns persisted, by processing result.",
	}, []string{"processed"})

	TransactionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "texttx",
		Name:      "transactions_created_total",
		Help:      "Transactions persisted, one per installment.",
	})
)
