// Package metrics defines the prometheus collectors shared across adapters.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Journal metrics
var (
	// EntriesCreatedTotal counts created entries by derived sentiment label.
	EntriesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_entries_created_total",
			Help: "Total journal entries created, by sentiment label",
		},
		[]string{"sentiment"},
	)

	// EntryUpdatesTotal counts entry updates by recomputed sentiment label.
	EntryUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_entry_updates_total",
			Help: "Total journal entry updates, by recomputed sentiment label",
		},
		[]string{"sentiment"},
	)
)

// Document store metrics
var (
	// DocstoreOpsTotal tracks document store operations by operation and status.
	DocstoreOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docstore_operations_total",
			Help: "Total document store operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// DocstoreOpDuration tracks document store operation latency in seconds.
	DocstoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docstore_operation_duration_seconds",
			Help:    "Document store operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// CircuitBreakerStateChanges tracks circuit breaker state transitions.
	CircuitBreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_changes_total",
			Help: "Circuit breaker state transitions by component and new state",
		},
		[]string{"component", "state"},
	)

	// CircuitBreakerState tracks current circuit breaker state (0=closed, 1=half-open, 2=open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"component"},
	)
)

// ObserveDocstoreOp records one document store operation's outcome and latency.
func ObserveDocstoreOp(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DocstoreOpsTotal.WithLabelValues(operation, status).Inc()
	DocstoreOpDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
