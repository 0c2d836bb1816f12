package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// CartMetrics records cart operations and storage round trips.
type CartMetrics struct {
	operations      *prometheus.CounterVec
	storageDuration *prometheus.HistogramVec
	storageFailures *prometheus.CounterVec
}

// NewCartMetrics registers the cart metrics on the provided registerer. A nil
// registerer yields a recorder that drops everything.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gearstore",
		Name:      "cart_operations_total",
		Help:      "Cart operations by name and outcome.",
	}, []string{"operation", "outcome"})
	storageDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gearstore",
		Name:      "cart_storage_duration_seconds",
		Help:      "Latency of cart storage calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "call"})
	storageFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gearstore",
		Name:      "cart_storage_failures_total",
		Help:      "Failed cart storage calls.",
	}, []string{"backend", "call"})
	reg.MustRegister(operations, storageDuration, storageFailures)
	return &CartMetrics{
		operations:      operations,
		storageDuration: storageDuration,
		storageFailures: storageFailures,
	}
}

// IncOperation counts one cart operation with its outcome.
func (m *CartMetrics) IncOperation(operation, outcome string) {
	if m == nil || m.operations == nil {
		return
	}
	m.operations.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
}

// ObserveStorage records one storage call. Failures other than a missing
// cart also bump the failure counter.
func (m *CartMetrics) ObserveStorage(backend, call string, duration time.Duration, failed bool) {
	if m == nil || m.storageDuration == nil {
		return
	}
	backend, call = normalizeLabel(backend), normalizeLabel(call)
	m.storageDuration.WithLabelValues(backend, call).Observe(duration.Seconds())
	if failed {
		m.storageFailures.WithLabelValues(backend, call).Inc()
	}
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
