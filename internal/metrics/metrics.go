// Package metrics provides Prometheus metrics for the availability service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "availability"

var (
	// WritesTotal counts repository writes by operation and outcome.
	WritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "writes_total",
			Help:      "Total number of register, update and delete operations",
		},
		[]string{"operation", "outcome"},
	)

	// RejectionsTotal counts submitted ranges rejected by validation.
	RejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_rejections_total",
			Help:      "Total number of submitted ranges rejected by validation",
		},
		[]string{"kind"},
	)

	// SummaryDuration measures summary computation time.
	SummaryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "summary_duration_seconds",
			Help:      "Duration of summary computations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// RangesInSnapshot observes how many ranges a summary was computed over.
	RangesInSnapshot = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "summary_ranges",
			Help:      "Distribution of range counts per summary",
			Buckets:   []float64{0, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

// RecordWrite records a write operation.
func RecordWrite(operation, outcome string) {
	WritesTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordRejection records a validation rejection.
func RecordRejection(kind string) {
	RejectionsTotal.WithLabelValues(kind).Inc()
}

// RecordSummary records a summary computation.
func RecordSummary(ranges int, duration float64) {
	SummaryDuration.Observe(duration)
	RangesInSnapshot.Observe(float64(ranges))
}
