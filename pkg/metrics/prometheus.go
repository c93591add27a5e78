package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	calculations *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	lastGrowth   *prometheus.GaugeVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		calculations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "impliedgrowth_calculations_total",
				Help: "Total number of growth calculations performed",
			},
			[]string{"variant"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "impliedgrowth_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastGrowth: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "impliedgrowth_last_growth_percent",
				Help: "Last solved implied growth rate in percent",
			},
			[]string{"variant"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "impliedgrowth_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordCalculation records a completed calculation for a model variant.
func (r *Recorder) RecordCalculation(variant string) {
	r.calculations.WithLabelValues(variant).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastGrowth records the last solved growth rate.
func (r *Recorder) RecordLastGrowth(variant string, growthPct float64) {
	r.lastGrowth.WithLabelValues(variant).Set(growthPct)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
