package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	CalcLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "impliedgrowth",
			Subsystem: "calculator",
			Name:      "latency_seconds",
			Help:      "Latency of calculator endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	CalcErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "impliedgrowth",
			Subsystem: "calculator",
			Name:      "errors_total",
			Help:      "Errors by calculator endpoint",
		},
		[]string{"endpoint"},
	)

	InvalidResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "impliedgrowth",
			Subsystem: "calculator",
			Name:      "invalid_results_total",
			Help:      "Calculations rejected by the financial logic check",
		},
		[]string{"variant"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(CalcLatency, CalcErrors, InvalidResults)
	})
}
