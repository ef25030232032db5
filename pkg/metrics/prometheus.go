package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	computations *prometheus.CounterVec
	cacheResults *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		computations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfoliolab_computations_total",
				Help: "Total number of engine computations",
			},
			[]string{"engine"},
		),
		cacheResults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfoliolab_cache_requests_total",
				Help: "Memoization lookups by engine and result",
			},
			[]string{"engine", "result"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfoliolab_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfoliolab_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordComputation records one engine computation.
func (r *Recorder) RecordComputation(engine string) {
	r.computations.WithLabelValues(engine).Inc()
}

// RecordCacheResult records a memoization lookup outcome.
func (r *Recorder) RecordCacheResult(engine string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheResults.WithLabelValues(engine, result).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
