package repository

// Metrics is the recorder boundary for operational counters. Implemented by
// pkg/metrics with Prometheus; kept as an interface so the use case layer
// stays free of client_golang.
type Metrics interface {
	RecordComputation(engine string)
	RecordCacheResult(engine string, hit bool)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
