package usecase

import (
	"context"
	"testing"
	"time"

	"PortfolioLab/internal/domain/models"
	"PortfolioLab/internal/services/analysis"
	"PortfolioLab/pkg/cache"
)

type countingMetrics struct {
	computations map[string]int
	hits         map[string]int
	misses       map[string]int
	errors       map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{
		computations: map[string]int{},
		hits:         map[string]int{},
		misses:       map[string]int{},
		errors:       map[string]int{},
	}
}

func (m *countingMetrics) RecordComputation(engine string) { m.computations[engine]++ }
func (m *countingMetrics) RecordCacheResult(engine string, hit bool) {
	if hit {
		m.hits[engine]++
	} else {
		m.misses[engine]++
	}
}
func (m *countingMetrics) RecordError(kind string)                 { m.errors[kind]++ }
func (m *countingMetrics) RecordLatency(op string, seconds float64) {}

func newTestAggregator(c cache.Service, m *countingMetrics) *AnalysisAggregator {
	return NewAnalysisAggregator(
		analysis.NewPortfolioValidator(),
		analysis.NewIndicatorEngine(),
		analysis.NewProjectionEngine(),
		analysis.NewPerformanceSummarizer(),
		c,
		m,
		CacheTTLs{Validation: time.Minute, Indicators: time.Minute, Projection: time.Minute, Performance: time.Minute},
	)
}

func TestValidateMemoizedOnEqualInputs(t *testing.T) {
	mem := cache.NewMemoryCache()
	defer mem.Close()
	metrics := newCountingMetrics()
	agg := newTestAggregator(mem, metrics)

	holdings := []models.Holding{{Symbol: "AAPL", Allocation: 60}, {Symbol: "MSFT", Allocation: 40}}

	first := agg.Validate(context.Background(), holdings)
	second := agg.Validate(context.Background(), holdings)

	if !first.IsValid || !second.IsValid {
		t.Fatalf("expected valid reports")
	}
	if metrics.computations["validate"] != 1 {
		t.Fatalf("expected one computation, got %d", metrics.computations["validate"])
	}
	if metrics.hits["validate"] != 1 {
		t.Fatalf("expected one cache hit, got %d", metrics.hits["validate"])
	}
}

func TestDifferentInputsRecompute(t *testing.T) {
	mem := cache.NewMemoryCache()
	defer mem.Close()
	metrics := newCountingMetrics()
	agg := newTestAggregator(mem, metrics)

	agg.Project(context.Background(), 1000, models.ProjectionScenario{TimeHorizonYears: 5, ExpectedAnnualReturn: 0.07})
	agg.Project(context.Background(), 2000, models.ProjectionScenario{TimeHorizonYears: 5, ExpectedAnnualReturn: 0.07})

	if metrics.computations["projection"] != 2 {
		t.Fatalf("changed input must recompute, got %d computations", metrics.computations["projection"])
	}
}

func TestNilCacheComputesEveryTime(t *testing.T) {
	metrics := newCountingMetrics()
	agg := newTestAggregator(nil, metrics)

	series := []models.TimeSeriesPoint{}
	agg.ApplyIndicators(context.Background(), series, nil, "portfolio")
	agg.ApplyIndicators(context.Background(), series, nil, "portfolio")

	if metrics.computations["indicators"] != 2 {
		t.Fatalf("nil cache must recompute, got %d", metrics.computations["indicators"])
	}
}

func TestCachedResultRoundTripsValues(t *testing.T) {
	mem := cache.NewMemoryCache()
	defer mem.Close()
	agg := newTestAggregator(mem, newCountingMetrics())

	v := 100.0
	series := []models.TimeSeriesPoint{
		{Date: "2024-01-01", Values: map[string]*float64{"portfolio": &v}},
		{Date: "2024-01-02", Values: map[string]*float64{"portfolio": &v}},
	}
	specs := []models.IndicatorSpec{{ID: "ma2", Enabled: true}}

	first := agg.ApplyIndicators(context.Background(), series, specs, "portfolio")
	second := agg.ApplyIndicators(context.Background(), series, specs, "portfolio")

	if first[0].Values["ma2"] != nil {
		t.Fatalf("expected null head")
	}
	// nil survives the JSON round trip
	if second[0].Values["ma2"] != nil {
		t.Fatalf("cached null became %v", *second[0].Values["ma2"])
	}
	if second[1].Values["ma2"] == nil || *second[1].Values["ma2"] != 100 {
		t.Fatalf("cached value mismatch: %v", second[1].Values["ma2"])
	}
}
