package usecase

import (
	"context"
	"encoding/json"
	"time"

	"PortfolioLab/internal/domain/models"
	domrepo "PortfolioLab/internal/domain/repository"
	domsvc "PortfolioLab/internal/domain/service"
	"PortfolioLab/pkg/cache"
)

// CacheTTLs configures per-engine memoization lifetimes. A zero TTL disables
// caching for that engine.
type CacheTTLs struct {
	Validation  time.Duration
	Indicators  time.Duration
	Projection  time.Duration
	Performance time.Duration
}

// AnalysisAggregator fronts the pure engines with input-keyed memoization
// and metrics. The engines themselves stay stateless; recomputation is
// avoided only when the exact same inputs are seen again. Cache failures
// are soft — a broken cache degrades to plain recomputation.
type AnalysisAggregator struct {
	validator   domsvc.PortfolioValidator
	indicators  domsvc.IndicatorEngine
	projection  domsvc.ProjectionEngine
	performance domsvc.PerformanceSummarizer
	cache       cache.Service
	metrics     domrepo.Metrics
	ttls        CacheTTLs
}

func NewAnalysisAggregator(
	validator domsvc.PortfolioValidator,
	indicators domsvc.IndicatorEngine,
	projection domsvc.ProjectionEngine,
	performance domsvc.PerformanceSummarizer,
	c cache.Service,
	m domrepo.Metrics,
	ttls CacheTTLs,
) *AnalysisAggregator {
	return &AnalysisAggregator{
		validator:   validator,
		indicators:  indicators,
		projection:  projection,
		performance: performance,
		cache:       c,
		metrics:     m,
		ttls:        ttls,
	}
}

func (a *AnalysisAggregator) Validate(ctx context.Context, holdings []models.Holding) models.ValidationReport {
	var report models.ValidationReport
	key := a.inputKey("validate", holdings)
	if a.lookup(ctx, "validate", key, a.ttls.Validation, &report) {
		return report
	}

	start := time.Now()
	report = a.validator.Validate(holdings)
	a.record("validate", start)

	a.store(ctx, key, a.ttls.Validation, report)
	return report
}

func (a *AnalysisAggregator) ApplyIndicators(ctx context.Context, series []models.TimeSeriesPoint, specs []models.IndicatorSpec, sourceKey string) []models.TimeSeriesPoint {
	var out []models.TimeSeriesPoint
	key := a.inputKey("indicators", struct {
		Series    []models.TimeSeriesPoint `json:"series"`
		Specs     []models.IndicatorSpec   `json:"specs"`
		SourceKey string                   `json:"sourceKey"`
	}{series, specs, sourceKey})
	if a.lookup(ctx, "indicators", key, a.ttls.Indicators, &out) {
		return out
	}

	start := time.Now()
	out = a.indicators.Apply(series, specs, sourceKey)
	a.record("indicators", start)

	a.store(ctx, key, a.ttls.Indicators, out)
	return out
}

func (a *AnalysisAggregator) Project(ctx context.Context, currentValue float64, scenario models.ProjectionScenario) models.ProjectionResult {
	var res models.ProjectionResult
	key := a.inputKey("projection", struct {
		CurrentValue float64                   `json:"currentValue"`
		Scenario     models.ProjectionScenario `json:"scenario"`
	}{currentValue, scenario})
	if a.lookup(ctx, "projection", key, a.ttls.Projection, &res) {
		return res
	}

	start := time.Now()
	res = a.projection.Project(currentValue, scenario)
	a.record("projection", start)

	a.store(ctx, key, a.ttls.Projection, res)
	return res
}

func (a *AnalysisAggregator) Performance(ctx context.Context, series []models.TimeSeriesPoint, sourceKey string) models.PerformanceSummary {
	var res models.PerformanceSummary
	key := a.inputKey("performance", struct {
		Series    []models.TimeSeriesPoint `json:"series"`
		SourceKey string                   `json:"sourceKey"`
	}{series, sourceKey})
	if a.lookup(ctx, "performance", key, a.ttls.Performance, &res) {
		return res
	}

	start := time.Now()
	res = a.performance.Summarize(series, sourceKey)
	a.record("performance", start)

	a.store(ctx, key, a.ttls.Performance, res)
	return res
}

func (a *AnalysisAggregator) record(engine string, start time.Time) {
	if a.metrics == nil {
		return
	}
	a.metrics.RecordComputation(engine)
	a.metrics.RecordLatency(engine, time.Since(start).Seconds())
}

// inputKey builds a deterministic cache key from the canonical JSON of the
// inputs. Equal inputs always hash equal; unequal inputs may collide only at
// hash strength, which is acceptable for a soft cache.
func (a *AnalysisAggregator) inputKey(engine string, payload interface{}) string {
	b, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return cache.GenerateKey(engine, cache.HashKey(string(b)))
}

func (a *AnalysisAggregator) lookup(ctx context.Context, engine, key string, ttl time.Duration, dest interface{}) bool {
	if a.cache == nil || ttl <= 0 || key == "" {
		return false
	}
	var raw string
	if err := a.cache.Get(ctx, key, &raw); err != nil {
		if a.metrics != nil {
			a.metrics.RecordCacheResult(engine, false)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		if a.metrics != nil {
			a.metrics.RecordError("cache_decode")
		}
		return false
	}
	if a.metrics != nil {
		a.metrics.RecordCacheResult(engine, true)
	}
	return true
}

func (a *AnalysisAggregator) store(ctx context.Context, key string, ttl time.Duration, value interface{}) {
	if a.cache == nil || ttl <= 0 || key == "" {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		if a.metrics != nil {
			a.metrics.RecordError("cache_encode")
		}
		return
	}
	if err := a.cache.Set(ctx, key, string(b), ttl); err != nil && a.metrics != nil {
		a.metrics.RecordError("cache_set")
	}
}
