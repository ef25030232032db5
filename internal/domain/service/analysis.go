package service

import (
	"PortfolioLab/internal/domain/models"
)

// The analysis engines are pure: synchronous, stateless, no I/O and no
// failure paths. They take no context and return no error on purpose —
// every input, however degenerate, has defined output.

// PortfolioValidator checks a holdings list for structural problems.
type PortfolioValidator interface {
	Validate(holdings []models.Holding) models.ValidationReport
}

// IndicatorEngine augments a value series with overlay indicator series.
type IndicatorEngine interface {
	Apply(series []models.TimeSeriesPoint, specs []models.IndicatorSpec, sourceKey string) []models.TimeSeriesPoint
}

// ProjectionEngine computes compound growth under three derived return rates.
type ProjectionEngine interface {
	Project(currentValue float64, scenario models.ProjectionScenario) models.ProjectionResult
}

// PerformanceSummarizer derives whole-series performance and risk figures.
type PerformanceSummarizer interface {
	Summarize(series []models.TimeSeriesPoint, sourceKey string) models.PerformanceSummary
}
