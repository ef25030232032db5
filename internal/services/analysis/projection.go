package analysis

import (
	"math"

	"PortfolioLab/internal/domain/models"
	domsvc "PortfolioLab/internal/domain/service"
)

// Scenario rate multipliers derived from the single user-supplied expected
// return.
const (
	optimisticFactor   = 1.3
	conservativeFactor = 0.6
)

// successProbabilityCeiling is the fixed figure reported once the expected
// path reaches the target. It is a display heuristic with no statistical
// basis, kept for behavioral parity with the goal widget it feeds.
const successProbabilityCeiling = 85.0

// ProjectionEngine computes compound future value tables. Stateless.
type ProjectionEngine struct{}

func NewProjectionEngine() *ProjectionEngine { return &ProjectionEngine{} }

// Project builds one row per year from 0 through the horizon inclusive.
// Each scenario compounds annually with a year-end lump contribution equal
// to twelve monthly contributions; the three scenarios are computed
// independently. Values are rounded to whole units for output.
func (e *ProjectionEngine) Project(currentValue float64, scenario models.ProjectionScenario) models.ProjectionResult {
	horizon := scenario.TimeHorizonYears
	if horizon < 0 {
		horizon = 0
	}

	rate := scenario.ExpectedAnnualReturn
	optimistic := futureValues(currentValue, rate*optimisticFactor, scenario.MonthlyContribution, horizon)
	expected := futureValues(currentValue, rate, scenario.MonthlyContribution, horizon)
	conservative := futureValues(currentValue, rate*conservativeFactor, scenario.MonthlyContribution, horizon)

	points := make([]models.ProjectionPoint, horizon+1)
	for y := 0; y <= horizon; y++ {
		points[y] = models.ProjectionPoint{
			Year:         y,
			Optimistic:   optimistic[y],
			Expected:     expected[y],
			Conservative: conservative[y],
		}
	}

	finalExpected := expected[horizon]
	totalContributions := scenario.MonthlyContribution * 12 * float64(horizon)

	return models.ProjectionResult{
		Points: points,
		Summary: models.ProjectionSummary{
			SuccessProbability: successProbability(finalExpected, scenario.TargetAmount),
			TotalContributions: totalContributions,
			GrowthFromReturns:  finalExpected - currentValue - totalContributions,
			FinalExpected:      finalExpected,
		},
	}
}

func futureValues(start, rate, monthly float64, horizon int) []float64 {
	out := make([]float64, horizon+1)
	balance := start
	out[0] = math.Round(balance)
	for y := 1; y <= horizon; y++ {
		balance = balance*(1+rate) + monthly*12
		out[y] = math.Round(balance)
	}
	return out
}

// successProbability reports a fixed ceiling once the expected final value
// reaches the target, otherwise a scaled shortfall ratio clamped to [0, 100].
// Heuristic only — not a probability in any statistical sense.
func successProbability(finalExpected, target float64) float64 {
	if finalExpected >= target {
		return successProbabilityCeiling
	}
	p := finalExpected / target * 100 * 0.9
	if p < 0 || math.IsNaN(p) {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

var _ domsvc.ProjectionEngine = (*ProjectionEngine)(nil)
