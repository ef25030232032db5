package analysis

import (
	"math"

	"PortfolioLab/internal/domain/models"
	domsvc "PortfolioLab/internal/domain/service"
)

// periodsPerYear annualizes figures computed from daily points.
const periodsPerYear = 252

// PerformanceSummarizer derives performance and risk figures from a value
// series. Stateless.
type PerformanceSummarizer struct{}

func NewPerformanceSummarizer() *PerformanceSummarizer { return &PerformanceSummarizer{} }

// Summarize computes cumulative return, CAGR, annualized volatility, max
// drawdown and Sharpe ratio over sourceKey. These are advisory view-model
// figures: a series too short or too flat for a field marks the summary
// Partial and leaves that field zero instead of failing.
func (s *PerformanceSummarizer) Summarize(series []models.TimeSeriesPoint, sourceKey string) models.PerformanceSummary {
	returns := periodReturns(series, sourceKey)

	summary := models.PerformanceSummary{}
	if len(returns) == 0 {
		summary.Partial = true
		return summary
	}

	cumulative := 1.0
	peak := 1.0
	maxDD := 0.0
	sum := 0.0
	for _, r := range returns {
		cumulative *= 1 + r
		if cumulative > peak {
			peak = cumulative
		}
		if dd := (cumulative - peak) / peak; dd < maxDD {
			maxDD = dd
		}
		sum += r
	}
	summary.CumulativeReturn = cumulative - 1
	summary.MaxDrawdown = maxDD

	years := float64(len(returns)) / periodsPerYear
	if base := 1 + summary.CumulativeReturn; base > 0 {
		summary.CAGR = math.Pow(base, 1/years) - 1
	}

	if len(returns) < 2 {
		summary.Partial = true
		return summary
	}

	mean := sum / float64(len(returns))
	variance := 0.0
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns) - 1)
	summary.Volatility = math.Sqrt(variance * periodsPerYear)

	if summary.Volatility > 0 {
		summary.SharpeRatio = mean * periodsPerYear / summary.Volatility
	} else {
		summary.Partial = true
	}

	return summary
}

// periodReturns computes simple period-over-period returns of sourceKey,
// skipping missing points and non-positive bases.
func periodReturns(series []models.TimeSeriesPoint, sourceKey string) []float64 {
	out := make([]float64, 0, len(series))
	prev := 0.0
	havePrev := false
	for _, p := range series {
		v, ok := p.Value(sourceKey)
		if !ok {
			continue
		}
		if havePrev && prev > 0 {
			out = append(out, (v-prev)/prev)
		}
		prev = v
		havePrev = true
	}
	return out
}

var _ domsvc.PerformanceSummarizer = (*PerformanceSummarizer)(nil)
