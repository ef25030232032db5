package analysis

import (
	"strconv"
	"strings"

	"PortfolioLab/internal/domain/models"
	domsvc "PortfolioLab/internal/domain/service"
)

// IndicatorEngine applies overlay indicators to a value series. Stateless;
// every call recomputes from scratch over the whole series.
type IndicatorEngine struct{}

func NewIndicatorEngine() *IndicatorEngine { return &IndicatorEngine{} }

// Apply returns a copy of the series (same length and order) with one output
// key per enabled, recognized spec. Indicators only ever read sourceKey, so
// the result is independent of spec order. A spec that is disabled,
// unrecognized, or missing a usable period leaves the series untouched; one
// bad spec never suppresses the others.
func (e *IndicatorEngine) Apply(series []models.TimeSeriesPoint, specs []models.IndicatorSpec, sourceKey string) []models.TimeSeriesPoint {
	out := make([]models.TimeSeriesPoint, len(series))
	for i, p := range series {
		values := make(map[string]*float64, len(p.Values)+len(specs))
		for k, v := range p.Values {
			values[k] = v
		}
		out[i] = models.TimeSeriesPoint{Date: p.Date, Values: values}
	}

	source := make([]*float64, len(series))
	for i, p := range series {
		if v, ok := p.Value(sourceKey); ok {
			v := v
			source[i] = &v
		}
	}

	for _, spec := range specs {
		if !spec.Enabled {
			continue
		}
		switch {
		case strings.HasPrefix(spec.ID, "ma"):
			if period, ok := maPeriod(spec); ok {
				writeColumn(out, spec.ID, movingAverage(source, period))
			}
		case spec.ID == "drawdown":
			writeColumn(out, spec.ID, drawdown(source))
		case spec.ID == "rollingReturns":
			if spec.Params.Period >= 1 {
				writeColumn(out, spec.ID, rollingReturns(source, spec.Params.Period))
			}
		}
		// anything else: unrecognized id, no-op
	}

	return out
}

// maPeriod resolves the moving-average window: an explicit param wins,
// otherwise the numeric suffix of the id ("ma50" -> 50).
func maPeriod(spec models.IndicatorSpec) (int, bool) {
	if spec.Params.Period >= 1 {
		return spec.Params.Period, true
	}
	n, err := strconv.Atoi(strings.TrimPrefix(spec.ID, "ma"))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func writeColumn(out []models.TimeSeriesPoint, key string, col []*float64) {
	for i := range out {
		out[i].Values[key] = col[i]
	}
}

// movingAverage is the arithmetic mean over the inclusive trailing window.
// Points before a full window, and windows containing a missing source
// value, yield nil.
func movingAverage(source []*float64, period int) []*float64 {
	col := make([]*float64, len(source))
	for i := range source {
		if i < period-1 {
			continue
		}
		sum := 0.0
		complete := true
		for j := i - period + 1; j <= i; j++ {
			if source[j] == nil {
				complete = false
				break
			}
			sum += *source[j]
		}
		if complete {
			v := sum / float64(period)
			col[i] = &v
		}
	}
	return col
}

// drawdown tracks the running peak (inclusive of the current point; it never
// resets) and reports the percentage decline from it, always <= 0. The first
// usable point is its own peak, so its drawdown is 0. A non-positive peak
// has no meaningful decline percentage, so those points report 0 rather
// than NaN or infinity.
func drawdown(source []*float64) []*float64 {
	col := make([]*float64, len(source))
	peak := 0.0
	seen := false
	for i, sv := range source {
		if sv == nil {
			continue
		}
		v := *sv
		if !seen || v > peak {
			peak = v
			seen = true
		}
		dd := 0.0
		if peak > 0 {
			dd = (v - peak) / peak * 100
		}
		col[i] = &dd
	}
	return col
}

// rollingReturns is the percentage change against the value k points back.
// Points without a full lookback, missing endpoints, and zero bases all
// yield nil/0-safe output.
func rollingReturns(source []*float64, k int) []*float64 {
	col := make([]*float64, len(source))
	for i := k; i < len(source); i++ {
		cur, base := source[i], source[i-k]
		if cur == nil || base == nil {
			continue
		}
		r := 0.0
		if *base != 0 {
			r = (*cur - *base) / *base * 100
		}
		col[i] = &r
	}
	return col
}

var _ domsvc.IndicatorEngine = (*IndicatorEngine)(nil)
