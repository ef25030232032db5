package models

// TimeSeriesPoint is one time-ascending record of a value series. Values maps
// series name to value; a nil entry renders as JSON null, which is how
// indicators report "insufficient history" at the head of a window.
type TimeSeriesPoint struct {
	Date   string              `json:"date"`
	Values map[string]*float64 `json:"values"`
}

// Value returns the named series value at this point, or (0, false) when the
// key is absent or null.
func (p TimeSeriesPoint) Value(key string) (float64, bool) {
	v, ok := p.Values[key]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// IndicatorParams holds per-indicator tuning. Period is the window or
// lookback length, depending on the indicator family.
type IndicatorParams struct {
	Period int `json:"period,omitempty"`
}

// IndicatorSpec selects one overlay computation. Recognized ID families:
// "ma<period>", "drawdown", "rollingReturns". Anything else is a no-op.
type IndicatorSpec struct {
	ID      string          `json:"id"`
	Enabled bool            `json:"enabled"`
	Params  IndicatorParams `json:"params"`
}

// PerformanceSummary holds whole-series performance and risk figures derived
// from one value series. Partial marks summaries where the series was too
// short or too flat to compute every field; uncomputable fields stay zero.
type PerformanceSummary struct {
	CumulativeReturn float64 `json:"cumulativeReturn"`
	CAGR             float64 `json:"cagr"`
	Volatility       float64 `json:"volatility"`
	MaxDrawdown      float64 `json:"maxDrawdown"`
	SharpeRatio      float64 `json:"sharpeRatio"`
	Partial          bool    `json:"partial"`
}
