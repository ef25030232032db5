package analysis

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"PortfolioLab/internal/domain/models"
)

func makeSeries(key string, values ...float64) []models.TimeSeriesPoint {
	out := make([]models.TimeSeriesPoint, len(values))
	for i, v := range values {
		v := v
		out[i] = models.TimeSeriesPoint{
			Date:   fmt.Sprintf("2024-01-%02d", i+1),
			Values: map[string]*float64{key: &v},
		}
	}
	return out
}

func column(series []models.TimeSeriesPoint, key string) []*float64 {
	out := make([]*float64, len(series))
	for i, p := range series {
		out[i] = p.Values[key]
	}
	return out
}

func TestMovingAverageConstantSeries(t *testing.T) {
	e := NewIndicatorEngine()
	series := makeSeries("portfolio", 100, 100, 100, 100, 100, 100, 100, 100, 100, 100)
	specs := []models.IndicatorSpec{{ID: "ma5", Enabled: true}}

	out := e.Apply(series, specs, "portfolio")
	col := column(out, "ma5")

	for i := 0; i < 4; i++ {
		if col[i] != nil {
			t.Fatalf("index %d: expected nil before full window, got %v", i, *col[i])
		}
	}
	for i := 4; i < 10; i++ {
		if col[i] == nil || *col[i] != 100 {
			t.Fatalf("index %d: expected 100, got %v", i, col[i])
		}
	}
}

func TestMovingAveragePeriodFromParams(t *testing.T) {
	e := NewIndicatorEngine()
	series := makeSeries("portfolio", 1, 2, 3)
	specs := []models.IndicatorSpec{{ID: "ma", Enabled: true, Params: models.IndicatorParams{Period: 2}}}

	out := e.Apply(series, specs, "portfolio")
	col := column(out, "ma")
	if col[0] != nil || col[1] == nil || *col[1] != 1.5 || *col[2] != 2.5 {
		t.Fatalf("unexpected ma column %v", col)
	}
}

func TestDrawdownTracksRunningPeak(t *testing.T) {
	e := NewIndicatorEngine()
	series := makeSeries("portfolio", 100, 110, 90, 95)
	specs := []models.IndicatorSpec{{ID: "drawdown", Enabled: true}}

	out := e.Apply(series, specs, "portfolio")
	col := column(out, "drawdown")

	want := []float64{0, 0, (90.0 - 110) / 110 * 100, (95.0 - 110) / 110 * 100}
	for i, w := range want {
		if col[i] == nil || math.Abs(*col[i]-w) > 1e-9 {
			t.Fatalf("index %d: want %v got %v", i, w, col[i])
		}
	}
	for i, v := range col {
		if *v > 0 {
			t.Fatalf("index %d: drawdown must never be positive, got %v", i, *v)
		}
	}
}

func TestDrawdownZeroPeakIsDefined(t *testing.T) {
	e := NewIndicatorEngine()
	series := makeSeries("portfolio", 0, -5, 10)
	out := e.Apply(series, []models.IndicatorSpec{{ID: "drawdown", Enabled: true}}, "portfolio")
	col := column(out, "drawdown")

	// non-positive peaks report 0 instead of NaN/Inf
	if *col[0] != 0 || *col[1] != 0 {
		t.Fatalf("expected 0 for non-positive peak, got %v %v", *col[0], *col[1])
	}
	if *col[2] != 0 {
		t.Fatalf("index 2 is its own positive peak, got %v", *col[2])
	}
}

func TestRollingReturns(t *testing.T) {
	e := NewIndicatorEngine()
	series := makeSeries("portfolio", 100, 110, 121)
	specs := []models.IndicatorSpec{{ID: "rollingReturns", Enabled: true, Params: models.IndicatorParams{Period: 1}}}

	out := e.Apply(series, specs, "portfolio")
	col := column(out, "rollingReturns")

	if col[0] != nil {
		t.Fatalf("expected nil before first full period")
	}
	if math.Abs(*col[1]-10) > 1e-9 || math.Abs(*col[2]-10) > 1e-9 {
		t.Fatalf("unexpected rolling returns %v %v", *col[1], *col[2])
	}
}

func TestRollingReturnsRequiresPeriod(t *testing.T) {
	e := NewIndicatorEngine()
	series := makeSeries("portfolio", 100, 110)
	out := e.Apply(series, []models.IndicatorSpec{{ID: "rollingReturns", Enabled: true}}, "portfolio")
	if _, ok := out[1].Values["rollingReturns"]; ok {
		t.Fatalf("missing period must be a no-op")
	}
}

func TestApplyOrderIndependence(t *testing.T) {
	e := NewIndicatorEngine()
	series := makeSeries("portfolio", 100, 105, 95, 120, 80, 130)
	a := []models.IndicatorSpec{
		{ID: "ma3", Enabled: true},
		{ID: "drawdown", Enabled: true},
	}
	b := []models.IndicatorSpec{
		{ID: "drawdown", Enabled: true},
		{ID: "ma3", Enabled: true},
	}

	outA := e.Apply(series, a, "portfolio")
	outB := e.Apply(series, b, "portfolio")
	if !reflect.DeepEqual(outA, outB) {
		t.Fatalf("indicator output must not depend on spec order")
	}
}

func TestApplySkipsDisabledAndUnknown(t *testing.T) {
	e := NewIndicatorEngine()
	series := makeSeries("portfolio", 100, 110)
	specs := []models.IndicatorSpec{
		{ID: "ma2", Enabled: false},
		{ID: "bollinger", Enabled: true},
		{ID: "maX", Enabled: true},
	}

	out := e.Apply(series, specs, "portfolio")
	for i, p := range out {
		if len(p.Values) != 1 {
			t.Fatalf("index %d: expected untouched point, got %v", i, p.Values)
		}
	}
}

func TestApplyOneBadSpecDoesNotSuppressOthers(t *testing.T) {
	e := NewIndicatorEngine()
	series := makeSeries("portfolio", 100, 110, 120)
	specs := []models.IndicatorSpec{
		{ID: "rollingReturns", Enabled: true}, // missing period: no-op
		{ID: "ma2", Enabled: true},
	}

	out := e.Apply(series, specs, "portfolio")
	if out[2].Values["ma2"] == nil {
		t.Fatalf("valid spec must still produce output")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	e := NewIndicatorEngine()
	series := makeSeries("portfolio", 100, 110, 120)
	e.Apply(series, []models.IndicatorSpec{{ID: "ma2", Enabled: true}}, "portfolio")

	for i, p := range series {
		if len(p.Values) != 1 {
			t.Fatalf("index %d: input series was mutated: %v", i, p.Values)
		}
	}
}
