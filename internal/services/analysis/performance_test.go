package analysis

import (
	"math"
	"testing"
)

func TestSummarizeCumulativeAndDrawdown(t *testing.T) {
	s := NewPerformanceSummarizer()
	series := makeSeries("portfolio", 100, 110, 99, 108.9)

	got := s.Summarize(series, "portfolio")
	if got.Partial {
		t.Fatalf("expected complete summary")
	}
	if math.Abs(got.CumulativeReturn-0.089) > 1e-9 {
		t.Fatalf("cumulative return = %v", got.CumulativeReturn)
	}
	// trough at 99 against peak 110
	if math.Abs(got.MaxDrawdown-(99.0-110)/110) > 1e-9 {
		t.Fatalf("max drawdown = %v", got.MaxDrawdown)
	}
	if got.Volatility <= 0 || got.SharpeRatio == 0 {
		t.Fatalf("expected risk figures, got %+v", got)
	}
}

func TestSummarizeSinglePointIsPartial(t *testing.T) {
	s := NewPerformanceSummarizer()
	got := s.Summarize(makeSeries("portfolio", 100), "portfolio")
	if !got.Partial {
		t.Fatalf("single point cannot produce returns")
	}
	if got.CumulativeReturn != 0 || got.Volatility != 0 {
		t.Fatalf("uncomputable fields must stay zero, got %+v", got)
	}
}

func TestSummarizeFlatSeriesIsPartial(t *testing.T) {
	s := NewPerformanceSummarizer()
	got := s.Summarize(makeSeries("portfolio", 100, 100, 100, 100), "portfolio")
	if !got.Partial {
		t.Fatalf("zero volatility leaves Sharpe undefined")
	}
	if got.SharpeRatio != 0 || got.CumulativeReturn != 0 {
		t.Fatalf("unexpected summary %+v", got)
	}
}

func TestSummarizeSkipsMissingAndNonPositiveBases(t *testing.T) {
	s := NewPerformanceSummarizer()
	series := makeSeries("portfolio", 100, 0, 110, 121)
	series[1].Values["portfolio"] = nil

	got := s.Summarize(series, "portfolio")
	// returns: 110/100-1, 121/110-1
	if math.Abs(got.CumulativeReturn-0.21) > 1e-9 {
		t.Fatalf("cumulative return = %v", got.CumulativeReturn)
	}
}

func TestSummarizeMissingKey(t *testing.T) {
	s := NewPerformanceSummarizer()
	got := s.Summarize(makeSeries("portfolio", 100, 110), "benchmark")
	if !got.Partial {
		t.Fatalf("unknown source key yields a partial, zero summary")
	}
}
