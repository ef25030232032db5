package analysis

import (
	"reflect"
	"testing"

	"PortfolioLab/internal/domain/models"
)

func TestValidateEmptyTicker(t *testing.T) {
	v := NewPortfolioValidator()
	report := v.Validate([]models.Holding{
		{Symbol: "", Allocation: 50},
		{Symbol: "A", Allocation: 60},
	})

	if !report.HasEmptyTickers {
		t.Fatalf("expected HasEmptyTickers")
	}
	if report.TotalWeight != 110 {
		t.Fatalf("unexpected total weight %v", report.TotalWeight)
	}
	if report.Errors[0].Symbol != "Required" {
		t.Fatalf("expected row 0 symbol error, got %+v", report.Errors[0])
	}
	if report.IsValid {
		t.Fatalf("expected invalid report")
	}
}

func TestValidateWhitespaceTickerIsEmpty(t *testing.T) {
	report := NewPortfolioValidator().Validate([]models.Holding{{Symbol: "   ", Allocation: 100}})
	if !report.HasEmptyTickers {
		t.Fatalf("expected whitespace symbol to be treated as empty")
	}
}

func TestValidateDuplicateCaseInsensitive(t *testing.T) {
	report := NewPortfolioValidator().Validate([]models.Holding{
		{Symbol: "abc", Allocation: 50},
		{Symbol: " ABC ", Allocation: 50},
	})

	if !report.HasDuplicates {
		t.Fatalf("expected HasDuplicates")
	}
	if !reflect.DeepEqual(report.DuplicateSymbols, []string{"ABC"}) {
		t.Fatalf("unexpected duplicate symbols %v", report.DuplicateSymbols)
	}
	if !report.Errors[0].Duplicate || !report.Errors[1].Duplicate {
		t.Fatalf("expected both rows flagged duplicate, got %+v", report.Errors)
	}
}

func TestValidateEmptyTickersNeverDuplicate(t *testing.T) {
	report := NewPortfolioValidator().Validate([]models.Holding{
		{Symbol: "", Allocation: 50},
		{Symbol: "", Allocation: 50},
	})
	if report.HasDuplicates {
		t.Fatalf("empty tickers must not count as duplicates")
	}
	if len(report.DuplicateSymbols) != 0 {
		t.Fatalf("unexpected duplicate symbols %v", report.DuplicateSymbols)
	}
}

func TestValidateAllocationRange(t *testing.T) {
	report := NewPortfolioValidator().Validate([]models.Holding{
		{Symbol: "A", Allocation: -5},
		{Symbol: "B", Allocation: 105},
		{Symbol: "C", Allocation: 0},
	})

	if !report.HasInvalidWeights {
		t.Fatalf("expected HasInvalidWeights")
	}
	if report.Errors[0].Allocation != "0-100" || report.Errors[1].Allocation != "0-100" {
		t.Fatalf("expected range errors on rows 0 and 1, got %+v", report.Errors)
	}
	if _, ok := report.Errors[2]; ok {
		t.Fatalf("row 2 should be clean")
	}
	// invalid allocations still count toward the sum
	if report.TotalWeight != 100 {
		t.Fatalf("unexpected total weight %v", report.TotalWeight)
	}
}

func TestValidateAllocationBoundsTolerance(t *testing.T) {
	tests := []struct {
		name       string
		allocation float64
		invalid    bool
	}{
		{"just over 100 within tolerance", 100.005, false},
		{"just under 0 within tolerance", -0.005, false},
		{"over 100 beyond tolerance", 100.02, true},
		{"under 0 beyond tolerance", -0.02, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewPortfolioValidator().Validate([]models.Holding{{Symbol: "A", Allocation: tt.allocation}})
			if report.HasInvalidWeights != tt.invalid {
				t.Fatalf("HasInvalidWeights = %v, want %v", report.HasInvalidWeights, tt.invalid)
			}
			if _, ok := report.Errors[0]; ok != tt.invalid {
				t.Fatalf("row error presence = %v, want %v (%+v)", ok, tt.invalid, report.Errors)
			}
		})
	}
}

func TestValidateWeightWarningIndependence(t *testing.T) {
	within := NewPortfolioValidator().Validate([]models.Holding{{Symbol: "A", Allocation: 100.005}})
	if !within.IsValid {
		t.Fatalf("expected valid report")
	}
	if within.WeightWarning {
		t.Fatalf("deviation within tolerance must not warn")
	}

	under := NewPortfolioValidator().Validate([]models.Holding{{Symbol: "A", Allocation: 90}})
	if !under.IsValid {
		t.Fatalf("under-allocated portfolio is still structurally valid")
	}
	if under.TotalWeight != 90 {
		t.Fatalf("unexpected total weight %v", under.TotalWeight)
	}
	if !under.WeightWarning {
		t.Fatalf("expected weight warning at 90")
	}
}

func TestValidateMergesRowErrors(t *testing.T) {
	report := NewPortfolioValidator().Validate([]models.Holding{
		{Symbol: "A", Allocation: 150},
		{Symbol: "a", Allocation: 10},
	})

	row := report.Errors[0]
	if row.Allocation != "0-100" || !row.Duplicate {
		t.Fatalf("expected merged allocation+duplicate error, got %+v", row)
	}
}

func TestValidateEmptyInput(t *testing.T) {
	report := NewPortfolioValidator().Validate(nil)
	if !report.IsValid {
		t.Fatalf("empty holdings list has no structural errors")
	}
	if !report.WeightWarning {
		t.Fatalf("zero total weight deviates from 100")
	}
	if report.TotalWeight != 0 {
		t.Fatalf("unexpected total weight %v", report.TotalWeight)
	}
}
