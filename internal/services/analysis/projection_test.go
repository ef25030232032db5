package analysis

import (
	"testing"

	"PortfolioLab/internal/domain/models"
)

func TestProjectZeroContribution(t *testing.T) {
	e := NewProjectionEngine()
	res := e.Project(10000, models.ProjectionScenario{
		TimeHorizonYears:     1,
		ExpectedAnnualReturn: 0.10,
	})

	if len(res.Points) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Points))
	}
	if res.Points[1].Expected != 11000 {
		t.Fatalf("year-1 expected = %v, want 11000", res.Points[1].Expected)
	}
}

func TestProjectHorizonZero(t *testing.T) {
	e := NewProjectionEngine()
	res := e.Project(5000, models.ProjectionScenario{
		TargetAmount:         100000,
		MonthlyContribution:  500,
		ExpectedAnnualReturn: 0.07,
	})

	if len(res.Points) != 1 {
		t.Fatalf("expected single row, got %d", len(res.Points))
	}
	p := res.Points[0]
	if p.Year != 0 || p.Optimistic != 5000 || p.Expected != 5000 || p.Conservative != 5000 {
		t.Fatalf("unexpected horizon-0 row %+v", p)
	}
	if res.Summary.TotalContributions != 0 {
		t.Fatalf("no years elapsed, contributions should be 0")
	}
}

func TestProjectMonotonicScenarios(t *testing.T) {
	e := NewProjectionEngine()
	res := e.Project(10000, models.ProjectionScenario{
		TimeHorizonYears:     20,
		MonthlyContribution:  250,
		ExpectedAnnualReturn: 0.07,
	})

	for _, p := range res.Points[1:] {
		if p.Optimistic < p.Expected || p.Expected < p.Conservative {
			t.Fatalf("year %d: scenarios out of order: %+v", p.Year, p)
		}
	}
}

func TestProjectAnnualCompoundingWithContribution(t *testing.T) {
	e := NewProjectionEngine()
	res := e.Project(1000, models.ProjectionScenario{
		TimeHorizonYears:     2,
		MonthlyContribution:  100,
		ExpectedAnnualReturn: 0.10,
	})

	// year 1: 1000*1.1 + 1200 = 2300; year 2: 2300*1.1 + 1200 = 3730
	if res.Points[1].Expected != 2300 {
		t.Fatalf("year 1 = %v, want 2300", res.Points[1].Expected)
	}
	if res.Points[2].Expected != 3730 {
		t.Fatalf("year 2 = %v, want 3730", res.Points[2].Expected)
	}
}

func TestProjectSummaryScalars(t *testing.T) {
	e := NewProjectionEngine()
	res := e.Project(1000, models.ProjectionScenario{
		TargetAmount:         1000000,
		TimeHorizonYears:     2,
		MonthlyContribution:  100,
		ExpectedAnnualReturn: 0.10,
	})

	s := res.Summary
	if s.FinalExpected != 3730 {
		t.Fatalf("final expected = %v", s.FinalExpected)
	}
	if s.TotalContributions != 2400 {
		t.Fatalf("total contributions = %v, want 2400", s.TotalContributions)
	}
	if want := 3730.0 - 1000 - 2400; s.GrowthFromReturns != want {
		t.Fatalf("growth from returns = %v, want %v", s.GrowthFromReturns, want)
	}
	if want := 3730.0 / 1000000 * 100 * 0.9; s.SuccessProbability != want {
		t.Fatalf("success probability = %v, want %v", s.SuccessProbability, want)
	}
}

func TestProjectSuccessProbabilityCeiling(t *testing.T) {
	e := NewProjectionEngine()
	res := e.Project(200000, models.ProjectionScenario{
		TargetAmount:         100000,
		TimeHorizonYears:     1,
		ExpectedAnnualReturn: 0.05,
	})
	if res.Summary.SuccessProbability != 85 {
		t.Fatalf("expected fixed ceiling once target reached, got %v", res.Summary.SuccessProbability)
	}
}

func TestProjectZeroRateAndZeroTarget(t *testing.T) {
	e := NewProjectionEngine()
	res := e.Project(100, models.ProjectionScenario{TimeHorizonYears: 3})

	for _, p := range res.Points {
		if p.Expected != 100 {
			t.Fatalf("zero rate, zero contribution must stay flat, got %+v", p)
		}
	}
	// target 0 is reached by definition
	if res.Summary.SuccessProbability != 85 {
		t.Fatalf("unexpected success probability %v", res.Summary.SuccessProbability)
	}
}
