package models

// Requests for analysis HTTP endpoints. Defined in domain for consistency and reuse.

type ValidateRequest struct {
	Holdings []Holding `json:"holdings" validate:"required,max=500"`
}

type IndicatorsRequest struct {
	Series    []TimeSeriesPoint `json:"series" validate:"required,max=5000"`
	Specs     []IndicatorSpec   `json:"specs" validate:"max=20"`
	SourceKey string            `json:"sourceKey" default:"portfolio" validate:"required"`
}

type ProjectionRequest struct {
	CurrentValue         float64 `query:"currentValue" json:"currentValue" validate:"gte=0"`
	TargetAmount         float64 `query:"targetAmount" json:"targetAmount" validate:"gte=0"`
	TimeHorizonYears     int     `query:"timeHorizonYears" json:"timeHorizonYears" default:"10" validate:"gte=0,lte=100"`
	MonthlyContribution  float64 `query:"monthlyContribution" json:"monthlyContribution" validate:"gte=0"`
	ExpectedAnnualReturn float64 `query:"expectedAnnualReturn" json:"expectedAnnualReturn" default:"0.07" validate:"gte=0,lte=1"`
}

func (r *ProjectionRequest) Scenario() ProjectionScenario {
	return ProjectionScenario{
		TargetAmount:         r.TargetAmount,
		TimeHorizonYears:     r.TimeHorizonYears,
		MonthlyContribution:  r.MonthlyContribution,
		ExpectedAnnualReturn: r.ExpectedAnnualReturn,
	}
}

type PerformanceRequest struct {
	Series    []TimeSeriesPoint `json:"series" validate:"required,min=1,max=5000"`
	SourceKey string            `json:"sourceKey" default:"portfolio" validate:"required"`
}
