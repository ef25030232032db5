package models

// ProjectionScenario holds the user-adjustable growth parameters. All values
// are accepted arithmetically; range checks belong to the transport layer.
type ProjectionScenario struct {
	TargetAmount         float64 `json:"targetAmount"`
	TimeHorizonYears     int     `json:"timeHorizonYears"`
	MonthlyContribution  float64 `json:"monthlyContribution"`
	ExpectedAnnualReturn float64 `json:"expectedAnnualReturn"` // fraction, e.g. 0.07
}

// ProjectionPoint is one projected year under the three derived return rates.
type ProjectionPoint struct {
	Year         int     `json:"year"`
	Optimistic   float64 `json:"optimistic"`
	Expected     float64 `json:"expected"`
	Conservative float64 `json:"conservative"`
}

// ProjectionSummary carries the scalars derived from the expected series.
// SuccessProbability is a display heuristic, not a statistical estimate.
type ProjectionSummary struct {
	SuccessProbability float64 `json:"successProbability"`
	TotalContributions float64 `json:"totalContributions"`
	GrowthFromReturns  float64 `json:"growthFromReturns"`
	FinalExpected      float64 `json:"finalExpected"`
}

// ProjectionResult is the full projection table plus its summary.
type ProjectionResult struct {
	Points  []ProjectionPoint `json:"points"`
	Summary ProjectionSummary `json:"summary"`
}
