package models

// Holding is one portfolio line item as entered by the user. Allocation is a
// percentage point value and is not required to sum to 100 across holdings.
type Holding struct {
	Symbol     string  `json:"symbol"`
	Name       string  `json:"name,omitempty"`
	Allocation float64 `json:"allocation"`
}

// RowError carries per-holding validation findings. Zero value means the row
// is clean.
type RowError struct {
	Symbol     string `json:"symbol,omitempty"`     // "Required" when the trimmed symbol is empty
	Allocation string `json:"allocation,omitempty"` // "0-100" when allocation is out of range
	Duplicate  bool   `json:"duplicate,omitempty"`
}

// ValidationReport is the advisory result of validating a holdings list.
// Findings never block anything here; callers decide what gates on IsValid.
type ValidationReport struct {
	TotalWeight       float64          `json:"totalWeight"`
	HasEmptyTickers   bool             `json:"hasEmptyTickers"`
	HasDuplicates     bool             `json:"hasDuplicates"`
	HasInvalidWeights bool             `json:"hasInvalidWeights"`
	IsValid           bool             `json:"isValid"`
	WeightWarning     bool             `json:"weightWarning"`
	DuplicateSymbols  []string         `json:"duplicateSymbols"`
	Errors            map[int]RowError `json:"errors"`
}
