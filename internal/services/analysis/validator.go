package analysis

import (
	"math"
	"sort"
	"strings"

	"PortfolioLab/internal/domain/models"
	domsvc "PortfolioLab/internal/domain/service"
)

// WeightSumTolerance is the allowed deviation of the allocation sum from 100
// before the non-blocking weight warning fires.
const WeightSumTolerance = 0.01

// PortfolioValidator checks holdings lists. Stateless; safe for concurrent use.
type PortfolioValidator struct{}

func NewPortfolioValidator() *PortfolioValidator { return &PortfolioValidator{} }

// Validate runs a single pass over the holdings collecting row errors and
// occurrence counts, then a second pass marking duplicate rows. Symbols are
// trimmed and upper-cased for comparison only; the input is never mutated.
// Every finding is advisory — no input fails validation fatally.
func (v *PortfolioValidator) Validate(holdings []models.Holding) models.ValidationReport {
	report := models.ValidationReport{
		DuplicateSymbols: []string{},
		Errors:           make(map[int]models.RowError),
	}

	counts := make(map[string]int, len(holdings))
	normalized := make([]string, len(holdings))

	for i, h := range holdings {
		report.TotalWeight += h.Allocation

		sym := strings.ToUpper(strings.TrimSpace(h.Symbol))
		normalized[i] = sym

		var rowErr models.RowError
		if sym == "" {
			// An empty ticker never counts toward duplicates.
			rowErr.Symbol = "Required"
			report.HasEmptyTickers = true
		} else {
			counts[sym]++
		}

		// The bounds carry the same tolerance as the sum check, so 100.005
		// is an over-allocation warning rather than a row error.
		if h.Allocation < -WeightSumTolerance || h.Allocation > 100+WeightSumTolerance {
			rowErr.Allocation = "0-100"
			report.HasInvalidWeights = true
		}

		if rowErr != (models.RowError{}) {
			report.Errors[i] = rowErr
		}
	}

	dupes := make(map[string]bool)
	for sym, n := range counts {
		if n >= 2 {
			dupes[sym] = true
			report.DuplicateSymbols = append(report.DuplicateSymbols, sym)
		}
	}
	sort.Strings(report.DuplicateSymbols)

	if len(dupes) > 0 {
		report.HasDuplicates = true
		for i := range holdings {
			if dupes[normalized[i]] {
				rowErr := report.Errors[i]
				rowErr.Duplicate = true
				report.Errors[i] = rowErr
			}
		}
	}

	report.IsValid = !report.HasEmptyTickers && !report.HasDuplicates && !report.HasInvalidWeights
	// The weight-sum deviation is a warning, not an error, and is only
	// surfaced once the portfolio is otherwise structurally valid.
	report.WeightWarning = report.IsValid && math.Abs(report.TotalWeight-100) > WeightSumTolerance

	return report
}

var _ domsvc.PortfolioValidator = (*PortfolioValidator)(nil)
