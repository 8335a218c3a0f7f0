package planner

import (
	"fmt"
	"math"

	"tripwise/models"
)

// percentSumTolerance bounds the accepted deviation of a custom percentage
// split from 1.0.
const percentSumTolerance = 0.001

// Allocate turns the trip budget inputs into a per-person, per-day breakdown.
// It is pure: no I/O, no rounding (display formatting is a client concern).
// When percentages is nil the default split is used; a provided split must
// cover exactly the recognized categories and sum to 1.0 within tolerance.
func Allocate(totalBudget float64, peopleCount, days int, percentages map[string]float64, defaults map[string]float64) (*models.BudgetAllocation, error) {
	if totalBudget <= 0 {
		return nil, NewValidationError("total_budget must be positive")
	}
	if peopleCount <= 0 {
		return nil, NewValidationError("people_count must be positive")
	}
	if days <= 0 {
		return nil, NewValidationError("days must be positive")
	}

	split := percentages
	if split == nil {
		split = defaults
	}
	if err := validateSplit(split); err != nil {
		return nil, err
	}

	perPersonTotal := totalBudget / float64(peopleCount)
	perPersonPerDay := perPersonTotal / float64(days)

	budgetsPerDay := make(map[string]float64, len(models.Categories))
	for _, category := range models.Categories {
		budgetsPerDay[category] = perPersonPerDay * split[category]
	}

	return &models.BudgetAllocation{
		PerPersonTotal:  perPersonTotal,
		PerPersonPerDay: perPersonPerDay,
		BudgetsPerDay:   budgetsPerDay,
	}, nil
}

// validateSplit rejects partial or unknown categories and splits that do not
// sum to 1.0. A partial split is ambiguous and must never be silently
// renormalized.
func validateSplit(split map[string]float64) error {
	recognized := make(map[string]bool, len(models.Categories))
	for _, category := range models.Categories {
		recognized[category] = true
	}

	sum := 0.0
	for category, fraction := range split {
		if !recognized[category] {
			return NewValidationError(fmt.Sprintf("unrecognized budget category %q", category))
		}
		sum += fraction
	}
	for _, category := range models.Categories {
		if _, ok := split[category]; !ok {
			return NewValidationError(fmt.Sprintf("missing budget category %q", category))
		}
	}
	if math.Abs(sum-1.0) > percentSumTolerance {
		return NewValidationError("percentages (hotels + food + activities + transport) must sum to 1.0")
	}
	return nil
}
