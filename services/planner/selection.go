package planner

import (
	"fmt"

	"tripwise/models"
)

// SelectItems filters the normalized items down to those affordable within
// the per-day ceiling and located at the requested destination. Provider
// order is preserved (first-fit-in-order, no re-ranking by price) and the
// result is truncated to maxResults. An empty result is a valid outcome.
func SelectItems(ceiling float64, items []models.Item, destination string, maxResults int) []models.Item {
	selected := make([]models.Item, 0, maxResults)
	for _, item := range items {
		if item.Price > ceiling {
			continue
		}
		if !MatchesDestination(item.Location, destination) {
			continue
		}
		selected = append(selected, item)
		if len(selected) >= maxResults {
			break
		}
	}
	return selected
}

// BuildCategory wraps a category's selection in its response envelope. When
// nothing qualifies the category degrades to an empty list with an advisory
// message rather than failing the plan.
func BuildCategory(label string, budget float64, items []models.Item, destination string, maxResults int) models.CategorySuggestion {
	selected := SelectItems(budget, items, destination, maxResults)
	suggestion := models.CategorySuggestion{
		BudgetPerDay:   budget,
		SuggestedItems: selected,
		WithinBudget:   len(selected) > 0,
	}
	if len(selected) == 0 {
		suggestion.Message = fmt.Sprintf(
			"No %s options available within the daily budget for this destination; increase the budget, shorten the trip, or reduce the group size.",
			label,
		)
	}
	return suggestion
}
