package planner

import (
	"context"
	"fmt"

	"tripwise/models"
)

// budgetSubTypes maps each category to the upstream budget_sub type and the
// per-item unit label expected by the /budgets endpoint.
var budgetSubTypes = map[string]struct {
	subType  string
	unitType string
}{
	models.CategoryFood:       {"restaurant", "meal day"},
	models.CategoryHotels:     {"hotel", "night"},
	models.CategoryActivities: {"activities", "activity"},
	models.CategoryTransport:  {"plane", "round trip"},
}

// submitBudget pushes the computed plan to the upstream /budgets endpoint.
// The destination city id comes from to_city_id, then city_id, then a name
// lookup; without one the submission is skipped.
func (s *DefaultPlannerService) submitBudget(ctx context.Context, req models.TripRequest, plan *models.TripPlanResponse, destination string) error {
	toCityID := 0
	switch {
	case req.ToCityID != nil:
		toCityID = *req.ToCityID
	case req.CityID != nil:
		toCityID = *req.CityID
	default:
		id, ok := s.findCityID(ctx, destination)
		if !ok {
			return fmt.Errorf("destination city id not resolvable for %q", destination)
		}
		toCityID = id
	}

	split := req.Percentages
	if split == nil {
		split = s.Config.DefaultPercentages
	}

	suggestions := map[string]models.CategorySuggestion{
		models.CategoryFood:       plan.Food,
		models.CategoryHotels:     plan.Hotels,
		models.CategoryActivities: plan.Activities,
		models.CategoryTransport:  plan.Transport,
	}

	budgetSub := make([]map[string]any, 0, len(models.Categories))
	for _, category := range models.Categories {
		suggestion := suggestions[category]
		items := make([]map[string]any, 0, len(suggestion.SuggestedItems))
		for _, item := range suggestion.SuggestedItems {
			if item.ID == nil {
				continue
			}
			items = append(items, map[string]any{
				"type_id": *item.ID,
				"amount":  item.Price,
				"types":   budgetSubTypes[category].unitType,
			})
		}
		if len(items) == 0 {
			continue
		}
		description := suggestion.Message
		if description == "" {
			description = fmt.Sprintf("%s budget", budgetSubTypes[category].subType)
		}
		budgetSub = append(budgetSub, map[string]any{
			"type":        budgetSubTypes[category].subType,
			"presentaige": int(split[category] * 100),
			"description": description,
			"items":       items,
		})
	}

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("Trip Budget - %s", destination)
	}
	address := req.Address
	if address == "" {
		address = "123 Budget St"
	}

	payload := map[string]any{
		"name":         name,
		"address":      address,
		"teams_number": req.PeopleCount,
		"days":         req.Days,
		"amount":       fmt.Sprintf("%.2f", req.TotalBudget),
		"from_city_id": *req.FromCityID,
		"to_city_id":   toCityID,
		"user_id":      *req.UserID,
		"budget_sub":   budgetSub,
	}

	return s.Gateway.SubmitBudget(ctx, payload)
}
