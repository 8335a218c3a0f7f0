package planner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/services/external"
)

// categoryEndpoints maps each budget category to its upstream list endpoint.
var categoryEndpoints = map[string]string{
	models.CategoryHotels:     external.EndpointHotels,
	models.CategoryFood:       external.EndpointRestaurants,
	models.CategoryActivities: external.EndpointActivities,
	models.CategoryTransport:  external.EndpointPlains,
}

// DefaultPlannerService implements PlannerService against the external
// travel-data gateway.
type DefaultPlannerService struct {
	Gateway external.Gateway
	Config  Config
	Logger  *zap.Logger
}

// PlanTrip computes the budget allocation and matches upstream inventory
// against it. Validation runs before any upstream call; a failed category
// fetch degrades that category to an empty suggestion list.
func (s *DefaultPlannerService) PlanTrip(ctx context.Context, req models.TripRequest) (*models.TripPlanResponse, error) {
	allocation, err := Allocate(req.TotalBudget, req.PeopleCount, req.Days, req.Percentages, s.Config.DefaultPercentages)
	if err != nil {
		return nil, err
	}

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return nil, NewValidationError("destination must not be empty")
	}
	if req.CityID != nil {
		name, err := s.resolveCityName(ctx, *req.CityID)
		if err != nil {
			return nil, err
		}
		destination = name
	}

	raw := s.fetchCategories(ctx)

	categories := make(map[string]models.CategorySuggestion, len(models.Categories))
	for _, category := range models.Categories {
		items := NormalizeRecords(raw[category], s.Config.Fields)
		categories[category] = BuildCategory(category, allocation.BudgetsPerDay[category], items, destination, s.Config.MaxSuggestions)
	}

	response := &models.TripPlanResponse{
		PerPersonTotal:  allocation.PerPersonTotal,
		PerPersonPerDay: allocation.PerPersonPerDay,
		BudgetsPerDay:   allocation.BudgetsPerDay,
		Hotels:          categories[models.CategoryHotels],
		Food:            categories[models.CategoryFood],
		Activities:      categories[models.CategoryActivities],
		Transport:       categories[models.CategoryTransport],
	}

	// Pushing the computed plan upstream is best-effort: the plan itself is
	// already complete, so submission failures only get logged.
	if req.FromCityID != nil && req.UserID != nil {
		if err := s.submitBudget(ctx, req, response, destination); err != nil {
			s.Logger.Warn("budget submission failed", zap.Error(err))
		}
	}

	return response, nil
}

// PreviewExternalData returns up to limit raw records per category. A failed
// endpoint contributes an empty sample.
func (s *DefaultPlannerService) PreviewExternalData(ctx context.Context, limit int) (*models.ExternalPreview, error) {
	raw := s.fetchCategories(ctx)
	return &models.ExternalPreview{
		ActivitiesSample:  truncateRecords(raw[models.CategoryActivities], limit),
		HotelsSample:      truncateRecords(raw[models.CategoryHotels], limit),
		PlainsSample:      truncateRecords(raw[models.CategoryTransport], limit),
		RestaurantsSample: truncateRecords(raw[models.CategoryFood], limit),
	}, nil
}

// fetchCategories fans out one fetch per category and joins them. The
// fetches are independent; a failure in one never blocks the others.
func (s *DefaultPlannerService) fetchCategories(ctx context.Context) map[string][]models.RawRecord {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		raw = make(map[string][]models.RawRecord, len(categoryEndpoints))
	)

	for category, endpoint := range categoryEndpoints {
		wg.Add(1)
		go func(category, endpoint string) {
			defer wg.Done()
			records, err := s.Gateway.FetchList(ctx, endpoint)
			if err != nil {
				s.Logger.Warn("upstream fetch failed, degrading category to empty",
					zap.String("category", category),
					zap.String("endpoint", endpoint),
					zap.Error(err),
				)
				return
			}
			mu.Lock()
			raw[category] = records
			mu.Unlock()
		}(category, endpoint)
	}

	wg.Wait()
	return raw
}

// resolveCityName maps a city_id to its upstream city name.
func (s *DefaultPlannerService) resolveCityName(ctx context.Context, cityID int) (string, error) {
	cities, err := s.Gateway.FetchCities(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch cities: %w", err)
	}
	for _, city := range cities {
		if city.ID == cityID {
			return city.Name, nil
		}
	}
	return "", NewValidationError(fmt.Sprintf("no city found with id %d", cityID))
}

// findCityID looks a city up by name, case-insensitively.
func (s *DefaultPlannerService) findCityID(ctx context.Context, name string) (int, bool) {
	cities, err := s.Gateway.FetchCities(ctx)
	if err != nil {
		return 0, false
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, city := range cities {
		if strings.ToLower(strings.TrimSpace(city.Name)) == want {
			return city.ID, true
		}
	}
	return 0, false
}

func truncateRecords(records []models.RawRecord, limit int) []models.RawRecord {
	if limit < 0 {
		limit = 0
	}
	if records == nil {
		return []models.RawRecord{}
	}
	if len(records) <= limit {
		return records
	}
	return records[:limit]
}
