package external

import (
	"context"

	"tripwise/models"
)

// Upstream list endpoints.
const (
	EndpointActivities  = "activities"
	EndpointHotels      = "hotels"
	EndpointPlains      = "plains"
	EndpointRestaurants = "restaurants"
	EndpointCities      = "cities"
)

// Gateway abstracts the external travel-data provider. Implementations return
// opaque record lists; interpreting their schema is the planner's concern.
type Gateway interface {
	// FetchList GETs one of the list endpoints and returns its records.
	FetchList(ctx context.Context, endpoint string) ([]models.RawRecord, error)

	// FetchCities returns the upstream city registry.
	FetchCities(ctx context.Context) ([]models.City, error)

	// SubmitBudget POSTs a computed budget payload to the upstream /budgets
	// endpoint.
	SubmitBudget(ctx context.Context, payload map[string]any) error
}
