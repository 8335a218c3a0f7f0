package planner

import "tripwise/models"

// FieldCandidates holds the ordered candidate key names per semantic role.
// Order encodes priority: the first key present in a record wins. The lists
// are configuration, not code; adjust them when the upstream schema drifts
// (use /external-preview to inspect the live field names).
type FieldCandidates struct {
	Price    []string
	Location []string
	Name     []string
	URL      []string
}

// Config carries the planner tunables. It is passed explicitly so tests can
// override values per case without touching process-wide state.
type Config struct {
	Fields             FieldCandidates
	DefaultPercentages map[string]float64
	MaxSuggestions     int
}

// DefaultConfig returns the planner defaults observed against the current
// upstream schema.
func DefaultConfig() Config {
	return Config{
		Fields: FieldCandidates{
			Price:    []string{"price", "price_per_night", "min_price", "max_price", "amount", "cost"},
			Location: []string{"city", "city_name", "region", "location", "destination", "area", "address"},
			Name:     []string{"name", "title", "hotel_name", "activity_name"},
			URL:      []string{"url", "link", "website", "booking_url"},
		},
		DefaultPercentages: map[string]float64{
			models.CategoryHotels:     0.40,
			models.CategoryFood:       0.25,
			models.CategoryActivities: 0.20,
			models.CategoryTransport:  0.15,
		},
		MaxSuggestions: 3,
	}
}
