package models

// Recognized budget categories. Percentages must cover exactly this set.
const (
	CategoryHotels     = "hotels"
	CategoryFood       = "food"
	CategoryActivities = "activities"
	CategoryTransport  = "transport"
)

// Categories lists the recognized categories in response order.
var Categories = []string{CategoryHotels, CategoryFood, CategoryActivities, CategoryTransport}

// TripRequest is the plan-trip input.
type TripRequest struct {
	TotalBudget float64            `json:"total_budget" binding:"required,gt=0"`
	PeopleCount int                `json:"people_count" binding:"required,gt=0"`
	Days        int                `json:"days" binding:"required,gt=0"`
	Destination string             `json:"destination" binding:"required"`
	CityID      *int               `json:"city_id,omitempty"`
	Percentages map[string]float64 `json:"percentages,omitempty"`

	// Optional fields used when submitting the computed plan upstream.
	Name       string `json:"name,omitempty"`
	Address    string `json:"address,omitempty"`
	FromCityID *int   `json:"from_city_id,omitempty"`
	ToCityID   *int   `json:"to_city_id,omitempty"`
	UserID     *int   `json:"user_id,omitempty"`
}

// BudgetAllocation is the derived per-person budget breakdown.
// Computed once per request and never mutated afterwards.
type BudgetAllocation struct {
	PerPersonTotal  float64            `json:"per_person_total"`
	PerPersonPerDay float64            `json:"per_person_per_day"`
	BudgetsPerDay   map[string]float64 `json:"budgets_per_day"`
}

// RawRecord is an upstream record whose schema is not under our control.
type RawRecord = map[string]any

// Item is a canonical inventory item after field resolution.
// Price is always resolvable; everything else is best-effort.
type Item struct {
	ID       *int      `json:"id,omitempty"`
	Name     string    `json:"name,omitempty"`
	Price    float64   `json:"price"`
	MinPrice float64   `json:"min_price,omitempty"`
	MaxPrice float64   `json:"max_price,omitempty"`
	Location string    `json:"location,omitempty"`
	URL      string    `json:"url,omitempty"`
	Raw      RawRecord `json:"raw,omitempty"`
}

// CategorySuggestion wraps the selected items for one category.
type CategorySuggestion struct {
	BudgetPerDay   float64 `json:"budget_per_day"`
	SuggestedItems []Item  `json:"suggested_items"`
	WithinBudget   bool    `json:"within_budget"`
	Message        string  `json:"message,omitempty"`
}

// TripPlanResponse is the full plan-trip output.
type TripPlanResponse struct {
	PerPersonTotal  float64            `json:"per_person_total"`
	PerPersonPerDay float64            `json:"per_person_per_day"`
	BudgetsPerDay   map[string]float64 `json:"budgets_per_day"`
	Hotels          CategorySuggestion `json:"hotels"`
	Food            CategorySuggestion `json:"food"`
	Activities      CategorySuggestion `json:"activities"`
	Transport       CategorySuggestion `json:"transport"`
}

// ExternalPreview is a bounded sample of raw upstream records per category.
type ExternalPreview struct {
	ActivitiesSample  []RawRecord `json:"activities_sample"`
	HotelsSample      []RawRecord `json:"hotels_sample"`
	PlainsSample      []RawRecord `json:"plains_sample"`
	RestaurantsSample []RawRecord `json:"restaurants_sample"`
}

// City is an upstream city entry used for city_id resolution.
type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
