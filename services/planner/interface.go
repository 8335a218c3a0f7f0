package planner

import (
	"context"

	"tripwise/models"
)

// PlannerService defines the trip planning operations exposed to the HTTP layer.
type PlannerService interface {
	// PlanTrip validates the budget inputs, allocates per-category daily
	// ceilings, and matches upstream inventory against them. Only a
	// *ValidationError aborts the request; upstream failures degrade to
	// empty category suggestions.
	PlanTrip(ctx context.Context, req models.TripRequest) (*models.TripPlanResponse, error)

	// PreviewExternalData returns a bounded sample of raw upstream records
	// per category, for diagnosing field-name drift.
	PreviewExternalData(ctx context.Context, limit int) (*models.ExternalPreview, error)
}
