package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripwise/handlers"
	"tripwise/models"
	"tripwise/routes"
	"tripwise/services/planner"
)

type fakePlannerService struct {
	plan       *models.TripPlanResponse
	planErr    error
	preview    *models.ExternalPreview
	previewErr error
	lastLimit  int
}

func (f *fakePlannerService) PlanTrip(_ context.Context, _ models.TripRequest) (*models.TripPlanResponse, error) {
	return f.plan, f.planErr
}

func (f *fakePlannerService) PreviewExternalData(_ context.Context, limit int) (*models.ExternalPreview, error) {
	f.lastLimit = limit
	return f.preview, f.previewErr
}

type fakeGateway struct {
	records []models.RawRecord
	err     error
}

func (f *fakeGateway) FetchList(context.Context, string) ([]models.RawRecord, error) {
	return f.records, f.err
}

func (f *fakeGateway) FetchCities(context.Context) ([]models.City, error) {
	return nil, nil
}

func (f *fakeGateway) SubmitBudget(context.Context, map[string]any) error {
	return nil
}

func newTestRouter(service planner.PlannerService, gateway *fakeGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	trip := handlers.NewTripHandler(service, gateway, 3, zap.NewNop())
	routes.RegisterRoutes(router, trip)
	return router
}

func validBody() string {
	return `{
		"total_budget": 30000,
		"people_count": 5,
		"days": 7,
		"destination": "Riyadh"
	}`
}

func TestPlanTripHandler_Success(t *testing.T) {
	service := &fakePlannerService{
		plan: &models.TripPlanResponse{
			PerPersonTotal:  6000,
			PerPersonPerDay: 857.14,
			BudgetsPerDay:   map[string]float64{models.CategoryHotels: 342.86},
			Hotels: models.CategorySuggestion{
				BudgetPerDay:   342.86,
				SuggestedItems: []models.Item{{Name: "Affordable Hotel", Price: 300, Location: "Riyadh"}},
				WithinBudget:   true,
			},
		},
	}
	router := newTestRouter(service, &fakeGateway{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plan-trip", strings.NewReader(validBody()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.TripPlanResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 6000.0, resp.PerPersonTotal)
	require.Len(t, resp.Hotels.SuggestedItems, 1)
	assert.Equal(t, "Affordable Hotel", resp.Hotels.SuggestedItems[0].Name)
}

func TestPlanTripHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		planErr error
	}{
		{
			name: "malformed JSON",
			body: `{"total_budget": `,
		},
		{
			name: "missing required fields",
			body: `{"total_budget": 1000}`,
		},
		{
			name:    "allocator validation error",
			body:    validBody(),
			planErr: planner.NewValidationError("percentages (hotels + food + activities + transport) must sum to 1.0"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakePlannerService{planErr: tt.planErr}, &fakeGateway{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/plan-trip", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPlanTripHandler_UpstreamFailure(t *testing.T) {
	service := &fakePlannerService{planErr: fmt.Errorf("fetch cities: connection refused")}
	router := newTestRouter(service, &fakeGateway{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plan-trip", strings.NewReader(validBody()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestExternalPreviewHandler(t *testing.T) {
	service := &fakePlannerService{preview: &models.ExternalPreview{
		HotelsSample: []models.RawRecord{{"name": "sample"}},
	}}
	router := newTestRouter(service, &fakeGateway{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/external-preview?limit=5", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, service.lastLimit)

	// Default limit applies when the parameter is omitted.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/external-preview", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, service.lastLimit)

	// Garbage limit is rejected.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/external-preview?limit=lots", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExternalListHandler_ProxiesRawRecords(t *testing.T) {
	gateway := &fakeGateway{records: []models.RawRecord{{"name": "Raw Hotel", "price": 100.0}}}
	router := newTestRouter(&fakePlannerService{}, gateway)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/external/hotels", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var records []models.RawRecord
	require.NoError(t, json.NewDecoder(w.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "Raw Hotel", records[0]["name"])
}

func TestExternalListHandler_UpstreamFailure(t *testing.T) {
	gateway := &fakeGateway{err: fmt.Errorf("status 500")}
	router := newTestRouter(&fakePlannerService{}, gateway)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/external/activities", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(&fakePlannerService{}, &fakeGateway{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
