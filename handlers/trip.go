package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/services/external"
	"tripwise/services/planner"
	"tripwise/utils"
)

// TripHandler exposes the trip planning endpoints.
type TripHandler struct {
	Service      planner.PlannerService
	Gateway      external.Gateway
	PreviewLimit int
	Logger       *zap.Logger
}

// NewTripHandler creates a TripHandler.
func NewTripHandler(service planner.PlannerService, gateway external.Gateway, previewLimit int, logger *zap.Logger) *TripHandler {
	if previewLimit <= 0 {
		previewLimit = 3
	}
	return &TripHandler{
		Service:      service,
		Gateway:      gateway,
		PreviewLimit: previewLimit,
		Logger:       logger,
	}
}

// PlanTripHandler handles POST /plan-trip.
func (h *TripHandler) PlanTripHandler(c *gin.Context) {
	utils.PlanRequestsTotal.Inc()

	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid trip request", err.Error())
		return
	}

	plan, err := h.Service.PlanTrip(c.Request.Context(), req)
	if err != nil {
		var valErr *planner.ValidationError
		if errors.As(err, &valErr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid trip request", valErr.Message)
			return
		}
		h.Logger.Error("plan trip failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "External data provider unavailable", err.Error())
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ExternalPreviewHandler handles GET /external-preview. It returns a bounded
// sample of each provider endpoint's raw records, for inspecting the live
// field names when the upstream schema drifts.
func (h *TripHandler) ExternalPreviewHandler(c *gin.Context) {
	limit := h.PreviewLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid limit", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	preview, err := h.Service.PreviewExternalData(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Error("external preview failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "External data provider unavailable", err.Error())
		return
	}

	c.JSON(http.StatusOK, preview)
}

// ExternalListHandler returns a pass-through handler for one upstream list
// endpoint, exposing its raw payload via this service.
func (h *TripHandler) ExternalListHandler(endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := h.Gateway.FetchList(c.Request.Context(), endpoint)
		if err != nil {
			h.Logger.Error("external proxy fetch failed", zap.String("endpoint", endpoint), zap.Error(err))
			utils.JSONError(c, http.StatusBadGateway, "External data provider unavailable", err.Error())
			return
		}
		c.JSON(http.StatusOK, records)
	}
}
