package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripwise/handlers"
	"tripwise/services/external"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, trip *handlers.TripHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	r.POST("/plan-trip", trip.PlanTripHandler)
	r.GET("/external-preview", trip.ExternalPreviewHandler)

	ext := r.Group("/external")
	{
		ext.GET("/activities", trip.ExternalListHandler(external.EndpointActivities))
		ext.GET("/hotels", trip.ExternalListHandler(external.EndpointHotels))
		ext.GET("/plains", trip.ExternalListHandler(external.EndpointPlains))
		ext.GET("/restaurants", trip.ExternalListHandler(external.EndpointRestaurants))
		ext.GET("/cities", trip.ExternalListHandler(external.EndpointCities))
	}

	RegisterHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
