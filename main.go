// File: tripwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripwise/config"
	"tripwise/handlers"
	"tripwise/middleware"
	"tripwise/routes"
	"tripwise/services/external"
	"tripwise/services/planner"
	"tripwise/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	zap.ReplaceGlobals(logger)

	if config.AppConfig.CacheEnabled {
		utils.InitCache()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// External travel-data gateway.
	gateway := external.NewHTTPGateway(
		config.AppConfig.ExternalAPIBaseURL,
		config.AppConfig.ExternalAPIToken,
		time.Duration(config.AppConfig.FetchTimeoutSeconds)*time.Second,
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.CacheTTLSeconds)*time.Second,
		logger,
	)

	// Planner service.
	plannerConfig := planner.DefaultConfig()
	if config.AppConfig.MaxSuggestions > 0 {
		plannerConfig.MaxSuggestions = config.AppConfig.MaxSuggestions
	}
	plannerService := &planner.DefaultPlannerService{
		Gateway: gateway,
		Config:  plannerConfig,
		Logger:  logger,
	}

	tripHandler := handlers.NewTripHandler(plannerService, gateway, config.AppConfig.PreviewDefaultLimit, logger)

	// Register routes.
	routes.RegisterRoutes(router, tripHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
