package api

import (
	"github.com/gin-gonic/gin"
	"github.com/tracklab/tracklab-api/internal/api/handlers"
	apimiddleware "github.com/tracklab/tracklab-api/internal/api/middleware"
	"github.com/tracklab/tracklab-api/internal/config"
	"github.com/tracklab/tracklab-api/internal/metrics"
	"github.com/tracklab/tracklab-api/internal/versions"
)

func SetupRouter(manager *versions.Manager, metricsClient *metrics.Client, cfg *config.Config, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// Metrics endpoint
	metricsHandler := handlers.NewMetricsHandler(version)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	// API routes v1
	v1 := router.Group("/api/v1")
	if cfg.IsGatewayMode() {
		v1.Use(apimiddleware.GatewayAuth())
	} else {
		v1.Use(apimiddleware.NoAuth())
	}
	{
		// Glossary endpoints - term catalog, detection, auto-bracketing
		glossaryHandler := handlers.NewGlossaryHandler()
		v1.GET("/glossary/terms", glossaryHandler.ListTerms)
		v1.POST("/glossary/detect", glossaryHandler.DetectTerms)
		v1.POST("/glossary/bracket", glossaryHandler.BracketTerms)

		// Metadata endpoints - categorized extraction from flat prompts
		metadataHandler := handlers.NewMetadataHandler()
		v1.POST("/metadata/extract", metadataHandler.Extract)
		v1.POST("/prompts/master", metadataHandler.MasterPrompt)

		// Structured prompt compilation
		promptHandler := handlers.NewPromptHandler()
		v1.POST("/prompts/compile", promptHandler.Compile)

		// Version history and simulated generation per project
		versionsHandler := handlers.NewVersionsHandler(manager, metricsClient)
		projects := v1.Group("/projects/:projectID")
		{
			projects.POST("/versions", versionsHandler.Create)
			projects.GET("/versions", versionsHandler.List)
			projects.GET("/versions/current", versionsHandler.Current)
			projects.POST("/versions/:versionID/navigate", versionsHandler.Navigate)
			projects.PATCH("/versions/:versionID/notes", versionsHandler.UpdateNotes)
			projects.POST("/versions/:versionID/interpret", versionsHandler.Interpret)
			projects.POST("/versions/:versionID/generate", versionsHandler.Generate)
			projects.POST("/versions/:versionID/generate/global", versionsHandler.GenerateGlobal)
			projects.POST("/versions/:versionID/generate/instruments/:instrumentID", versionsHandler.GenerateInstrument)
			projects.POST("/versions/:versionID/generate/sections/:sectionID", versionsHandler.GenerateSection)
			projects.GET("/usage", versionsHandler.Usage)
		}
	}

	return router
}
