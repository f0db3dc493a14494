package routes

import (
	"context"
	"fmt"
	"net/http"

	"safety-tracker-backend/internal/api/handlers"
	"safety-tracker-backend/internal/api/middleware"
	"safety-tracker-backend/internal/archive"
	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/config"
	"safety-tracker-backend/internal/logger"
	"safety-tracker-backend/internal/metrics"
	"safety-tracker-backend/internal/normalize"
	"safety-tracker-backend/internal/reconcile"
	"safety-tracker-backend/internal/service"
	"safety-tracker-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the router is built from
type Dependencies struct {
	Config   *config.Config
	Store    store.Store
	Ping     func(ctx context.Context) error
	Archive  archive.Store
	Registry *prometheus.Registry
}

// SetupRoutes configures all the routes for the application on top of db
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	arch, err := archive.New(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize archive: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewRouter(Dependencies{
		Config:   cfg,
		Store:    store.NewDatabaseStoreFromDB(db),
		Ping:     handlers.DatabasePing(db),
		Archive:  arch,
		Registry: registry,
	})
}

// NewRouter wires services and handlers around deps
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize engine and services
	log := logger.New()
	engine := reconcile.NewEngine(deps.Store, log)
	recorder := metrics.NewRecorder(deps.Registry)
	mapping := normalize.Mapping{
		PeriodsSheet: cfg.ImportPeriodsSheet,
		CoachesSheet: cfg.ImportCoachesSheet,
		Ignored:      cfg.ImportIgnoredSheets,
	}

	periodService := service.NewPeriodService(deps.Store, engine, validator)
	coachService := service.NewCoachService(deps.Store, engine, validator)
	metricService := service.NewMetricService(deps.Store, engine, validator)
	importService := service.NewImportService(deps.Store, mapping, deps.Archive, recorder, log)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandlerWithCheck(deps.Ping)
	periodHandler := handlers.NewPeriodHandler(periodService)
	coachHandler := handlers.NewCoachHandler(coachService)
	metricHandler := handlers.NewMetricHandler(metricService)
	importHandler := handlers.NewImportHandler(importService, cfg.ImportMaxUploadMB)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		periods := v1.Group("/periods")
		{
			periods.GET("", periodHandler.ListPeriods)
			periods.POST("", periodHandler.CreatePeriod)
			periods.GET("/:id", periodHandler.GetPeriod)
			periods.PUT("/:id", periodHandler.UpdatePeriod)
			periods.DELETE("/:id", periodHandler.DeletePeriod)
			periods.GET("/:id/metrics", metricHandler.ListMetrics)
			periods.PUT("/:id/metrics/:coach_id", metricHandler.UpsertMetric)
		}

		coaches := v1.Group("/coaches")
		{
			coaches.GET("", coachHandler.ListCoaches)
			coaches.POST("", coachHandler.CreateCoach)
			coaches.GET("/:id", coachHandler.GetCoach)
			coaches.PUT("/:id", coachHandler.UpdateCoach)
		}

		v1.POST("/imports", importHandler.ImportWorkbook)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "Route not found"})
	})

	return router, nil
}
