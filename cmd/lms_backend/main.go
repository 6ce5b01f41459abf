package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/lease_management_app/internal/core/ports"
	"github.com/SscSPs/lease_management_app/internal/core/services"
	"github.com/SscSPs/lease_management_app/internal/handlers"
	"github.com/SscSPs/lease_management_app/internal/middleware"
	"github.com/SscSPs/lease_management_app/internal/platform/config"
	"github.com/SscSPs/lease_management_app/internal/platform/events"
	"github.com/SscSPs/lease_management_app/internal/platform/metrics"
	"github.com/SscSPs/lease_management_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/lease_management_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// @title Lease Management Backend API
// @version 1.0
// @description Lease and escalation back office with an approval workflow.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp)
	if err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if changed {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	var publisher ports.ApprovalEventPublisher = events.LogPublisher{}
	if cfg.RedisAddr != "" {
		redisPublisher, err := events.NewRedisPublisher(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.ApprovalEventsChannel)
		if err != nil {
			logger.Error("Failed to connect to Redis", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisPublisher.Close()
		publisher = redisPublisher
		logger.Info("Publishing approval events to Redis", slog.String("channel", cfg.ApprovalEventsChannel))
	}

	var (
		workflowMetrics ports.WorkflowMetrics
		appMetrics      *metrics.Metrics
		gatherer        prometheus.Gatherer
	)
	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		appMetrics = metrics.NewMetrics(registry)
		workflowMetrics = appMetrics
		gatherer = registry
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, publisher, workflowMetrics)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (cors, logging, recovery)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	r.Use(cors.New(corsConfig), middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if appMetrics != nil {
		r.Use(appMetrics.GinMiddleware())
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, gatherer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
