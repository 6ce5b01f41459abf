package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/lease_management_app/cmd/docs"
	portssvc "github.com/SscSPs/lease_management_app/internal/core/ports/services"
	"github.com/SscSPs/lease_management_app/internal/middleware"
	"github.com/SscSPs/lease_management_app/internal/platform/config"
	"github.com/SscSPs/lease_management_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// gatherer may be nil, in which case /metrics is not served.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	gatherer prometheus.Gatherer,
) {
	RegisterValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if gatherer != nil {
		r.GET("/metrics", metrics.Handler(gatherer))
	}

	// Register public authentication routes
	RegisterAuthRoutes(r, services.User, services.TokenService, newLimiter(cfg.LoginRateLimit, "login"))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	if apiLimiter := newLimiter(cfg.APIRateLimit, "api"); apiLimiter != nil {
		v1.Use(middleware.RateLimit(apiLimiter))
	}

	RegisterLeaseRoutes(v1, service.Lease)
	RegisterMasterDataRoutes(v1, service.Project, service.Unit, service.Party)
	RegisterOwnershipRoutes(v1, service.Ownership)
	RegisterUserRoutes(v1, service.User)
	RegisterCurrencyRoutes(v1, service.Currency)
}

// newLimiter returns nil when rate is empty or malformed.
func newLimiter(rate string, name string) *limiter.Limiter {
	if rate == "" {
		return nil
	}
	l, err := middleware.NewMemoryLimiter(rate)
	if err != nil {
		slog.Warn("Invalid rate limit, limiter disabled", slog.String("limiter", name), slog.String("rate", rate), slog.String("error", err.Error()))
		return nil
	}
	return l
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
