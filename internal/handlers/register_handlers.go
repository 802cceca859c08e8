package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/counterparty_portal/cmd/docs"
	"github.com/SscSPs/counterparty_portal/internal/adapters/storage/local"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/middleware"
	"github.com/SscSPs/counterparty_portal/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouteDeps carries what the handlers need besides the services.
type RouteDeps struct {
	// Clock stamps derived values in responses (ages, days to expiry).
	Clock lifecycle.Clock

	// LocalFiles serves signed downloads when the local blob backend is active.
	LocalFiles *local.Store
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	if deps.Clock == nil {
		deps.Clock = lifecycle.SystemClock{}
	}

	r.GET("/health", healthCheck(services.Health))

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	if deps.LocalFiles != nil {
		registerFileRoutes(r, deps.LocalFiles)
	}

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	handlersChain := []gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWTSecret)}
	if apiLimiter, err := middleware.NewMemoryLimiter(cfg.APIRateLimit); err != nil {
		slog.Warn("API rate limiting disabled", slog.String("error", err.Error()))
	} else {
		handlersChain = append(handlersChain, middleware.RateLimit(apiLimiter))
	}
	v1 := r.Group("/api/v1", handlersChain...)

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, service.User)
	registerCurrencyRoutes(v1, service.Currency)
	registerExchangeRateRoutes(v1, service.ExchangeRate, deps.Clock)
	registerReferenceDataRoutes(v1, service.ReferenceData)

	counterparties := registerCounterpartyRoutes(v1, service.Counterparty, deps.Clock)
	registerMemberRoutes(v1, counterparties, service.Member, deps.Clock)
	registerDocumentRoutes(v1, counterparties, service.Document, deps.Clock)
	registerCommentRoutes(v1, counterparties, service.Comment)
	registerRatingRoutes(v1, counterparties, service.Rating)
	registerBalanceSheetRoutes(v1, counterparties, service.BalanceSheet)

	registerNotificationRoutes(v1, service.Notification)
	registerDueDiligenceRoutes(v1, service.DueDiligence)
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

// healthCheck godoc
// @Summary Liveness and database check
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "database unavailable"
// @Router /health [get]
func healthCheck(health portssvc.HealthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health != nil {
			if err := health.Ping(c.Request.Context()); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}
