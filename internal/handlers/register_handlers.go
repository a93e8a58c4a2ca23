package handlers

import (
	"net/http"

	"github.com/SscSPs/backoffice_app/cmd/docs"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// apiMiddleware runs on every /api/v1 request after authentication.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiMiddleware ...gin.HandlerFunc,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, apiMiddleware...)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	apiMiddleware ...gin.HandlerFunc,
) {
	chain := append([]gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)}, apiMiddleware...)
	v1 := r.Group("/api/v1", chain...)

	registerClientRoutes(v1, service.Clients)
	registerCRUDRoutes[domain.Lead](v1, "/leads", service.Leads, "lead")
	registerCRUDRoutes[domain.Partnership](v1, "/partnerships", service.Partnerships, "partnership")
	registerCRUDRoutes[domain.Employee](v1, "/employees", service.Employees, "employee")
	registerCRUDRoutes[domain.CurrentAsset](v1, "/assets/current", service.CurrentAssets, "current asset")
	registerCRUDRoutes[domain.NonCurrentAsset](v1, "/assets/non-current", service.NonCurrentAssets, "non-current asset")
	registerCRUDRoutes[domain.Liability](v1, "/liabilities/current", service.CurrentLiabilities, "current liability")
	registerCRUDRoutes[domain.Liability](v1, "/liabilities/non-current", service.NonCurrentLiabilities, "non-current liability")
	registerCRUDRoutes[domain.MonetaryAccount](v1, "/accounts", service.Accounts, "account")
	registerCRUDRoutes[domain.TeamEvent](v1, "/events", service.Events, "event")

	registerLedgerRoutes(v1, service.Ledger)
	registerPayrollRoutes(v1, service.Payroll)
	registerExchangeRateRoutes(v1, service.ExchangeRate)
	registerReportingRoutes(v1, service.Reporting)
	registerNotificationRoutes(v1, service.Notifications)
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
