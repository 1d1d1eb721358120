package routes

import (
	_ "property_manager/docs"
	"property_manager/internal/adapter/http/handlers"
	"property_manager/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Payments   *handlers.PaymentHandler
	Webhooks   *handlers.WebhookHandler
	Leases     *handlers.LeaseHandler
	Properties *handlers.PropertyHandler
	Tenants    *handlers.TenantHandler
}

// NewRouter builds the engine. Everything but ping, swagger and the
// processor webhook requires a bearer token.
func NewRouter(h Handlers, auth *middleware.Authenticator) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, auth, h.Payments, h.Webhooks)

	secured := v1.Group("", auth.RequireAuth())
	addLeaseRoutes(secured, h.Leases)
	addPropertyRoutes(secured, h.Properties)
	addTenantRoutes(secured, h.Tenants)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
}
