package routes

import (
	"property_manager/internal/adapter/http/handlers"
	"property_manager/internal/adapter/http/middleware"
	"property_manager/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, auth *middleware.Authenticator, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)

	// Processors authenticate with their own signature.
	payments.POST("/webhook", webhookHandler.HandleWebhook)

	landlordOnly := middleware.RequireRoles(entities.RoleLandlord)
	tenantOnly := middleware.RequireRoles(entities.RoleTenant)
	managers := middleware.RequireRoles(entities.RoleLandlord, entities.RoleAdmin)

	secured := payments.Group("", auth.RequireAuth())
	{
		secured.POST("", managers, paymentHandler.CreatePayment)
		secured.POST("/create-intent", paymentHandler.CreateIntent)
		secured.POST("/sync", managers, paymentHandler.Sync)

		secured.GET("/lease/:leaseId", paymentHandler.ListByLease)
		secured.GET("/mine", tenantOnly, paymentHandler.ListMine)

		secured.GET("/landlord", landlordOnly, paymentHandler.ListLandlord)
		secured.GET("/landlord/summary", landlordOnly, paymentHandler.Summary)
		secured.GET("/landlord/chart", landlordOnly, paymentHandler.Chart)
		secured.GET("/landlord/export", landlordOnly, paymentHandler.Export)

		secured.GET("/:id", paymentHandler.GetPayment)
		secured.PUT("/:id", managers, paymentHandler.Override)
		secured.DELETE("/:id", managers, paymentHandler.DeletePayment)
		secured.POST("/:id/checkout", paymentHandler.Checkout)
		secured.POST("/:id/verify", paymentHandler.Verify)
		secured.GET("/:id/events", paymentHandler.ListEvents)
	}
}
