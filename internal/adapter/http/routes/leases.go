package routes

import (
	"property_manager/internal/adapter/http/handlers"
	"property_manager/internal/adapter/http/middleware"
	"property_manager/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathLeases     = "/leases"
	PathProperties = "/properties"
	PathTenants    = "/tenants"
)

func addLeaseRoutes(rg *gin.RouterGroup, leaseHandler *handlers.LeaseHandler) {
	managers := middleware.RequireRoles(entities.RoleLandlord, entities.RoleAdmin)

	leases := rg.Group(PathLeases)
	{
		leases.POST("", managers, leaseHandler.CreateLease)
		leases.GET("", leaseHandler.ListLeases)
		leases.GET("/:id", leaseHandler.GetLease)
		leases.PATCH("/:id/terminate", managers, leaseHandler.TerminateLease)
	}
}

func addPropertyRoutes(rg *gin.RouterGroup, propertyHandler *handlers.PropertyHandler) {
	properties := rg.Group(PathProperties, middleware.RequireRoles(entities.RoleLandlord, entities.RoleAdmin))
	{
		properties.POST("", propertyHandler.CreateProperty)
		properties.GET("", propertyHandler.ListProperties)
		properties.POST("/:id/units", propertyHandler.AddUnit)
		properties.GET("/:id/units", propertyHandler.ListUnits)
	}
}

func addTenantRoutes(rg *gin.RouterGroup, tenantHandler *handlers.TenantHandler) {
	managers := middleware.RequireRoles(entities.RoleLandlord, entities.RoleAdmin)

	tenants := rg.Group(PathTenants)
	{
		tenants.POST("", managers, tenantHandler.CreateTenant)
		tenants.GET("", managers, tenantHandler.ListTenants)
		tenants.GET("/:id", tenantHandler.GetTenant)
	}
}
