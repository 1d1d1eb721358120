package handlers

import (
	"net/http"

	"property_manager/internal/adapter/http/dto/request"
	"property_manager/internal/adapter/http/dto/response"
	"property_manager/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TenantHandler struct {
	usecase usecase.ITenantUseCase
}

func NewTenantHandler(uc usecase.ITenantUseCase) *TenantHandler {
	return &TenantHandler{usecase: uc}
}

func (h *TenantHandler) CreateTenant(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	var req request.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.CreateTenant(c.Request.Context(), viewer, req.ToEntity())
	if err != nil {
		writeError(c, mapPropertyError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTenant(created))
}

func (h *TenantHandler) GetTenant(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	tenant, err := h.usecase.GetTenant(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		writeError(c, mapPropertyError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTenant(tenant))
}

func (h *TenantHandler) ListTenants(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	tenants, err := h.usecase.ListTenants(c.Request.Context(), viewer)
	if err != nil {
		writeError(c, mapPropertyError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTenants(tenants))
}
