package handlers

import (
	"net/http"

	"property_manager/internal/adapter/http/dto/request"
	"property_manager/internal/adapter/http/dto/response"
	"property_manager/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	usecase usecase.IPropertyUseCase
}

func NewPropertyHandler(uc usecase.IPropertyUseCase) *PropertyHandler {
	return &PropertyHandler{usecase: uc}
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	var req request.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.CreateProperty(c.Request.Context(), viewer, req.ToEntity())
	if err != nil {
		writeError(c, mapPropertyError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProperty(created))
}

func (h *PropertyHandler) ListProperties(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	properties, err := h.usecase.ListProperties(c.Request.Context(), viewer)
	if err != nil {
		writeError(c, mapPropertyError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProperties(properties))
}

func (h *PropertyHandler) AddUnit(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	var req request.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.AddUnit(c.Request.Context(), viewer, c.Param("id"), req.ToEntity())
	if err != nil {
		writeError(c, mapPropertyError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUnit(created))
}

func (h *PropertyHandler) ListUnits(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	units, err := h.usecase.ListUnits(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		writeError(c, mapPropertyError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUnits(units))
}
