package handlers

import (
	"errors"
	"net/http"

	"property_manager/internal/adapter/http/dto/request"
	"property_manager/internal/adapter/http/dto/response"
	"property_manager/internal/infrastructure/logging"
	"property_manager/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type LeaseHandler struct {
	usecase usecase.ILeaseUseCase
}

func NewLeaseHandler(uc usecase.ILeaseUseCase) *LeaseHandler {
	return &LeaseHandler{usecase: uc}
}

// CreateLease also generates the lease's monthly installments.
func (h *LeaseHandler) CreateLease(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	log := logging.FromContext(c.Request.Context())

	var req request.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("[lease][handler] invalid create payload")
		writeError(c, errInvalidRequest)
		return
	}
	start, end, err := req.ResolveDates()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	lease, generated, err := h.usecase.CreateLease(c.Request.Context(), viewer, usecase.CreateLeaseInput{
		UnitID:    req.UnitID,
		TenantID:  req.TenantID,
		StartDate: start,
		EndDate:   end,
		Rent:      req.Rent,
	})
	if err != nil {
		log.WithError(err).WithField("unit_id", req.UnitID).Warn("[lease][handler] create failed")
		switch {
		case errors.Is(err, usecase.ErrUnitNotFound):
			writeError(c, errUnitNotFoundRef)
		case errors.Is(err, usecase.ErrTenantNotFound):
			writeError(c, errTenantNotFoundRef)
		default:
			writeError(c, mapLeaseError(err))
		}
		return
	}

	log.WithFields(logrus.Fields{"lease_id": lease.ID, "payments_created": generated}).Info("[lease][handler] lease created")
	c.JSON(http.StatusCreated, response.CreateLeaseResponse{
		Lease:           response.FromLease(lease),
		PaymentsCreated: generated,
	})
}

func (h *LeaseHandler) GetLease(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	lease, err := h.usecase.GetLease(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		writeError(c, mapLeaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLease(lease))
}

func (h *LeaseHandler) ListLeases(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	leases, err := h.usecase.ListLeases(c.Request.Context(), viewer)
	if err != nil {
		writeError(c, mapLeaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLeases(leases))
}

func (h *LeaseHandler) TerminateLease(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	lease, err := h.usecase.TerminateLease(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		writeError(c, mapLeaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLease(lease))
}
