package handlers

import (
	"errors"
	"net/http"

	"property_manager/internal/adapter/http/middleware"
	"property_manager/internal/domain/entities"
	"property_manager/internal/usecase"
	"property_manager/internal/usecase/interfaces"
	"property_manager/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthenticated   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errLeaseNotFoundRef  = pkg.NewDomainErrorSimple("LEASE_NOT_FOUND", "Lease not found", http.StatusBadRequest)
	errUnitNotFoundRef   = pkg.NewDomainErrorSimple("UNIT_NOT_FOUND", "Unit not found", http.StatusBadRequest)
	errTenantNotFoundRef = pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// viewerOrAbort returns the authenticated caller, writing a 401 when the
// route was mounted without the auth middleware.
func viewerOrAbort(c *gin.Context) (entities.Viewer, bool) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		writeError(c, errUnauthenticated)
		return entities.Viewer{}, false
	}
	return viewer, true
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidLeaseID),
		errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeaseNotFound):
		return pkg.NewDomainErrorSimple("LEASE_NOT_FOUND", "Lease not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Payment status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrLeaseNotActive):
		return pkg.NewDomainErrorSimple("LEASE_NOT_ACTIVE", "Lease is not active", http.StatusConflict)
	case errors.Is(err, usecase.ErrReconcileInProgress):
		return pkg.NewDomainErrorSimple("RECONCILE_IN_PROGRESS", "Reconciliation already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapLeaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidLeaseID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidLeaseDates):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeaseNotFound):
		return pkg.NewDomainErrorSimple("LEASE_NOT_FOUND", "Lease not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnitNotFound):
		return pkg.NewDomainErrorSimple("UNIT_NOT_FOUND", "Unit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrUnitHasActiveLease):
		return pkg.NewDomainErrorSimple("UNIT_HAS_ACTIVE_LEASE", "Unit already has an active lease", http.StatusConflict)
	case errors.Is(err, usecase.ErrLeaseNotActive):
		return pkg.NewDomainErrorSimple("LEASE_NOT_ACTIVE", "Lease is not active", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapPropertyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccessDenied):
		return pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrTenantExists):
		return pkg.NewDomainErrorSimple("TENANT_EXISTS", "Tenant profile already exists for user", http.StatusConflict)
	case errors.Is(err, interfaces.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Record already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
