package usecase

import "errors"

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrLeaseNotFound    = errors.New("lease not found")
	ErrUnitNotFound     = errors.New("unit not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrTenantNotFound   = errors.New("tenant not found")

	ErrAccessDenied      = errors.New("access denied")
	ErrInvalidSignature  = errors.New("invalid webhook signature")
	ErrInvalidTransition = errors.New("invalid payment status transition")

	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPaymentID   = errors.New("invalid payment id")
	ErrInvalidLeaseID     = errors.New("invalid lease id")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidLeaseDates  = errors.New("lease end date is before start date")
	ErrUnitHasActiveLease = errors.New("unit already has an active lease")
	ErrLeaseNotActive     = errors.New("lease is not active")
	ErrTenantExists       = errors.New("tenant profile already exists for user")

	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrGatewayUnavailable   = errors.New("payment gateway unavailable")
	ErrReconcileInProgress  = errors.New("reconciliation already in progress")
)
