package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"property_manager/internal/adapter/http/dto/request"
	"property_manager/internal/adapter/http/dto/response"
	"property_manager/internal/domain/entities"
	"property_manager/internal/infrastructure/export"
	"property_manager/internal/infrastructure/logging"
	"property_manager/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PaymentHandler serves the ledger, checkout and landlord report routes.
type PaymentHandler struct {
	ledger  usecase.IPaymentLedgerUseCase
	gateway usecase.IPaymentGatewayUseCase
	reports usecase.IPaymentReportUseCase
	now     func() time.Time
}

func NewPaymentHandler(ledger usecase.IPaymentLedgerUseCase, gateway usecase.IPaymentGatewayUseCase, reports usecase.IPaymentReportUseCase) *PaymentHandler {
	return &PaymentHandler{
		ledger:  ledger,
		gateway: gateway,
		reports: reports,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreatePayment godoc
// @Summary      Create a payment
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePaymentRequest  true  "Installment"
// @Success      201   {object}  response.PaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	log := logging.FromContext(c.Request.Context())

	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Warn("[payment][handler] invalid create payload")
		writeError(c, errInvalidRequest)
		return
	}
	dueDate, err := req.ResolveDueDate()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.ledger.CreatePayment(c.Request.Context(), viewer, req.LeaseID, req.Amount, dueDate)
	if err != nil {
		log.WithError(err).WithField("lease_id", req.LeaseID).Warn("[payment][handler] create failed")
		if errors.Is(err, usecase.ErrLeaseNotFound) {
			writeError(c, errLeaseNotFoundRef)
			return
		}
		writeError(c, mapPaymentError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromPayment(created, h.now()))
}

// CreateIntent godoc
// @Summary      Start a hosted checkout for a payment
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutRequest  true  "Payment to pay"
// @Success      200   {object}  response.CheckoutResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /payments/create-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.checkout(c, req.PaymentID)
}

// Checkout is the path form of CreateIntent.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	h.checkout(c, c.Param("id"))
}

func (h *PaymentHandler) checkout(c *gin.Context, paymentID string) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	session, err := h.gateway.InitiateCheckout(c.Request.Context(), viewer, strings.TrimSpace(paymentID))
	if err != nil {
		logging.FromContext(c.Request.Context()).WithError(err).WithField("payment_id", paymentID).Warn("[payment][handler] checkout failed")
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// ListByLease godoc
// @Summary      List a lease's payments
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        leaseId  path      string  true  "Lease ID"
// @Success      200      {array}   response.PaymentResponse
// @Failure      403      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /payments/lease/{leaseId} [get]
func (h *PaymentHandler) ListByLease(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	views, err := h.ledger.ListByLease(c.Request.Context(), viewer, c.Param("leaseId"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentViews(views))
}

// ListMine returns the calling tenant's payments.
func (h *PaymentHandler) ListMine(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	views, err := h.ledger.ListByTenant(c.Request.Context(), viewer.UserID)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentViews(views))
}

// ListLandlord returns every payment across the calling landlord's leases.
func (h *PaymentHandler) ListLandlord(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	views, err := h.ledger.ListByLandlord(c.Request.Context(), viewer.UserID)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentViews(views))
}

// Summary godoc
// @Summary      Landlord revenue summary
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  response.SummaryResponse
// @Router       /payments/landlord/summary [get]
func (h *PaymentHandler) Summary(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	summary, err := h.reports.Summary(c.Request.Context(), viewer.UserID)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentSummary(summary))
}

// Chart godoc
// @Summary      Expected and collected rent per due month
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  response.MonthlyBucketResponse
// @Router       /payments/landlord/chart [get]
func (h *PaymentHandler) Chart(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	series, err := h.reports.MonthlySeries(c.Request.Context(), viewer.UserID)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMonthlySeries(series))
}

// Export godoc
// @Summary      Download the landlord's payments as a spreadsheet
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /payments/landlord/export [get]
func (h *PaymentHandler) Export(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.reports.Export(c.Request.Context(), viewer.UserID, &buf); err != nil {
		logging.FromContext(c.Request.Context()).WithError(err).Error("[payment][handler] export failed")
		writeError(c, mapPaymentError(err))
		return
	}

	filename := "payments-" + h.now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}

// Sync godoc
// @Summary      Reconcile pending payments with the processor
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entities.ReconcileResult
// @Failure      409  {object}  pkg.HTTPError
// @Router       /payments/sync [post]
func (h *PaymentHandler) Sync(c *gin.Context) {
	result, err := h.gateway.Reconcile(c.Request.Context())
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	logging.FromContext(c.Request.Context()).WithFields(logrus.Fields{
		"checked": result.Checked,
		"updated": result.Updated,
	}).Info("[payment][handler] manual sync finished")
	c.JSON(http.StatusOK, result)
}

// GetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	view, err := h.ledger.GetPayment(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentView(view))
}

// Verify asks the processor for the payment's current state and applies it.
func (h *PaymentHandler) Verify(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	view, err := h.gateway.Verify(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentView(view))
}

// ListEvents returns the processor callbacks journaled for a payment.
func (h *PaymentHandler) ListEvents(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	records, err := h.gateway.ListEvents(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGatewayEvents(records))
}

// Override godoc
// @Summary      Set a payment's stored status
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "Payment ID"
// @Param        body  body      request.OverridePaymentRequest  true  "Status"
// @Success      200   {object}  response.PaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /payments/{id} [put]
func (h *PaymentHandler) Override(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	var req request.OverridePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	status, valid := entities.ParseStoredPaymentStatus(req.Status)
	if !valid {
		writeError(c, errInvalidRequest)
		return
	}

	updated, err := h.ledger.Override(c.Request.Context(), viewer, c.Param("id"), status)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(updated, h.now()))
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	viewer, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	if err := h.ledger.DeletePayment(c.Request.Context(), viewer, c.Param("id")); err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
