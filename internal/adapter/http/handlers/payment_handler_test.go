package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"property_manager/internal/adapter/http/handlers/mocks"
	"property_manager/internal/adapter/http/middleware"
	"property_manager/internal/domain/entities"
	"property_manager/internal/infrastructure/export"
	"property_manager/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var (
	landlord = entities.Viewer{UserID: "landlord-1", Role: entities.RoleLandlord}
	tenant   = entities.Viewer{UserID: "tenant-user-1", Role: entities.RoleTenant}
)

func withViewer(v entities.Viewer) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetViewer(c, v)
		c.Next()
	}
}

type paymentMocks struct {
	ledger  *mocks.MockIPaymentLedgerUseCase
	gateway *mocks.MockIPaymentGatewayUseCase
	reports *mocks.MockIPaymentReportUseCase
}

func newPaymentHandler(ctrl *gomock.Controller) (*PaymentHandler, paymentMocks) {
	m := paymentMocks{
		ledger:  mocks.NewMockIPaymentLedgerUseCase(ctrl),
		gateway: mocks.NewMockIPaymentGatewayUseCase(ctrl),
		reports: mocks.NewMockIPaymentReportUseCase(ctrl),
	}
	h := NewPaymentHandler(m.ledger, m.gateway, m.reports)
	h.now = func() time.Time { return time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC) }
	return h, m
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected body %q: %v", w.Body.String(), err)
	}
	return body.Code
}

func samplePayment() entities.Payment {
	return entities.Payment{
		ID:      "pay-1",
		LeaseID: "lease-1",
		Amount:  decimal.RequireFromString("1200.00"),
		DueDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:  entities.PaymentStatusPending,
	}
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no viewer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newPaymentHandler(ctrl)

		r := gin.New()
		r.POST("/v1/payments", h.CreatePayment)

		w := serve(r, http.MethodPost, "/v1/payments", `{"lease_id":"lease-1","amount":10,"due_date":"2024-04-01"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newPaymentHandler(ctrl)

		r := gin.New()
		r.POST("/v1/payments", withViewer(landlord), h.CreatePayment)

		w := serve(r, http.MethodPost, "/v1/payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid due date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newPaymentHandler(ctrl)

		r := gin.New()
		r.POST("/v1/payments", withViewer(landlord), h.CreatePayment)

		w := serve(r, http.MethodPost, "/v1/payments", `{"lease_id":"lease-1","amount":10,"due_date":"next week"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown lease in body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.ledger.EXPECT().CreatePayment(gomock.Any(), landlord, "lease-x", gomock.Any(), gomock.Any()).
			Return(entities.Payment{}, usecase.ErrLeaseNotFound)

		r := gin.New()
		r.POST("/v1/payments", withViewer(landlord), h.CreatePayment)

		w := serve(r, http.MethodPost, "/v1/payments", `{"lease_id":"lease-x","amount":10,"due_date":"2024-04-01"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeError(t, w); code != "LEASE_NOT_FOUND" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.ledger.EXPECT().CreatePayment(gomock.Any(), landlord, "lease-1", gomock.Any(), gomock.Any()).
			Return(entities.Payment{}, usecase.ErrInvalidAmount)

		r := gin.New()
		r.POST("/v1/payments", withViewer(landlord), h.CreatePayment)

		w := serve(r, http.MethodPost, "/v1/payments", `{"lease_id":"lease-1","amount":0,"due_date":"2024-04-01"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeError(t, w); code != "INVALID_REQUEST" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.ledger.EXPECT().CreatePayment(gomock.Any(), landlord, "lease-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Viewer, _ string, amount decimal.Decimal, due time.Time) (entities.Payment, error) {
				if amount.StringFixed(2) != "1200.00" {
					t.Fatalf("unexpected amount %s", amount)
				}
				if !due.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected due date %s", due)
				}
				return samplePayment(), nil
			})

		r := gin.New()
		r.POST("/v1/payments", withViewer(landlord), h.CreatePayment)

		w := serve(r, http.MethodPost, "/v1/payments", `{"lease_id":"lease-1","amount":"1200","due_date":"2024-04-01"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body["id"] != "pay-1" || body["status"] != "PENDING" || body["amount"] != "1200.00" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestPaymentHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newPaymentHandler(ctrl)

		r := gin.New()
		r.POST("/v1/payments/create-intent", withViewer(tenant), h.CreateIntent)

		w := serve(r, http.MethodPost, "/v1/payments/create-intent", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.gateway.EXPECT().InitiateCheckout(gomock.Any(), tenant, "pay-1").Return(entities.CheckoutSession{
			SessionID:   "cs_test_1",
			GatewayRef:  "cs_test_1",
			CheckoutURL: "https://checkout.stripe.com/c/pay/cs_test_1",
		}, nil)

		r := gin.New()
		r.POST("/v1/payments/create-intent", withViewer(tenant), h.CreateIntent)

		w := serve(r, http.MethodPost, "/v1/payments/create-intent", `{"payment_id":" pay-1 "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body["session_id"] != "cs_test_1" || body["checkout_url"] == "" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("path form maps errors", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{err: usecase.ErrInvalidTransition, status: http.StatusConflict, code: "INVALID_TRANSITION"},
			{err: fmt.Errorf("%w: timeout", usecase.ErrGatewayUnavailable), status: http.StatusBadGateway, code: "PAYMENT_PROVIDER_UNAVAILABLE"},
			{err: usecase.ErrGatewayNotConfigured, status: http.StatusServiceUnavailable, code: "PAYMENT_PROVIDER_NOT_CONFIGURED"},
			{err: usecase.ErrAccessDenied, status: http.StatusForbidden, code: "ACCESS_DENIED"},
			{err: usecase.ErrPaymentNotFound, status: http.StatusNotFound, code: "PAYMENT_NOT_FOUND"},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			h, m := newPaymentHandler(ctrl)
			m.gateway.EXPECT().InitiateCheckout(gomock.Any(), tenant, "pay-1").Return(entities.CheckoutSession{}, tc.err)

			r := gin.New()
			r.POST("/v1/payments/:id/checkout", withViewer(tenant), h.Checkout)

			w := serve(r, http.MethodPost, "/v1/payments/pay-1/checkout", "")
			if w.Code != tc.status {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
			}
			if code := decodeError(t, w); code != tc.code {
				t.Fatalf("%v: unexpected code %s", tc.err, code)
			}
			ctrl.Finish()
		}
	})
}

func TestPaymentHandler_Lists(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	views := []entities.PaymentView{entities.NewPaymentView(samplePayment(), now)}

	t.Run("by lease forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.ledger.EXPECT().ListByLease(gomock.Any(), tenant, "lease-2").Return(nil, usecase.ErrAccessDenied)

		r := gin.New()
		r.GET("/v1/payments/lease/:leaseId", withViewer(tenant), h.ListByLease)

		w := serve(r, http.MethodGet, "/v1/payments/lease/lease-2", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("by lease", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.ledger.EXPECT().ListByLease(gomock.Any(), landlord, "lease-1").Return(views, nil)

		r := gin.New()
		r.GET("/v1/payments/lease/:leaseId", withViewer(landlord), h.ListByLease)

		w := serve(r, http.MethodGet, "/v1/payments/lease/lease-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "pay-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("mine uses the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.ledger.EXPECT().ListByTenant(gomock.Any(), "tenant-user-1").Return(nil, nil)

		r := gin.New()
		r.GET("/v1/payments/mine", withViewer(tenant), h.ListMine)

		w := serve(r, http.MethodGet, "/v1/payments/mine", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("landlord uses the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.ledger.EXPECT().ListByLandlord(gomock.Any(), "landlord-1").Return(views, nil)

		r := gin.New()
		r.GET("/v1/payments/landlord", withViewer(landlord), h.ListLandlord)

		w := serve(r, http.MethodGet, "/v1/payments/landlord", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Reports(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.reports.EXPECT().Summary(gomock.Any(), "landlord-1").Return(entities.PaymentSummary{
			TotalRevenue: decimal.NewFromInt(2400),
			PendingCount: 1,
			LateCount:    2,
			ActiveLeases: 3,
		}, nil)

		r := gin.New()
		r.GET("/v1/payments/landlord/summary", withViewer(landlord), h.Summary)

		w := serve(r, http.MethodGet, "/v1/payments/landlord/summary", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body["total_revenue"] != "2400.00" || body["late_payments"] != float64(2) {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("chart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.reports.EXPECT().MonthlySeries(gomock.Any(), "landlord-1").Return([]entities.MonthlyBucket{
			{Month: "2024-01", Expected: decimal.NewFromInt(1000), Collected: decimal.NewFromInt(500)},
		}, nil)

		r := gin.New()
		r.GET("/v1/payments/landlord/chart", withViewer(landlord), h.Chart)

		w := serve(r, http.MethodGet, "/v1/payments/landlord/chart", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"collected":"500.00"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.reports.EXPECT().Export(gomock.Any(), "landlord-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, w io.Writer) error {
				_, err := w.Write([]byte("PK-xlsx"))
				return err
			})

		r := gin.New()
		r.GET("/v1/payments/landlord/export", withViewer(landlord), h.Export)

		w := serve(r, http.MethodGet, "/v1/payments/landlord/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != export.XLSXContentType {
			t.Fatalf("unexpected content type %s", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="payments-2024-03-10.xlsx"` {
			t.Fatalf("unexpected disposition %s", cd)
		}
		if w.Body.String() != "PK-xlsx" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("export failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.reports.EXPECT().Export(gomock.Any(), "landlord-1", gomock.Any()).Return(fmt.Errorf("disk full"))

		r := gin.New()
		r.GET("/v1/payments/landlord/export", withViewer(landlord), h.Export)

		w := serve(r, http.MethodGet, "/v1/payments/landlord/export", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if code := decodeError(t, w); code != "INTERNAL_ERROR" {
			t.Fatalf("unexpected code %s", code)
		}
	})
}

func TestPaymentHandler_Sync(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.gateway.EXPECT().Reconcile(gomock.Any()).Return(entities.ReconcileResult{}, usecase.ErrReconcileInProgress)

		r := gin.New()
		r.POST("/v1/payments/sync", withViewer(landlord), h.Sync)

		w := serve(r, http.MethodPost, "/v1/payments/sync", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.gateway.EXPECT().Reconcile(gomock.Any()).Return(entities.ReconcileResult{Checked: 3, Updated: 1}, nil)

		r := gin.New()
		r.POST("/v1/payments/sync", withViewer(landlord), h.Sync)

		w := serve(r, http.MethodPost, "/v1/payments/sync", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body entities.ReconcileResult
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body.Checked != 3 || body.Updated != 1 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestPaymentHandler_SinglePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.ledger.EXPECT().GetPayment(gomock.Any(), tenant, "missing").Return(entities.PaymentView{}, usecase.ErrPaymentNotFound)

		r := gin.New()
		r.GET("/v1/payments/:id", withViewer(tenant), h.GetPayment)

		w := serve(r, http.MethodGet, "/v1/payments/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get late payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		p := samplePayment()
		p.DueDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		m.ledger.EXPECT().GetPayment(gomock.Any(), tenant, "pay-1").Return(entities.NewPaymentView(p, now), nil)

		r := gin.New()
		r.GET("/v1/payments/:id", withViewer(tenant), h.GetPayment)

		w := serve(r, http.MethodGet, "/v1/payments/pay-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"status":"LATE"`)) || !bytes.Contains(w.Body.Bytes(), []byte(`"stored_status":"PENDING"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("verify", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		paid := samplePayment()
		paidAt := now
		paid.Status = entities.PaymentStatusPaid
		paid.PaidAt = &paidAt
		m.gateway.EXPECT().Verify(gomock.Any(), tenant, "pay-1").Return(entities.NewPaymentView(paid, now), nil)

		r := gin.New()
		r.POST("/v1/payments/:id/verify", withViewer(tenant), h.Verify)

		w := serve(r, http.MethodPost, "/v1/payments/pay-1/verify", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"status":"PAID"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.gateway.EXPECT().ListEvents(gomock.Any(), landlord, "pay-1").Return([]entities.GatewayEventRecord{
			{Provider: "stripe", EventID: "evt_1", EventType: "checkout.session.completed", Outcome: entities.GatewayOutcomeSucceeded, ReceivedAt: now},
		}, nil)

		r := gin.New()
		r.GET("/v1/payments/:id/events", withViewer(landlord), h.ListEvents)

		w := serve(r, http.MethodGet, "/v1/payments/pay-1/events", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"event_id":"evt_1"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("override rejects derived status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _ := newPaymentHandler(ctrl)

		r := gin.New()
		r.PUT("/v1/payments/:id", withViewer(landlord), h.Override)

		w := serve(r, http.MethodPut, "/v1/payments/pay-1", `{"status":"LATE"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		failed := samplePayment()
		failed.Status = entities.PaymentStatusFailed
		m.ledger.EXPECT().Override(gomock.Any(), landlord, "pay-1", entities.PaymentStatusFailed).Return(failed, nil)

		r := gin.New()
		r.PUT("/v1/payments/:id", withViewer(landlord), h.Override)

		w := serve(r, http.MethodPut, "/v1/payments/pay-1", `{"status":"failed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"status":"FAILED"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.ledger.EXPECT().DeletePayment(gomock.Any(), landlord, "pay-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/payments/:id", withViewer(landlord), h.DeletePayment)

		w := serve(r, http.MethodDelete, "/v1/payments/pay-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("delete forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, m := newPaymentHandler(ctrl)
		m.ledger.EXPECT().DeletePayment(gomock.Any(), landlord, "pay-9").Return(usecase.ErrAccessDenied)

		r := gin.New()
		r.DELETE("/v1/payments/:id", withViewer(landlord), h.DeletePayment)

		w := serve(r, http.MethodDelete, "/v1/payments/pay-9", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
