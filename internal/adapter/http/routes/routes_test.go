package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"property_manager/internal/adapter/http/handlers"
	"property_manager/internal/adapter/http/handlers/mocks"
	"property_manager/internal/adapter/http/middleware"
	"property_manager/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router  *gin.Engine
	auth    *middleware.Authenticator
	ledger  *mocks.MockIPaymentLedgerUseCase
	gateway *mocks.MockIPaymentGatewayUseCase
	reports *mocks.MockIPaymentReportUseCase
	leases  *mocks.MockILeaseUseCase
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	auth, err := middleware.NewAuthenticator("test-secret", "property-manager")
	require.NoError(t, err)

	f := routerFixture{
		auth:    auth,
		ledger:  mocks.NewMockIPaymentLedgerUseCase(ctrl),
		gateway: mocks.NewMockIPaymentGatewayUseCase(ctrl),
		reports: mocks.NewMockIPaymentReportUseCase(ctrl),
		leases:  mocks.NewMockILeaseUseCase(ctrl),
	}
	f.router = NewRouter(Handlers{
		Payments:   handlers.NewPaymentHandler(f.ledger, f.gateway, f.reports),
		Webhooks:   handlers.NewWebhookHandler(f.gateway),
		Leases:     handlers.NewLeaseHandler(f.leases),
		Properties: handlers.NewPropertyHandler(mocks.NewMockIPropertyUseCase(ctrl)),
		Tenants:    handlers.NewTenantHandler(mocks.NewMockITenantUseCase(ctrl)),
	}, auth)
	return f
}

func (f routerFixture) do(t *testing.T, method, path string, viewer *entities.Viewer) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	if viewer != nil {
		token, err := f.auth.IssueToken(*viewer, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestNewRouter_Public(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, http.MethodGet, "/v1/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	require.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	f.gateway.EXPECT().HandleCallback(gomock.Any(), gomock.Any()).Return(entities.CallbackResult{EventID: "evt_1"}, nil)
	w = f.do(t, http.MethodPost, "/v1/payments/webhook", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_RequiresToken(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{"/v1/payments/mine", "/v1/payments/pay-1", "/v1/leases", "/v1/properties", "/v1/tenants/t-1"} {
		w := f.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestNewRouter_RoleGates(t *testing.T) {
	f := newRouterFixture(t)
	tenant := entities.Viewer{UserID: "tenant-user-1", Role: entities.RoleTenant}
	landlord := entities.Viewer{UserID: "landlord-1", Role: entities.RoleLandlord}

	require.Equal(t, http.StatusForbidden, f.do(t, http.MethodGet, "/v1/payments/landlord/summary", &tenant).Code)
	require.Equal(t, http.StatusForbidden, f.do(t, http.MethodPost, "/v1/payments/sync", &tenant).Code)
	require.Equal(t, http.StatusForbidden, f.do(t, http.MethodDelete, "/v1/payments/pay-1", &tenant).Code)
	require.Equal(t, http.StatusForbidden, f.do(t, http.MethodGet, "/v1/payments/mine", &landlord).Code)
	require.Equal(t, http.StatusForbidden, f.do(t, http.MethodPost, "/v1/properties", &tenant).Code)

	f.reports.EXPECT().Summary(gomock.Any(), "landlord-1").Return(entities.PaymentSummary{TotalRevenue: decimal.Zero}, nil)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/v1/payments/landlord/summary", &landlord).Code)
}

func TestNewRouter_StaticAndParamSegments(t *testing.T) {
	f := newRouterFixture(t)
	tenant := entities.Viewer{UserID: "tenant-user-1", Role: entities.RoleTenant}

	f.ledger.EXPECT().ListByTenant(gomock.Any(), "tenant-user-1").Return(nil, nil)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/v1/payments/mine", &tenant).Code)

	f.ledger.EXPECT().GetPayment(gomock.Any(), tenant, "pay-1").Return(entities.PaymentView{}, nil)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/v1/payments/pay-1", &tenant).Code)

	f.ledger.EXPECT().ListByLease(gomock.Any(), tenant, "lease-1").Return(nil, nil)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/v1/payments/lease/lease-1", &tenant).Code)

	f.gateway.EXPECT().Verify(gomock.Any(), tenant, "pay-1").Return(entities.PaymentView{}, nil)
	require.Equal(t, http.StatusOK, f.do(t, http.MethodPost, "/v1/payments/pay-1/verify", &tenant).Code)
}
