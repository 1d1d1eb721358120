package payments

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const stripeTestSecret = "whsec_test"

func stripeSignature(payload []byte, secret string) string {
	now := time.Now()
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(webhook.ComputeSignature(now, payload, secret)))
}

func newTestStripeGateway(t *testing.T, backendURL string) *StripeGateway {
	t.Helper()
	g, err := NewStripeGateway(StripeGatewayConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: stripeTestSecret,
		FrontendURL:   "http://front.test/",
		BackendURL:    backendURL,
	})
	require.NoError(t, err)
	return g
}

func TestNewStripeGateway_RequiresSecretKey(t *testing.T) {
	_, err := NewStripeGateway(StripeGatewayConfig{})
	require.ErrorIs(t, err, ErrMissingStripeSecretKey)
}

func TestStripeGateway_ParseCallback(t *testing.T) {
	g := newTestStripeGateway(t, "")
	ctx := context.Background()

	event := func(typ, object string) []byte {
		return []byte(fmt.Sprintf(`{"id":"evt_1","object":"event","type":%q,"created":1709294400,"data":{"object":%s}}`, typ, object))
	}

	cases := []struct {
		name      string
		payload   []byte
		paymentID string
		ref       string
		outcome   entities.GatewayOutcome
	}{
		{
			name:      "completed and paid",
			payload:   event("checkout.session.completed", `{"id":"cs_test_1","object":"checkout.session","payment_status":"paid","status":"complete","metadata":{"paymentId":"pay-1"}}`),
			paymentID: "pay-1",
			ref:       "cs_test_1",
			outcome:   entities.GatewayOutcomeSucceeded,
		},
		{
			name:      "completed but unpaid",
			payload:   event("checkout.session.completed", `{"id":"cs_test_1","object":"checkout.session","payment_status":"unpaid","status":"complete","metadata":{"paymentId":"pay-1"}}`),
			paymentID: "pay-1",
			ref:       "cs_test_1",
			outcome:   entities.GatewayOutcomePending,
		},
		{
			name:      "async payment failed",
			payload:   event("checkout.session.async_payment_failed", `{"id":"cs_test_1","object":"checkout.session","metadata":{"paymentId":"pay-1"}}`),
			paymentID: "pay-1",
			ref:       "cs_test_1",
			outcome:   entities.GatewayOutcomeFailed,
		},
		{
			name:      "session expired",
			payload:   event("checkout.session.expired", `{"id":"cs_test_1","object":"checkout.session","status":"expired","metadata":{"paymentId":"pay-1"}}`),
			paymentID: "pay-1",
			ref:       "cs_test_1",
			outcome:   entities.GatewayOutcomeFailed,
		},
		{
			name:      "payment intent succeeded",
			payload:   event("payment_intent.succeeded", `{"id":"pi_1","object":"payment_intent","status":"succeeded","metadata":{"paymentId":"pay-2"}}`),
			paymentID: "pay-2",
			ref:       "pi_1",
			outcome:   entities.GatewayOutcomeSucceeded,
		},
		{
			name:      "declined attempt stays retryable",
			payload:   event("payment_intent.payment_failed", `{"id":"pi_1","object":"payment_intent","status":"requires_payment_method","metadata":{"paymentId":"pay-2"}}`),
			paymentID: "pay-2",
			ref:       "pi_1",
			outcome:   entities.GatewayOutcomePending,
		},
		{
			name:      "payment intent canceled",
			payload:   event("payment_intent.canceled", `{"id":"pi_1","object":"payment_intent","status":"canceled","metadata":{"paymentId":"pay-2"}}`),
			paymentID: "pay-2",
			ref:       "pi_1",
			outcome:   entities.GatewayOutcomeFailed,
		},
		{
			name:    "missing metadata",
			payload: event("checkout.session.completed", `{"id":"cs_test_1","object":"checkout.session","payment_status":"paid"}`),
			ref:     "cs_test_1",
			outcome: entities.GatewayOutcomeSucceeded,
		},
		{
			name:    "unrelated event",
			payload: event("customer.created", `{"id":"cus_1","object":"customer"}`),
			outcome: entities.GatewayOutcomeIgnored,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := g.ParseCallback(ctx, entities.GatewayCallback{
				Payload:   tc.payload,
				Signature: stripeSignature(tc.payload, stripeTestSecret),
			})
			require.NoError(t, err)
			require.Equal(t, ProviderStripe, got.Provider)
			require.Equal(t, "evt_1", got.EventID)
			require.Equal(t, tc.paymentID, got.PaymentID)
			require.Equal(t, tc.ref, got.GatewayRef)
			require.Equal(t, tc.outcome, got.Outcome)
			require.Equal(t, time.Unix(1709294400, 0).UTC(), got.OccurredAt)
		})
	}

	t.Run("rejects a foreign signature", func(t *testing.T) {
		payload := event("checkout.session.completed", `{"id":"cs_test_1","metadata":{"paymentId":"pay-1"}}`)
		_, err := g.ParseCallback(ctx, entities.GatewayCallback{Payload: payload, Signature: stripeSignature(payload, "whsec_other")})
		require.ErrorIs(t, err, interfaces.ErrInvalidCallbackSignature)
	})

	t.Run("rejects an unsigned body", func(t *testing.T) {
		payload := event("checkout.session.completed", `{"id":"cs_test_1"}`)
		_, err := g.ParseCallback(ctx, entities.GatewayCallback{Payload: payload})
		require.ErrorIs(t, err, interfaces.ErrInvalidCallbackSignature)
	})

	t.Run("rejects a tampered body", func(t *testing.T) {
		payload := event("checkout.session.completed", `{"id":"cs_test_1","metadata":{"paymentId":"pay-1"}}`)
		sig := stripeSignature(payload, stripeTestSecret)
		tampered := event("checkout.session.completed", `{"id":"cs_test_1","metadata":{"paymentId":"pay-9"}}`)
		_, err := g.ParseCallback(ctx, entities.GatewayCallback{Payload: tampered, Signature: sig})
		require.ErrorIs(t, err, interfaces.ErrInvalidCallbackSignature)
	})

	t.Run("no webhook secret configured", func(t *testing.T) {
		bare, err := NewStripeGateway(StripeGatewayConfig{SecretKey: "sk_test_123"})
		require.NoError(t, err)
		payload := event("checkout.session.completed", `{"id":"cs_test_1"}`)
		_, err = bare.ParseCallback(ctx, entities.GatewayCallback{Payload: payload, Signature: stripeSignature(payload, "")})
		require.ErrorIs(t, err, interfaces.ErrInvalidCallbackSignature)
	})
}

func writeStripeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestStripeGateway_CheckoutAndStatus(t *testing.T) {
	forms := make(chan url.Values, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/checkout/sessions", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		forms <- r.PostForm
		writeStripeJSON(w, `{"id":"cs_test_new","object":"checkout.session","url":"https://checkout.stripe.test/c/cs_test_new"}`)
	})
	mux.HandleFunc("/v1/checkout/sessions/cs_test_paid", func(w http.ResponseWriter, r *http.Request) {
		writeStripeJSON(w, `{"id":"cs_test_paid","object":"checkout.session","status":"complete","payment_status":"paid","payment_intent":{"id":"pi_paid","object":"payment_intent","status":"requires_capture"}}`)
	})
	mux.HandleFunc("/v1/checkout/sessions/cs_test_expired", func(w http.ResponseWriter, r *http.Request) {
		writeStripeJSON(w, `{"id":"cs_test_expired","object":"checkout.session","status":"expired","payment_status":"unpaid","payment_intent":null}`)
	})
	mux.HandleFunc("/v1/checkout/sessions/cs_test_open", func(w http.ResponseWriter, r *http.Request) {
		writeStripeJSON(w, `{"id":"cs_test_open","object":"checkout.session","status":"open","payment_status":"unpaid","payment_intent":null}`)
	})
	mux.HandleFunc("/v1/payment_intents/pi_canceled", func(w http.ResponseWriter, r *http.Request) {
		writeStripeJSON(w, `{"id":"pi_canceled","object":"payment_intent","status":"canceled"}`)
	})
	mux.HandleFunc("/v1/payment_intents/pi_done", func(w http.ResponseWriter, r *http.Request) {
		writeStripeJSON(w, `{"id":"pi_done","object":"payment_intent","status":"succeeded"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	g := newTestStripeGateway(t, srv.URL)
	ctx := context.Background()

	t.Run("create checkout", func(t *testing.T) {
		session, err := g.CreateCheckout(ctx, entities.CheckoutRequest{
			PaymentID:          "pay-1",
			LeaseID:            "lease-1",
			Amount:             decimal.RequireFromString("1500.50"),
			Currency:           "usd",
			ProductName:        "Rent Payment - Maple Court",
			ProductDescription: "Unit 4B - Due 2024-04-01",
		})
		require.NoError(t, err)
		require.Equal(t, "cs_test_new", session.SessionID)
		require.Equal(t, "cs_test_new", session.GatewayRef)
		require.Equal(t, "https://checkout.stripe.test/c/cs_test_new", session.CheckoutURL)

		form := <-forms
		require.Equal(t, "payment", form.Get("mode"))
		require.Equal(t, "150050", form.Get("line_items[0][price_data][unit_amount]"))
		require.Equal(t, "usd", form.Get("line_items[0][price_data][currency]"))
		require.Equal(t, "Rent Payment - Maple Court", form.Get("line_items[0][price_data][product_data][name]"))
		require.Equal(t, "1", form.Get("line_items[0][quantity]"))
		require.Equal(t, "pay-1", form.Get("metadata[paymentId]"))
		require.Equal(t, "pay-1", form.Get("payment_intent_data[metadata][paymentId]"))
		require.Equal(t, "http://front.test/tenant/payments?success=true", form.Get("success_url"))
		require.Equal(t, "http://front.test/tenant/payments?canceled=true", form.Get("cancel_url"))
	})

	statusCases := []struct {
		ref     string
		outcome entities.GatewayOutcome
		gotRef  string
	}{
		{"cs_test_paid", entities.GatewayOutcomeSucceeded, "pi_paid"},
		{"cs_test_expired", entities.GatewayOutcomeFailed, "cs_test_expired"},
		{"cs_test_open", entities.GatewayOutcomePending, "cs_test_open"},
		{"pi_canceled", entities.GatewayOutcomeFailed, "pi_canceled"},
		{"pi_done", entities.GatewayOutcomeSucceeded, "pi_done"},
	}
	for _, tc := range statusCases {
		t.Run("status "+tc.ref, func(t *testing.T) {
			got, err := g.FetchStatus(ctx, entities.Payment{ID: "pay-1", GatewayRef: tc.ref})
			require.NoError(t, err)
			require.Equal(t, tc.outcome, got.Outcome)
			require.Equal(t, tc.gotRef, got.GatewayRef)
		})
	}

	t.Run("unknown reference", func(t *testing.T) {
		_, err := g.FetchStatus(ctx, entities.Payment{ID: "pay-1", GatewayRef: "ref_1"})
		require.Error(t, err)
	})
}

func TestToMinorUnits(t *testing.T) {
	require.EqualValues(t, 150000, toMinorUnits(decimal.RequireFromString("1500")))
	require.EqualValues(t, 150050, toMinorUnits(decimal.RequireFromString("1500.50")))
	require.EqualValues(t, 1, toMinorUnits(decimal.RequireFromString("0.005")))
}
