package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/infrastructure/logging"
	"property_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	ProviderMock = "mock"

	MockEventSucceeded = "payment.succeeded"
	MockEventFailed    = "payment.failed"

	mockRefPrefix = "mock_cs_"
)

// MockGateway stands in for a processor in local and CI environments
// (PAYMENT_GATEWAY_MOCK). Every session it opens reports as approved.
//
// Callbacks are JSON bodies signed with a hex HMAC-SHA256 of the raw body:
//
//	{"id":"evt_1","type":"payment.succeeded","payment_id":"<ledger id>"}
type MockGateway struct {
	secret      string
	checkoutURL string
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

type mockEvent struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	PaymentID  string `json:"payment_id"`
	GatewayRef string `json:"gateway_ref"`
	Created    int64  `json:"created"`
}

func NewMockGateway(secret, frontendURL string) *MockGateway {
	logging.Logger().Info("[payment][mock] mock mode enabled")
	return &MockGateway{
		secret:      secret,
		checkoutURL: strings.TrimRight(frontendURL, "/") + "/tenant/payments/mock-checkout",
	}
}

func (g *MockGateway) Name() string { return ProviderMock }

func (g *MockGateway) CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	id := mockRefPrefix + uuid.NewString()
	q := url.Values{}
	q.Set("session", id)
	q.Set("payment_id", req.PaymentID)

	logging.FromContext(ctx).WithField("session_id", id).Info("[payment][mock] checkout session created")
	return entities.CheckoutSession{
		SessionID:    id,
		GatewayRef:   id,
		CheckoutURL:  g.checkoutURL + "?" + q.Encode(),
		ClientSecret: "mock_secret_" + strings.TrimPrefix(id, mockRefPrefix),
	}, nil
}

func (g *MockGateway) FetchStatus(_ context.Context, p entities.Payment) (entities.GatewayStatus, error) {
	if !strings.HasPrefix(p.GatewayRef, mockRefPrefix) {
		return entities.GatewayStatus{}, fmt.Errorf("unrecognised mock reference %q", p.GatewayRef)
	}
	return entities.GatewayStatus{Outcome: entities.GatewayOutcomeSucceeded, GatewayRef: p.GatewayRef}, nil
}

func (g *MockGateway) ParseCallback(ctx context.Context, cb entities.GatewayCallback) (entities.GatewayEvent, error) {
	if g.secret == "" {
		return entities.GatewayEvent{}, fmt.Errorf("%w: webhook secret not configured", interfaces.ErrInvalidCallbackSignature)
	}
	got, err := hex.DecodeString(strings.TrimSpace(cb.Signature))
	if err != nil || !hmac.Equal(got, mockDigest(g.secret, cb.Payload)) {
		return entities.GatewayEvent{}, interfaces.ErrInvalidCallbackSignature
	}

	var ev mockEvent
	if err := json.Unmarshal(cb.Payload, &ev); err != nil {
		logging.FromContext(ctx).WithError(err).Warn("[payment][mock] malformed callback body")
		return entities.GatewayEvent{
			Provider: ProviderMock,
			EventID:  "malformed:" + SignMockPayload(g.secret, cb.Payload)[:16],
			Outcome:  entities.GatewayOutcomeIgnored,
		}, nil
	}

	out := entities.GatewayEvent{
		Provider:   ProviderMock,
		EventID:    ev.ID,
		EventType:  ev.Type,
		PaymentID:  strings.TrimSpace(ev.PaymentID),
		GatewayRef: ev.GatewayRef,
		Outcome:    entities.GatewayOutcomeIgnored,
	}
	if out.EventID == "" {
		out.EventID = ev.Type + ":" + out.PaymentID
	}
	if ev.Created > 0 {
		out.OccurredAt = time.Unix(ev.Created, 0).UTC()
	}
	switch ev.Type {
	case MockEventSucceeded:
		out.Outcome = entities.GatewayOutcomeSucceeded
	case MockEventFailed:
		out.Outcome = entities.GatewayOutcomeFailed
	}
	return out, nil
}

// SignMockPayload returns the signature header value MockGateway expects.
func SignMockPayload(secret string, payload []byte) string {
	return hex.EncodeToString(mockDigest(secret, payload))
}

func mockDigest(secret string, payload []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return mac.Sum(nil)
}
