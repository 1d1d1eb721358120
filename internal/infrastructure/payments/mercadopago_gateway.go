package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"property_manager/internal/domain/entities"
	"property_manager/internal/infrastructure/logging"
	"property_manager/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/sirupsen/logrus"
)

const ProviderMercadoPago = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGatewayConfig struct {
	AccessToken     string
	WebhookSecret   string
	NotificationURL string
	FrontendURL     string
}

// MercadoPagoGateway opens Checkout Pro preferences and resolves payment
// notifications. The ledger payment id travels both as external_reference
// and as preference metadata.
type MercadoPagoGateway struct {
	payments        payment.Client
	preferences     preference.Client
	webhookSecret   string
	notificationURL string
	successURL      string
	cancelURL       string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg MercadoPagoGatewayConfig) (*MercadoPagoGateway, error) {
	if strings.TrimSpace(cfg.AccessToken) == "" {
		logging.Logger().Error("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		logging.Logger().WithError(err).Error("[payment][mercadopago] failed creating sdk config")
		return nil, err
	}
	logging.Logger().Info("[payment][mercadopago] client initialized")

	return newMercadoPagoGateway(payment.NewClient(sdkCfg), preference.NewClient(sdkCfg), cfg), nil
}

func newMercadoPagoGateway(payments payment.Client, preferences preference.Client, cfg MercadoPagoGatewayConfig) *MercadoPagoGateway {
	front := strings.TrimRight(cfg.FrontendURL, "/")
	return &MercadoPagoGateway{
		payments:        payments,
		preferences:     preferences,
		webhookSecret:   cfg.WebhookSecret,
		notificationURL: cfg.NotificationURL,
		successURL:      front + "/tenant/payments?success=true",
		cancelURL:       front + "/tenant/payments?canceled=true",
	}
}

func (g *MercadoPagoGateway) Name() string { return ProviderMercadoPago }

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	if g == nil || g.preferences == nil {
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log := logging.FromContext(ctx).WithField("payment_id", req.PaymentID)
	log.Info("[payment][mercadopago] preference create start")

	unitPrice, _ := req.Amount.Round(2).Float64()
	pref := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:          req.PaymentID,
				Title:       req.ProductName,
				Description: req.ProductDescription,
				Quantity:    1,
				UnitPrice:   unitPrice,
				CurrencyID:  strings.ToUpper(req.Currency),
			},
		},
		ExternalReference: req.PaymentID,
		Metadata:          map[string]any{entities.PaymentMetadataKey: req.PaymentID},
		BackURLs: &preference.BackURLsRequest{
			Success: g.successURL,
			Pending: g.successURL,
			Failure: g.cancelURL,
		},
		NotificationURL: g.notificationURL,
	}

	resp, err := g.preferences.Create(ctx, pref)
	if err != nil {
		log.WithError(err).Error("[payment][mercadopago] sdk preference create failed")
		return entities.CheckoutSession{}, err
	}

	url := resp.InitPoint
	if url == "" {
		url = resp.SandboxInitPoint
	}
	log.WithField("preference_id", resp.ID).Info("[payment][mercadopago] preference create success")
	return entities.CheckoutSession{SessionID: resp.ID, GatewayRef: resp.ID, CheckoutURL: url}, nil
}

// FetchStatus looks up the processor payments made against the ledger
// payment. One approved payment settles it; otherwise the most recent wins.
func (g *MercadoPagoGateway) FetchStatus(ctx context.Context, p entities.Payment) (entities.GatewayStatus, error) {
	if g == nil || g.payments == nil {
		return entities.GatewayStatus{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.payments.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{
			"external_reference": p.ID,
			"sort":               "date_created",
			"criteria":           "desc",
		},
		Limit: 20,
	})
	if err != nil {
		return entities.GatewayStatus{}, err
	}
	if len(resp.Results) == 0 {
		return entities.GatewayStatus{Outcome: entities.GatewayOutcomePending, GatewayRef: p.GatewayRef}, nil
	}

	for _, r := range resp.Results {
		if mercadoPagoOutcome(r.Status) == entities.GatewayOutcomeSucceeded {
			return entities.GatewayStatus{Outcome: entities.GatewayOutcomeSucceeded, GatewayRef: strconv.Itoa(r.ID)}, nil
		}
	}
	latest := resp.Results[0]
	return entities.GatewayStatus{Outcome: mercadoPagoOutcome(latest.Status), GatewayRef: strconv.Itoa(latest.ID)}, nil
}

type mercadoPagoNotification struct {
	ID     json.RawMessage `json:"id"`
	Type   string          `json:"type"`
	Action string          `json:"action"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// ParseCallback checks x-signature, then fetches the notified payment since
// notifications only carry its id.
func (g *MercadoPagoGateway) ParseCallback(ctx context.Context, cb entities.GatewayCallback) (entities.GatewayEvent, error) {
	if err := VerifyMercadoPagoSignature(g.webhookSecret, cb.Signature, cb.RequestID, cb.DataID); err != nil {
		return entities.GatewayEvent{}, err
	}

	var n mercadoPagoNotification
	if err := json.Unmarshal(cb.Payload, &n); err != nil {
		logging.FromContext(ctx).WithError(err).Warn("[payment][mercadopago] malformed notification body")
	}
	dataID := strings.TrimSpace(cb.DataID)
	if dataID == "" {
		dataID = rawString(n.Data.ID)
	}

	out := entities.GatewayEvent{
		Provider:  ProviderMercadoPago,
		EventID:   rawString(n.ID),
		EventType: firstNonEmpty(n.Action, n.Type),
		Outcome:   entities.GatewayOutcomeIgnored,
	}
	if out.EventID == "" {
		out.EventID = out.EventType + ":" + dataID
	}
	if n.Type != "" && n.Type != "payment" {
		return out, nil
	}

	id, err := strconv.Atoi(dataID)
	if err != nil {
		logging.FromContext(ctx).WithField("data_id", dataID).Warn("[payment][mercadopago] notification without a numeric payment id")
		return out, nil
	}
	if g.payments == nil {
		return entities.GatewayEvent{}, ErrMercadoPagoGatewayNotConfigured
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return entities.GatewayEvent{}, fmt.Errorf("fetch mercado pago payment %d: %w", id, err)
	}

	out.PaymentID = mercadoPagoPaymentID(resp)
	out.GatewayRef = strconv.Itoa(resp.ID)
	out.Outcome = mercadoPagoOutcome(resp.Status)
	if rawString(n.ID) == "" {
		out.EventID = fmt.Sprintf("payment:%d:%s", resp.ID, resp.Status)
	}

	logging.FromContext(ctx).WithFields(logrus.Fields{
		"mp_payment_id": resp.ID,
		"mp_status":     resp.Status,
		"payment_id":    out.PaymentID,
	}).Info("[payment][mercadopago] notification resolved")
	return out, nil
}

// VerifyMercadoPagoSignature validates an x-signature header ("ts=...,v1=...")
// against the HMAC-SHA256 of the notification manifest.
func VerifyMercadoPagoSignature(secret, header, requestID, dataID string) error {
	if secret == "" {
		return fmt.Errorf("%w: webhook secret not configured", interfaces.ErrInvalidCallbackSignature)
	}

	var ts, v1 string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(v)
		case "v1":
			v1 = strings.TrimSpace(v)
		}
	}
	if ts == "" || v1 == "" {
		return fmt.Errorf("%w: malformed x-signature header", interfaces.ErrInvalidCallbackSignature)
	}

	got, err := hex.DecodeString(v1)
	if err != nil {
		return fmt.Errorf("%w: malformed v1 digest", interfaces.ErrInvalidCallbackSignature)
	}
	if !hmac.Equal(got, signMercadoPagoManifest(secret, mercadoPagoManifest(dataID, requestID, ts))) {
		return fmt.Errorf("%w: digest mismatch", interfaces.ErrInvalidCallbackSignature)
	}
	return nil
}

func mercadoPagoManifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	return b.String()
}

func signMercadoPagoManifest(secret, manifest string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return mac.Sum(nil)
}

func mercadoPagoOutcome(status string) entities.GatewayOutcome {
	switch strings.ToLower(status) {
	case "approved", "authorized":
		return entities.GatewayOutcomeSucceeded
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.GatewayOutcomeFailed
	default:
		return entities.GatewayOutcomePending
	}
}

// mercadoPagoPaymentID reads the ledger id back. Mercado Pago snake_cases
// metadata keys, so both spellings are accepted.
func mercadoPagoPaymentID(resp *payment.Response) string {
	for _, key := range []string{"payment_id", entities.PaymentMetadataKey} {
		if v, ok := resp.Metadata[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return strings.TrimSpace(resp.ExternalReference)
}

func rawString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if unq, err := strconv.Unquote(s); err == nil {
		return unq
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
