package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/infrastructure/logging"
	"property_manager/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const ProviderStripe = "stripe"

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

type StripeGatewayConfig struct {
	SecretKey     string
	WebhookSecret string
	FrontendURL   string
	// BackendURL overrides the Stripe API base URL (stripe-mock, tests).
	BackendURL string
}

// StripeGateway opens hosted checkout sessions and maps Stripe webhooks and
// payment intents onto gateway outcomes.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg StripeGatewayConfig) (*StripeGateway, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		logging.Logger().Error("[payment][stripe] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	var backends *stripe.Backends
	if cfg.BackendURL != "" {
		b := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL:           stripe.String(cfg.BackendURL),
			LeveledLogger: &stripe.LeveledLogger{Level: stripe.LevelError},
		})
		backends = &stripe.Backends{API: b, Connect: b, Uploads: b}
	}
	api := &client.API{}
	api.Init(cfg.SecretKey, backends)

	front := strings.TrimRight(cfg.FrontendURL, "/")
	if cfg.WebhookSecret == "" {
		logging.Logger().Warn("[payment][stripe] STRIPE_WEBHOOK_SECRET not set; every webhook will be rejected")
	}
	logging.Logger().Info("[payment][stripe] client initialized")

	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		successURL:    front + "/tenant/payments?success=true",
		cancelURL:     front + "/tenant/payments?canceled=true",
	}, nil
}

func (g *StripeGateway) Name() string { return ProviderStripe }

func (g *StripeGateway) CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	log := logging.FromContext(ctx).WithField("payment_id", req.PaymentID)

	cents := toMinorUnits(req.Amount)
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.ProductName),
						Description: stripe.String(req.ProductDescription),
					},
					UnitAmount: stripe.Int64(cents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{entities.PaymentMetadataKey: req.PaymentID},
		},
		Metadata:          map[string]string{entities.PaymentMetadataKey: req.PaymentID},
		ClientReferenceID: stripe.String(req.PaymentID),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
	}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		log.WithError(err).Error("[payment][stripe] checkout session create failed")
		return entities.CheckoutSession{}, err
	}
	log.WithFields(logrus.Fields{"session_id": s.ID, "amount_cents": cents}).Info("[payment][stripe] checkout session created")

	return entities.CheckoutSession{
		SessionID:   s.ID,
		GatewayRef:  s.ID,
		CheckoutURL: s.URL,
	}, nil
}

// FetchStatus resolves cs_ references through the session's payment intent
// and reads pi_ references directly.
func (g *StripeGateway) FetchStatus(ctx context.Context, p entities.Payment) (entities.GatewayStatus, error) {
	ref := strings.TrimSpace(p.GatewayRef)
	switch {
	case strings.HasPrefix(ref, "cs_"):
		params := &stripe.CheckoutSessionParams{}
		params.Context = ctx
		params.AddExpand("payment_intent")
		s, err := g.api.CheckoutSessions.Get(ref, params)
		if err != nil {
			return entities.GatewayStatus{}, err
		}
		return sessionStatus(s), nil
	case strings.HasPrefix(ref, "pi_"):
		params := &stripe.PaymentIntentParams{}
		params.Context = ctx
		pi, err := g.api.PaymentIntents.Get(ref, params)
		if err != nil {
			return entities.GatewayStatus{}, err
		}
		return entities.GatewayStatus{Outcome: intentOutcome(pi.Status), GatewayRef: pi.ID}, nil
	default:
		return entities.GatewayStatus{}, fmt.Errorf("unrecognised stripe reference %q", ref)
	}
}

func sessionStatus(s *stripe.CheckoutSession) entities.GatewayStatus {
	if s.PaymentIntent != nil && s.PaymentIntent.Status != "" {
		return entities.GatewayStatus{Outcome: intentOutcome(s.PaymentIntent.Status), GatewayRef: s.PaymentIntent.ID}
	}
	switch {
	case s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid:
		return entities.GatewayStatus{Outcome: entities.GatewayOutcomeSucceeded, GatewayRef: s.ID}
	case s.Status == stripe.CheckoutSessionStatusExpired:
		return entities.GatewayStatus{Outcome: entities.GatewayOutcomeFailed, GatewayRef: s.ID}
	default:
		return entities.GatewayStatus{Outcome: entities.GatewayOutcomePending, GatewayRef: s.ID}
	}
}

func intentOutcome(status stripe.PaymentIntentStatus) entities.GatewayOutcome {
	switch status {
	case stripe.PaymentIntentStatusSucceeded, stripe.PaymentIntentStatusRequiresCapture:
		return entities.GatewayOutcomeSucceeded
	case stripe.PaymentIntentStatusCanceled:
		return entities.GatewayOutcomeFailed
	default:
		return entities.GatewayOutcomePending
	}
}

// ParseCallback verifies the Stripe-Signature header against the raw body
// before decoding the event.
func (g *StripeGateway) ParseCallback(ctx context.Context, cb entities.GatewayCallback) (entities.GatewayEvent, error) {
	if g.webhookSecret == "" {
		return entities.GatewayEvent{}, fmt.Errorf("%w: webhook secret not configured", interfaces.ErrInvalidCallbackSignature)
	}

	event, err := webhook.ConstructEventWithOptions(cb.Payload, cb.Signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if isStripeSignatureError(err) {
			return entities.GatewayEvent{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidCallbackSignature, err)
		}
		return entities.GatewayEvent{}, fmt.Errorf("decode stripe event: %w", err)
	}

	out := entities.GatewayEvent{
		Provider:   ProviderStripe,
		EventID:    event.ID,
		EventType:  string(event.Type),
		Outcome:    entities.GatewayOutcomeIgnored,
		OccurredAt: time.Unix(event.Created, 0).UTC(),
	}
	if event.Data == nil {
		return out, nil
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted,
		stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded,
		stripe.EventTypeCheckoutSessionAsyncPaymentFailed,
		stripe.EventTypeCheckoutSessionExpired:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			logging.FromContext(ctx).WithError(err).WithField("event_id", event.ID).Warn("[payment][stripe] malformed checkout session in event")
			return out, nil
		}
		out.PaymentID = strings.TrimSpace(s.Metadata[entities.PaymentMetadataKey])
		out.GatewayRef = s.ID
		out.Outcome = checkoutEventOutcome(event.Type, s)
	case stripe.EventTypePaymentIntentSucceeded,
		stripe.EventTypePaymentIntentPaymentFailed,
		stripe.EventTypePaymentIntentCanceled:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			logging.FromContext(ctx).WithError(err).WithField("event_id", event.ID).Warn("[payment][stripe] malformed payment intent in event")
			return out, nil
		}
		out.PaymentID = strings.TrimSpace(pi.Metadata[entities.PaymentMetadataKey])
		out.GatewayRef = pi.ID
		switch event.Type {
		case stripe.EventTypePaymentIntentSucceeded:
			out.Outcome = entities.GatewayOutcomeSucceeded
		case stripe.EventTypePaymentIntentCanceled:
			out.Outcome = entities.GatewayOutcomeFailed
		default:
			// a declined attempt leaves the intent open for another payment method
			out.Outcome = entities.GatewayOutcomePending
		}
	}
	return out, nil
}

func checkoutEventOutcome(t stripe.EventType, s stripe.CheckoutSession) entities.GatewayOutcome {
	switch t {
	case stripe.EventTypeCheckoutSessionCompleted:
		// async methods complete the session before the money moves
		if s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
			return entities.GatewayOutcomeSucceeded
		}
		return entities.GatewayOutcomePending
	case stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		return entities.GatewayOutcomeSucceeded
	default:
		return entities.GatewayOutcomeFailed
	}
}

func isStripeSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}

// toMinorUnits converts an amount to cents, rounding half away from zero.
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
