package response

import (
	"time"

	"property_manager/internal/domain/entities"
)

const dateLayout = "2006-01-02"

// PaymentResponse reports the effective status in Status; StoredStatus is
// what the ledger holds.
type PaymentResponse struct {
	ID           string     `json:"id"`
	LeaseID      string     `json:"lease_id"`
	Amount       string     `json:"amount"`
	DueDate      string     `json:"due_date"`
	PaidAt       *time.Time `json:"paid_at"`
	Status       string     `json:"status"`
	StoredStatus string     `json:"stored_status"`
	GatewayRef   string     `json:"gateway_ref,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromPaymentView(v entities.PaymentView) PaymentResponse {
	return PaymentResponse{
		ID:           v.ID,
		LeaseID:      v.LeaseID,
		Amount:       v.Amount.StringFixed(2),
		DueDate:      v.DueDate.UTC().Format(dateLayout),
		PaidAt:       v.PaidAt,
		Status:       string(v.EffectiveStatus),
		StoredStatus: string(v.Status),
		GatewayRef:   v.GatewayRef,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// FromPayment derives the effective status at now.
func FromPayment(p entities.Payment, now time.Time) PaymentResponse {
	return FromPaymentView(entities.NewPaymentView(p, now))
}

func FromPaymentViews(vs []entities.PaymentView) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromPaymentView(v))
	}
	return out
}

type CheckoutResponse struct {
	SessionID    string `json:"session_id"`
	CheckoutURL  string `json:"checkout_url"`
	ClientSecret string `json:"client_secret,omitempty"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		SessionID:    s.SessionID,
		CheckoutURL:  s.CheckoutURL,
		ClientSecret: s.ClientSecret,
	}
}

type WebhookResponse struct {
	Received  bool   `json:"received"`
	EventID   string `json:"event_id,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Applied   bool   `json:"applied"`
	Duplicate bool   `json:"duplicate"`
}

func FromCallbackResult(r entities.CallbackResult) WebhookResponse {
	return WebhookResponse{
		Received:  true,
		EventID:   r.EventID,
		Outcome:   string(r.Outcome),
		Applied:   r.Applied,
		Duplicate: r.Duplicate,
	}
}

type GatewayEventResponse struct {
	Provider   string    `json:"provider"`
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Outcome    string    `json:"outcome"`
	ReceivedAt time.Time `json:"received_at"`
}

func FromGatewayEvents(rs []entities.GatewayEventRecord) []GatewayEventResponse {
	out := make([]GatewayEventResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, GatewayEventResponse{
			Provider:   r.Provider,
			EventID:    r.EventID,
			EventType:  r.EventType,
			Outcome:    string(r.Outcome),
			ReceivedAt: r.ReceivedAt,
		})
	}
	return out
}
