package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMetadataKey tags processor sessions with the ledger payment id.
// Callbacks are mapped back to a payment exclusively through this key.
const PaymentMetadataKey = "paymentId"

// GatewayOutcome is the processor's verdict on a payment, normalised across
// providers.
type GatewayOutcome string

const (
	GatewayOutcomeSucceeded GatewayOutcome = "succeeded"
	GatewayOutcomeFailed    GatewayOutcome = "failed"
	GatewayOutcomePending   GatewayOutcome = "pending"
	GatewayOutcomeIgnored   GatewayOutcome = "ignored"
)

// CheckoutRequest carries what a processor needs to open a hosted checkout.
type CheckoutRequest struct {
	PaymentID          string
	LeaseID            string
	Amount             decimal.Decimal
	Currency           string
	ProductName        string
	ProductDescription string
}

// CheckoutSession is the processor handle returned to the payer.
type CheckoutSession struct {
	SessionID    string
	GatewayRef   string
	CheckoutURL  string
	ClientSecret string
}

// GatewayCallback is an unparsed processor notification as received over HTTP.
// Payload must be the raw request body.
type GatewayCallback struct {
	Payload   []byte
	Signature string
	RequestID string
	DataID    string
}

// GatewayEvent is a verified callback reduced to what the ledger needs.
// PaymentID is empty when the event carried no usable metadata.
type GatewayEvent struct {
	Provider   string
	EventID    string
	EventType  string
	PaymentID  string
	GatewayRef string
	Outcome    GatewayOutcome
	OccurredAt time.Time
}

// GatewayStatus is the processor's current view of one payment.
type GatewayStatus struct {
	Outcome    GatewayOutcome
	GatewayRef string
}

// GatewayEventRecord is one journaled callback delivery.
type GatewayEventRecord struct {
	Provider   string
	EventID    string
	EventType  string
	PaymentID  string
	Outcome    GatewayOutcome
	Payload    []byte
	ReceivedAt time.Time
}

// CallbackResult tells the webhook caller what happened to a delivery.
// The delivery is acknowledged in every case.
type CallbackResult struct {
	EventID   string
	PaymentID string
	Outcome   GatewayOutcome
	Applied   bool
	Duplicate bool
}

// ReconcileResult summarises one reconciliation sweep.
type ReconcileResult struct {
	Checked int `json:"checked"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}
