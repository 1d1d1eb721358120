package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle status of a ledger payment.
//
// Only PENDING, PAID and FAILED are ever persisted. LATE is derived at read
// time from the due date (see DeriveStatus).
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
	PaymentStatusLate    PaymentStatus = "LATE"
)

// IsTerminal reports whether the gateway path may no longer move the payment.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed
}

// ParseStoredPaymentStatus accepts the statuses that can be written to the ledger.
func ParseStoredPaymentStatus(v string) (PaymentStatus, bool) {
	switch s := PaymentStatus(strings.ToUpper(strings.TrimSpace(v))); s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return s, true
	}
	return "", false
}

// Payment is one rent installment of a lease.
//
// PaidAt is set if and only if Status is PAID. GatewayRef holds the processor
// session or intent id once a checkout has been started.
type Payment struct {
	ID         string
	LeaseID    string
	Amount     decimal.Decimal
	DueDate    time.Time
	PaidAt     *time.Time
	Status     PaymentStatus
	GatewayRef string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DeriveStatus computes the status shown to clients.
func DeriveStatus(stored PaymentStatus, dueDate, now time.Time) PaymentStatus {
	switch stored {
	case PaymentStatusPaid:
		return PaymentStatusPaid
	case PaymentStatusFailed:
		return PaymentStatusFailed
	}
	if dueDate.Before(now) {
		return PaymentStatusLate
	}
	return PaymentStatusPending
}

func (p Payment) EffectiveStatus(now time.Time) PaymentStatus {
	return DeriveStatus(p.Status, p.DueDate, now)
}

// PaymentView pairs a stored payment with its effective status at read time.
type PaymentView struct {
	Payment
	EffectiveStatus PaymentStatus
}

func NewPaymentView(p Payment, now time.Time) PaymentView {
	return PaymentView{Payment: p, EffectiveStatus: p.EffectiveStatus(now)}
}

func NewPaymentViews(ps []Payment, now time.Time) []PaymentView {
	views := make([]PaymentView, 0, len(ps))
	for _, p := range ps {
		views = append(views, NewPaymentView(p, now))
	}
	return views
}

// StatusChange is a status write. PaidAt must be set exactly when To is PAID.
// An empty GatewayRef leaves the stored reference untouched.
type StatusChange struct {
	To         PaymentStatus
	PaidAt     *time.Time
	GatewayRef string
}

// PaymentCursor is a position in (due date, id) order for keyset paging.
// The zero value starts before the first payment.
type PaymentCursor struct {
	DueDate time.Time
	ID      string
}

func (p Payment) Cursor() PaymentCursor {
	return PaymentCursor{DueDate: p.DueDate, ID: p.ID}
}

func (c PaymentCursor) IsZero() bool { return c.ID == "" }

// Precedes reports whether p sorts strictly after c.
func (c PaymentCursor) Precedes(p Payment) bool {
	if c.IsZero() {
		return true
	}
	if p.DueDate.Equal(c.DueDate) {
		return p.ID > c.ID
	}
	return p.DueDate.After(c.DueDate)
}
