package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC3339")

const DateLayout = "2006-01-02"

// CreatePaymentRequest adds a one-off installment to a lease. Amount accepts
// a JSON number or a decimal string.
type CreatePaymentRequest struct {
	LeaseID string          `json:"lease_id" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"due_date" binding:"required"`
}

func (r CreatePaymentRequest) ResolveDueDate() (time.Time, error) {
	return ParseDate(r.DueDate)
}

type CheckoutRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}

// OverridePaymentRequest sets the stored status. Only PENDING, PAID and
// FAILED are accepted.
type OverridePaymentRequest struct {
	Status string `json:"status" binding:"required"`
}

// ParseDate accepts a calendar date or a full RFC3339 timestamp and returns
// it in UTC.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(DateLayout, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}
