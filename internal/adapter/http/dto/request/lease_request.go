package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrEndBeforeStart = errors.New("end_date is before start_date")

// CreateLeaseRequest leases a unit to a tenant. Rent falls back to the
// unit's rent amount when omitted; EndDate is open-ended when omitted.
type CreateLeaseRequest struct {
	UnitID    string           `json:"unit_id" binding:"required"`
	TenantID  string           `json:"tenant_id" binding:"required"`
	StartDate string           `json:"start_date" binding:"required"`
	EndDate   string           `json:"end_date"`
	Rent      *decimal.Decimal `json:"rent"`
}

// ResolveDates parses start and end. A blank end date yields nil.
func (r CreateLeaseRequest) ResolveDates() (time.Time, *time.Time, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return time.Time{}, nil, err
	}
	if strings.TrimSpace(r.EndDate) == "" {
		return start, nil, nil
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return time.Time{}, nil, err
	}
	if end.Before(start) {
		return time.Time{}, nil, ErrEndBeforeStart
	}
	return start, &end, nil
}
