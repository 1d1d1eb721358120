package response

import (
	"time"

	"property_manager/internal/domain/entities"
)

type LeaseResponse struct {
	ID            string    `json:"id"`
	UnitID        string    `json:"unit_id"`
	TenantID      string    `json:"tenant_id"`
	StartDate     string    `json:"start_date"`
	EndDate       *string   `json:"end_date"`
	Rent          string    `json:"rent"`
	Status        string    `json:"status"`
	UnitNumber    string    `json:"unit_number,omitempty"`
	PropertyTitle string    `json:"property_title,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateLeaseResponse carries the number of installments generated with the lease.
type CreateLeaseResponse struct {
	Lease           LeaseResponse `json:"lease"`
	PaymentsCreated int           `json:"payments_created"`
}

func FromLease(l entities.Lease) LeaseResponse {
	var end *string
	if l.EndDate != nil {
		s := l.EndDate.UTC().Format(dateLayout)
		end = &s
	}
	return LeaseResponse{
		ID:            l.ID,
		UnitID:        l.UnitID,
		TenantID:      l.TenantID,
		StartDate:     l.StartDate.UTC().Format(dateLayout),
		EndDate:       end,
		Rent:          l.Rent.StringFixed(2),
		Status:        string(l.Status),
		UnitNumber:    l.UnitNumber,
		PropertyTitle: l.PropertyTitle,
		CreatedAt:     l.CreatedAt,
	}
}

func FromLeases(ls []entities.Lease) []LeaseResponse {
	out := make([]LeaseResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLease(l))
	}
	return out
}
