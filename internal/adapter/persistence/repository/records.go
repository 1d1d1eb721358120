package repository

import (
	"time"

	"property_manager/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type propertyRecord struct {
	ID          string `gorm:"primaryKey;size:36"`
	LandlordID  string `gorm:"size:64;not null;index"`
	Title       string `gorm:"size:255;not null"`
	Address     string `gorm:"size:255;not null"`
	City        string `gorm:"size:120"`
	Province    string `gorm:"size:120"`
	PostalCode  string `gorm:"size:20"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (propertyRecord) TableName() string { return "properties" }

type unitRecord struct {
	ID         string          `gorm:"primaryKey;size:36"`
	PropertyID string          `gorm:"size:36;not null;uniqueIndex:idx_units_property_number"`
	UnitNumber string          `gorm:"size:32;not null;uniqueIndex:idx_units_property_number"`
	Bedrooms   int             `gorm:"not null;default:0"`
	Bathrooms  int             `gorm:"not null;default:0"`
	RentAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt  time.Time
}

func (unitRecord) TableName() string { return "units" }

type tenantRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:64;not null;uniqueIndex"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:40"`
	CreatedAt time.Time
}

func (tenantRecord) TableName() string { return "tenants" }

// leaseRecord enforces one ACTIVE lease per unit with a partial unique index.
type leaseRecord struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UnitID    string    `gorm:"size:36;not null;index;uniqueIndex:idx_leases_one_active_per_unit,where:status = 'ACTIVE'"`
	TenantID  string    `gorm:"size:36;not null;index"`
	StartDate time.Time `gorm:"not null"`
	EndDate   *time.Time
	Rent      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status    string          `gorm:"size:16;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (leaseRecord) TableName() string { return "leases" }

type paymentRecord struct {
	ID         string          `gorm:"primaryKey;size:36"`
	LeaseID    string          `gorm:"size:36;not null;index:idx_payments_lease_due,priority:1"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DueDate    time.Time       `gorm:"not null;index:idx_payments_lease_due,priority:2"`
	PaidAt     *time.Time
	Status     string `gorm:"size:16;not null;index:idx_payments_status_ref,priority:1"`
	GatewayRef string `gorm:"size:255;not null;default:'';index:idx_payments_status_ref,priority:2"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (paymentRecord) TableName() string { return "payments" }

type gatewayEventRecord struct {
	Provider   string `gorm:"primaryKey;size:32"`
	EventID    string `gorm:"primaryKey;size:255"`
	EventType  string `gorm:"size:128;not null"`
	PaymentID  string `gorm:"size:36;index:idx_gateway_events_payment,priority:1"`
	Outcome    string `gorm:"size:16;not null"`
	Payload    []byte
	ReceivedAt time.Time `gorm:"not null;index:idx_gateway_events_payment,priority:2"`
}

func (gatewayEventRecord) TableName() string { return "gateway_events" }

func toPropertyRecord(p entities.Property) propertyRecord {
	return propertyRecord{
		ID:          p.ID,
		LandlordID:  p.LandlordID,
		Title:       p.Title,
		Address:     p.Address,
		City:        p.City,
		Province:    p.Province,
		PostalCode:  p.PostalCode,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.UTC(),
	}
}

func fromPropertyRecord(r propertyRecord) entities.Property {
	return entities.Property{
		ID:          r.ID,
		LandlordID:  r.LandlordID,
		Title:       r.Title,
		Address:     r.Address,
		City:        r.City,
		Province:    r.Province,
		PostalCode:  r.PostalCode,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

func toUnitRecord(u entities.Unit) unitRecord {
	return unitRecord{
		ID:         u.ID,
		PropertyID: u.PropertyID,
		UnitNumber: u.UnitNumber,
		Bedrooms:   u.Bedrooms,
		Bathrooms:  u.Bathrooms,
		RentAmount: u.RentAmount,
		CreatedAt:  u.CreatedAt.UTC(),
	}
}

func toTenantRecord(t entities.Tenant) tenantRecord {
	return tenantRecord{
		ID:        t.ID,
		UserID:    t.UserID,
		Name:      t.Name,
		Email:     t.Email,
		Phone:     t.Phone,
		CreatedAt: t.CreatedAt.UTC(),
	}
}

func fromTenantRecord(r tenantRecord) entities.Tenant {
	return entities.Tenant{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func toLeaseRecord(l entities.Lease) leaseRecord {
	return leaseRecord{
		ID:        l.ID,
		UnitID:    l.UnitID,
		TenantID:  l.TenantID,
		StartDate: l.StartDate.UTC(),
		EndDate:   utcPtr(l.EndDate),
		Rent:      l.Rent,
		Status:    string(l.Status),
		CreatedAt: l.CreatedAt.UTC(),
		UpdatedAt: l.UpdatedAt.UTC(),
	}
}

func toPaymentRecord(p entities.Payment) paymentRecord {
	return paymentRecord{
		ID:         p.ID,
		LeaseID:    p.LeaseID,
		Amount:     p.Amount,
		DueDate:    p.DueDate.UTC(),
		PaidAt:     utcPtr(p.PaidAt),
		Status:     string(p.Status),
		GatewayRef: p.GatewayRef,
		CreatedAt:  p.CreatedAt.UTC(),
		UpdatedAt:  p.UpdatedAt.UTC(),
	}
}

func fromPaymentRecord(r paymentRecord) entities.Payment {
	return entities.Payment{
		ID:         r.ID,
		LeaseID:    r.LeaseID,
		Amount:     r.Amount,
		DueDate:    r.DueDate.UTC(),
		PaidAt:     utcPtr(r.PaidAt),
		Status:     entities.PaymentStatus(r.Status),
		GatewayRef: r.GatewayRef,
		CreatedAt:  r.CreatedAt.UTC(),
		UpdatedAt:  r.UpdatedAt.UTC(),
	}
}

func fromPaymentRecords(rs []paymentRecord) []entities.Payment {
	out := make([]entities.Payment, 0, len(rs))
	for _, r := range rs {
		out = append(out, fromPaymentRecord(r))
	}
	return out
}

func toGatewayEventRecord(e entities.GatewayEventRecord) gatewayEventRecord {
	return gatewayEventRecord{
		Provider:   e.Provider,
		EventID:    e.EventID,
		EventType:  e.EventType,
		PaymentID:  e.PaymentID,
		Outcome:    string(e.Outcome),
		Payload:    e.Payload,
		ReceivedAt: e.ReceivedAt.UTC(),
	}
}

func fromGatewayEventRecord(r gatewayEventRecord) entities.GatewayEventRecord {
	return entities.GatewayEventRecord{
		Provider:   r.Provider,
		EventID:    r.EventID,
		EventType:  r.EventType,
		PaymentID:  r.PaymentID,
		Outcome:    entities.GatewayOutcome(r.Outcome),
		Payload:    r.Payload,
		ReceivedAt: r.ReceivedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
