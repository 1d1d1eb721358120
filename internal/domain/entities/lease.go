package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaseStatus string

const (
	LeaseStatusActive     LeaseStatus = "ACTIVE"
	LeaseStatusTerminated LeaseStatus = "TERMINATED"
	LeaseStatusExpired    LeaseStatus = "EXPIRED"
)

// Lease is a tenancy of one unit by one tenant.
//
// At most one lease per unit may be ACTIVE. LandlordID, TenantUserID,
// UnitNumber and PropertyTitle are read-only projections filled by the
// repository from the unit, property and tenant rows.
type Lease struct {
	ID        string
	UnitID    string
	TenantID  string
	StartDate time.Time
	EndDate   *time.Time
	Rent      decimal.Decimal
	Status    LeaseStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	LandlordID    string
	TenantUserID  string
	UnitNumber    string
	PropertyTitle string
}
