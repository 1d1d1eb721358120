package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Property struct {
	ID          string
	LandlordID  string
	Title       string
	Address     string
	City        string
	Province    string
	PostalCode  string
	Description string
	CreatedAt   time.Time
}

// Unit belongs to a property. LandlordID is the owning property's landlord.
type Unit struct {
	ID         string
	PropertyID string
	UnitNumber string
	Bedrooms   int
	Bathrooms  int
	RentAmount decimal.Decimal
	CreatedAt  time.Time

	LandlordID    string
	PropertyTitle string
}
