package request

import (
	"strings"

	"property_manager/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CreatePropertyRequest struct {
	Title       string `json:"title" binding:"required"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postal_code"`
	Description string `json:"description"`
}

func (r CreatePropertyRequest) ToEntity() entities.Property {
	return entities.Property{
		Title:       strings.TrimSpace(r.Title),
		Address:     strings.TrimSpace(r.Address),
		City:        strings.TrimSpace(r.City),
		Province:    strings.TrimSpace(r.Province),
		PostalCode:  strings.TrimSpace(r.PostalCode),
		Description: strings.TrimSpace(r.Description),
	}
}

type CreateUnitRequest struct {
	UnitNumber string          `json:"unit_number" binding:"required"`
	Bedrooms   int             `json:"bedrooms" binding:"gte=0"`
	Bathrooms  int             `json:"bathrooms" binding:"gte=0"`
	RentAmount decimal.Decimal `json:"rent_amount"`
}

func (r CreateUnitRequest) ToEntity() entities.Unit {
	return entities.Unit{
		UnitNumber: strings.TrimSpace(r.UnitNumber),
		Bedrooms:   r.Bedrooms,
		Bathrooms:  r.Bathrooms,
		RentAmount: r.RentAmount,
	}
}
