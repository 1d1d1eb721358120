package response

import (
	"time"

	"property_manager/internal/domain/entities"
)

type PropertyResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Address     string    `json:"address"`
	City        string    `json:"city,omitempty"`
	Province    string    `json:"province,omitempty"`
	PostalCode  string    `json:"postal_code,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromProperty(p entities.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Address:     p.Address,
		City:        p.City,
		Province:    p.Province,
		PostalCode:  p.PostalCode,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func FromProperties(ps []entities.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProperty(p))
	}
	return out
}

type UnitResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	UnitNumber string    `json:"unit_number"`
	Bedrooms   int       `json:"bedrooms"`
	Bathrooms  int       `json:"bathrooms"`
	RentAmount string    `json:"rent_amount"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromUnit(u entities.Unit) UnitResponse {
	return UnitResponse{
		ID:         u.ID,
		PropertyID: u.PropertyID,
		UnitNumber: u.UnitNumber,
		Bedrooms:   u.Bedrooms,
		Bathrooms:  u.Bathrooms,
		RentAmount: u.RentAmount.StringFixed(2),
		CreatedAt:  u.CreatedAt,
	}
}

func FromUnits(us []entities.Unit) []UnitResponse {
	out := make([]UnitResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromUnit(u))
	}
	return out
}

type TenantResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTenant(t entities.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Name:      t.Name,
		Email:     t.Email,
		Phone:     t.Phone,
		CreatedAt: t.CreatedAt,
	}
}

func FromTenants(ts []entities.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTenant(t))
	}
	return out
}
