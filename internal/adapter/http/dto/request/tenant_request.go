package request

import (
	"strings"

	"property_manager/internal/domain/entities"
)

type CreateTenantRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"omitempty,email"`
	Phone  string `json:"phone"`
}

func (r CreateTenantRequest) ToEntity() entities.Tenant {
	return entities.Tenant{
		UserID: strings.TrimSpace(r.UserID),
		Name:   strings.TrimSpace(r.Name),
		Email:  strings.TrimSpace(r.Email),
		Phone:  strings.TrimSpace(r.Phone),
	}
}
