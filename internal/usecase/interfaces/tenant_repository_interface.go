package interfaces

import (
	"context"

	"property_manager/internal/domain/entities"
)

// ITenantRepository abstracts persistence for Tenant. Create fails with
// ErrConflict when the user already has a tenant profile.

type ITenantRepository interface {
	Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	GetByUserID(ctx context.Context, userID string) (entities.Tenant, error)
	List(ctx context.Context) ([]entities.Tenant, error)
}
