package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ITenantUseCase manages tenant profiles. Landlords register tenants by
// the tenant's user id; a tenant may read only their own profile.

type ITenantUseCase interface {
	CreateTenant(ctx context.Context, viewer entities.Viewer, t entities.Tenant) (entities.Tenant, error)
	GetTenant(ctx context.Context, viewer entities.Viewer, id string) (entities.Tenant, error)
	ListTenants(ctx context.Context, viewer entities.Viewer) ([]entities.Tenant, error)
}

type TenantUseCase struct {
	repo interfaces.ITenantRepository
	now  func() time.Time
}

var _ ITenantUseCase = (*TenantUseCase)(nil)

func NewTenantUseCase(repo interfaces.ITenantRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *TenantUseCase) CreateTenant(ctx context.Context, viewer entities.Viewer, t entities.Tenant) (entities.Tenant, error) {
	if err := requireRole(viewer, entities.RoleLandlord, entities.RoleAdmin); err != nil {
		return entities.Tenant{}, err
	}
	t.UserID = strings.TrimSpace(t.UserID)
	t.Name = strings.TrimSpace(t.Name)
	if t.UserID == "" || t.Name == "" {
		return entities.Tenant{}, fmt.Errorf("%w: user id and name are required", ErrInvalidInput)
	}

	existing, err := u.repo.GetByUserID(ctx, t.UserID)
	if err != nil {
		return entities.Tenant{}, err
	}
	if existing.ID != "" {
		return entities.Tenant{}, ErrTenantExists
	}

	t.ID = uuid.NewString()
	t.CreatedAt = u.now()
	created, err := u.repo.Create(ctx, t)
	if errors.Is(err, interfaces.ErrConflict) {
		return entities.Tenant{}, ErrTenantExists
	}
	return created, err
}

func (u *TenantUseCase) GetTenant(ctx context.Context, viewer entities.Viewer, id string) (entities.Tenant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Tenant{}, fmt.Errorf("%w: tenant id is required", ErrInvalidInput)
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	if t.ID == "" {
		return entities.Tenant{}, ErrTenantNotFound
	}
	if viewer.IsTenant() && viewer.UserID != t.UserID {
		return entities.Tenant{}, ErrAccessDenied
	}
	if err := requireRole(viewer, entities.RoleLandlord, entities.RoleAdmin, entities.RoleTenant); err != nil {
		return entities.Tenant{}, err
	}
	return t, nil
}

func (u *TenantUseCase) ListTenants(ctx context.Context, viewer entities.Viewer) ([]entities.Tenant, error) {
	if err := requireRole(viewer, entities.RoleLandlord, entities.RoleAdmin); err != nil {
		return nil, err
	}
	return u.repo.List(ctx)
}
