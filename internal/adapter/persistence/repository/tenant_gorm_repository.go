package repository

import (
	"context"
	"errors"

	"property_manager/internal/domain/entities"
	"property_manager/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type TenantGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ITenantRepository = (*TenantGormRepository)(nil)

func NewTenantGormRepository(db *gorm.DB) *TenantGormRepository {
	return &TenantGormRepository{db: db}
}

func (r *TenantGormRepository) Create(ctx context.Context, t entities.Tenant) (entities.Tenant, error) {
	rec := toTenantRecord(t)
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return entities.Tenant{}, translateError(err)
	}
	return fromTenantRecord(rec), nil
}

func (r *TenantGormRepository) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *TenantGormRepository) GetByUserID(ctx context.Context, userID string) (entities.Tenant, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *TenantGormRepository) first(ctx context.Context, query string, arg string) (entities.Tenant, error) {
	var rec tenantRecord
	err := conn(ctx, r.db).Where(query, arg).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Tenant{}, nil
	}
	if err != nil {
		return entities.Tenant{}, err
	}
	return fromTenantRecord(rec), nil
}

func (r *TenantGormRepository) List(ctx context.Context) ([]entities.Tenant, error) {
	var recs []tenantRecord
	if err := conn(ctx, r.db).Order("name ASC, id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Tenant, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromTenantRecord(rec))
	}
	return out, nil
}
