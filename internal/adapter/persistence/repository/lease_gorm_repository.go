package repository

import (
	"context"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const leaseSelect = "leases.*, properties.landlord_id AS landlord_id, tenants.user_id AS tenant_user_id, " +
	"units.unit_number AS unit_number, properties.title AS property_title"

// leaseRow is a lease joined with its unit, property and tenant.
type leaseRow struct {
	ID            string
	UnitID        string
	TenantID      string
	StartDate     time.Time
	EndDate       *time.Time
	Rent          decimal.Decimal
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LandlordID    string
	TenantUserID  string
	UnitNumber    string
	PropertyTitle string
}

func (r leaseRow) toEntity() entities.Lease {
	return entities.Lease{
		ID:            r.ID,
		UnitID:        r.UnitID,
		TenantID:      r.TenantID,
		StartDate:     r.StartDate.UTC(),
		EndDate:       utcPtr(r.EndDate),
		Rent:          r.Rent,
		Status:        entities.LeaseStatus(r.Status),
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     r.UpdatedAt.UTC(),
		LandlordID:    r.LandlordID,
		TenantUserID:  r.TenantUserID,
		UnitNumber:    r.UnitNumber,
		PropertyTitle: r.PropertyTitle,
	}
}

type LeaseGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ILeaseRepository = (*LeaseGormRepository)(nil)

func NewLeaseGormRepository(db *gorm.DB) *LeaseGormRepository {
	return &LeaseGormRepository{db: db}
}

func (r *LeaseGormRepository) joined(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).
		Table("leases").
		Select(leaseSelect).
		Joins("JOIN units ON units.id = leases.unit_id").
		Joins("JOIN properties ON properties.id = units.property_id").
		Joins("JOIN tenants ON tenants.id = leases.tenant_id")
}

func (r *LeaseGormRepository) Create(ctx context.Context, l entities.Lease) (entities.Lease, error) {
	rec := toLeaseRecord(l)
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return entities.Lease{}, translateError(err)
	}
	return l, nil
}

func (r *LeaseGormRepository) GetByID(ctx context.Context, id string) (entities.Lease, error) {
	var rows []leaseRow
	if err := r.joined(ctx).Where("leases.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return entities.Lease{}, err
	}
	if len(rows) == 0 {
		return entities.Lease{}, nil
	}
	return rows[0].toEntity(), nil
}

func (r *LeaseGormRepository) ListByLandlord(ctx context.Context, landlordID string) ([]entities.Lease, error) {
	return r.list(r.joined(ctx).Where("properties.landlord_id = ?", landlordID))
}

func (r *LeaseGormRepository) ListByTenantUser(ctx context.Context, userID string) ([]entities.Lease, error) {
	return r.list(r.joined(ctx).Where("tenants.user_id = ?", userID))
}

func (r *LeaseGormRepository) list(q *gorm.DB) ([]entities.Lease, error) {
	var rows []leaseRow
	if err := q.Order("leases.start_date DESC, leases.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Lease, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *LeaseGormRepository) HasActiveLease(ctx context.Context, unitID string) (bool, error) {
	var n int64
	err := conn(ctx, r.db).Model(&leaseRecord{}).
		Where("unit_id = ? AND status = ?", unitID, string(entities.LeaseStatusActive)).
		Count(&n).Error
	return n > 0, err
}

func (r *LeaseGormRepository) CountActiveByLandlord(ctx context.Context, landlordID string) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&leaseRecord{}).
		Joins("JOIN units ON units.id = leases.unit_id").
		Joins("JOIN properties ON properties.id = units.property_id").
		Where("properties.landlord_id = ? AND leases.status = ?", landlordID, string(entities.LeaseStatusActive)).
		Count(&n).Error
	return n, err
}

func (r *LeaseGormRepository) UpdateStatus(ctx context.Context, id string, status entities.LeaseStatus) (entities.Lease, error) {
	res := conn(ctx, r.db).Model(&leaseRecord{}).Where("id = ?", id).Updates(map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return entities.Lease{}, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.Lease{}, nil
	}
	return r.GetByID(ctx, id)
}
