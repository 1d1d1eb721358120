package repository

import (
	"context"
	"errors"

	"property_manager/internal/domain/entities"
	"property_manager/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const unitSelect = "units.*, properties.landlord_id AS landlord_id, properties.title AS property_title"

type unitRow struct {
	unitRecord
	LandlordID    string
	PropertyTitle string
}

func (r unitRow) toEntity() entities.Unit {
	return entities.Unit{
		ID:            r.ID,
		PropertyID:    r.PropertyID,
		UnitNumber:    r.UnitNumber,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		RentAmount:    r.RentAmount,
		CreatedAt:     r.CreatedAt.UTC(),
		LandlordID:    r.LandlordID,
		PropertyTitle: r.PropertyTitle,
	}
}

type PropertyGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPropertyRepository = (*PropertyGormRepository)(nil)

func NewPropertyGormRepository(db *gorm.DB) *PropertyGormRepository {
	return &PropertyGormRepository{db: db}
}

func (r *PropertyGormRepository) Create(ctx context.Context, p entities.Property) (entities.Property, error) {
	rec := toPropertyRecord(p)
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return entities.Property{}, translateError(err)
	}
	return fromPropertyRecord(rec), nil
}

func (r *PropertyGormRepository) GetByID(ctx context.Context, id string) (entities.Property, error) {
	var rec propertyRecord
	err := conn(ctx, r.db).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Property{}, nil
	}
	if err != nil {
		return entities.Property{}, err
	}
	return fromPropertyRecord(rec), nil
}

func (r *PropertyGormRepository) ListByLandlord(ctx context.Context, landlordID string) ([]entities.Property, error) {
	var recs []propertyRecord
	if err := conn(ctx, r.db).Where("landlord_id = ?", landlordID).Order("created_at DESC, id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Property, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromPropertyRecord(rec))
	}
	return out, nil
}

func (r *PropertyGormRepository) CreateUnit(ctx context.Context, u entities.Unit) (entities.Unit, error) {
	rec := toUnitRecord(u)
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return entities.Unit{}, translateError(err)
	}
	return u, nil
}

func (r *PropertyGormRepository) units(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).
		Table("units").
		Select(unitSelect).
		Joins("JOIN properties ON properties.id = units.property_id")
}

func (r *PropertyGormRepository) GetUnit(ctx context.Context, id string) (entities.Unit, error) {
	var rows []unitRow
	if err := r.units(ctx).Where("units.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return entities.Unit{}, err
	}
	if len(rows) == 0 {
		return entities.Unit{}, nil
	}
	return rows[0].toEntity(), nil
}

func (r *PropertyGormRepository) ListUnits(ctx context.Context, propertyID string) ([]entities.Unit, error) {
	var rows []unitRow
	if err := r.units(ctx).Where("units.property_id = ?", propertyID).Order("units.unit_number ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Unit, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}
