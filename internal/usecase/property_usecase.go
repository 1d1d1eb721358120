package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/infrastructure/logging"
	"property_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type IPropertyUseCase interface {
	CreateProperty(ctx context.Context, viewer entities.Viewer, p entities.Property) (entities.Property, error)
	ListProperties(ctx context.Context, viewer entities.Viewer) ([]entities.Property, error)
	AddUnit(ctx context.Context, viewer entities.Viewer, propertyID string, unit entities.Unit) (entities.Unit, error)
	ListUnits(ctx context.Context, viewer entities.Viewer, propertyID string) ([]entities.Unit, error)
}

type PropertyUseCase struct {
	repo interfaces.IPropertyRepository
	now  func() time.Time
}

var _ IPropertyUseCase = (*PropertyUseCase)(nil)

func NewPropertyUseCase(repo interfaces.IPropertyRepository) *PropertyUseCase {
	return &PropertyUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *PropertyUseCase) CreateProperty(ctx context.Context, viewer entities.Viewer, p entities.Property) (entities.Property, error) {
	if err := requireRole(viewer, entities.RoleLandlord); err != nil {
		return entities.Property{}, err
	}
	p.Title = strings.TrimSpace(p.Title)
	p.Address = strings.TrimSpace(p.Address)
	if p.Title == "" || p.Address == "" {
		return entities.Property{}, fmt.Errorf("%w: title and address are required", ErrInvalidInput)
	}

	p.ID = uuid.NewString()
	p.LandlordID = viewer.UserID
	p.CreatedAt = u.now()

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Property{}, err
	}
	logging.FromContext(ctx).WithField("property_id", created.ID).Info("[property][usecase] property created")
	return created, nil
}

func (u *PropertyUseCase) ListProperties(ctx context.Context, viewer entities.Viewer) ([]entities.Property, error) {
	if err := requireRole(viewer, entities.RoleLandlord); err != nil {
		return nil, err
	}
	return u.repo.ListByLandlord(ctx, viewer.UserID)
}

func (u *PropertyUseCase) AddUnit(ctx context.Context, viewer entities.Viewer, propertyID string, unit entities.Unit) (entities.Unit, error) {
	property, err := u.ownedProperty(ctx, viewer, propertyID)
	if err != nil {
		return entities.Unit{}, err
	}

	unit.UnitNumber = strings.TrimSpace(unit.UnitNumber)
	if unit.UnitNumber == "" {
		return entities.Unit{}, fmt.Errorf("%w: unit number is required", ErrInvalidInput)
	}
	if unit.Bedrooms < 0 || unit.Bathrooms < 0 {
		return entities.Unit{}, fmt.Errorf("%w: room counts cannot be negative", ErrInvalidInput)
	}
	if unit.RentAmount.IsNegative() {
		return entities.Unit{}, ErrInvalidAmount
	}

	unit.ID = uuid.NewString()
	unit.PropertyID = property.ID
	unit.CreatedAt = u.now()

	created, err := u.repo.CreateUnit(ctx, unit)
	if err != nil {
		return entities.Unit{}, err
	}
	created.LandlordID = property.LandlordID
	created.PropertyTitle = property.Title
	return created, nil
}

func (u *PropertyUseCase) ListUnits(ctx context.Context, viewer entities.Viewer, propertyID string) ([]entities.Unit, error) {
	property, err := u.ownedProperty(ctx, viewer, propertyID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListUnits(ctx, property.ID)
}

func (u *PropertyUseCase) ownedProperty(ctx context.Context, viewer entities.Viewer, propertyID string) (entities.Property, error) {
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return entities.Property{}, fmt.Errorf("%w: property id is required", ErrInvalidInput)
	}
	property, err := u.repo.GetByID(ctx, propertyID)
	if err != nil {
		return entities.Property{}, err
	}
	if property.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	if err := authorizePropertyWrite(viewer, property.LandlordID); err != nil {
		return entities.Property{}, err
	}
	return property, nil
}
