package interfaces

import (
	"context"

	"property_manager/internal/domain/entities"
)

type IPropertyRepository interface {
	Create(ctx context.Context, p entities.Property) (entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]entities.Property, error)
	CreateUnit(ctx context.Context, u entities.Unit) (entities.Unit, error)
	GetUnit(ctx context.Context, id string) (entities.Unit, error)
	ListUnits(ctx context.Context, propertyID string) ([]entities.Unit, error)
}
