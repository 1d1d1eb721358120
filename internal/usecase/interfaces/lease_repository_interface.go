package interfaces

import (
	"context"

	"property_manager/internal/domain/entities"
)

// ILeaseRepository abstracts persistence for Lease.
//
// Returned leases carry the joined landlord, tenant user, unit number and
// property title. Create fails with ErrConflict when the unit already has an
// ACTIVE lease.

type ILeaseRepository interface {
	Create(ctx context.Context, l entities.Lease) (entities.Lease, error)
	GetByID(ctx context.Context, id string) (entities.Lease, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]entities.Lease, error)
	ListByTenantUser(ctx context.Context, userID string) ([]entities.Lease, error)
	HasActiveLease(ctx context.Context, unitID string) (bool, error)
	CountActiveByLandlord(ctx context.Context, landlordID string) (int64, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeaseStatus) (entities.Lease, error)
}
