package interfaces

import (
	"context"

	"property_manager/internal/domain/entities"
)

// IPaymentRepository abstracts ledger persistence for Payment.
//
// GetByID returns a zero-value Payment (empty ID) when nothing matches.
// CompareAndSetStatus is the only way a status is written: the row changes
// only while its stored status still equals from. ListAwaitingGateway pages in
// (due date, id) order, returning rows strictly after the cursor.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	CreateBatch(ctx context.Context, ps []entities.Payment) (int, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	Delete(ctx context.Context, id string) (bool, error)
	SetGatewayRef(ctx context.Context, id string, ref string) (entities.Payment, error)
	CompareAndSetStatus(ctx context.Context, id string, from entities.PaymentStatus, change entities.StatusChange) (bool, error)
	ListByLease(ctx context.Context, leaseID string) ([]entities.Payment, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]entities.Payment, error)
	ListByTenantUser(ctx context.Context, userID string) ([]entities.Payment, error)
	ListAwaitingGateway(ctx context.Context, after entities.PaymentCursor, limit int) ([]entities.Payment, error)
}
