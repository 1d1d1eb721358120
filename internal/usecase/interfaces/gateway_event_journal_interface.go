package interfaces

import (
	"context"

	"property_manager/internal/domain/entities"
)

// IGatewayEventJournal records verified processor callbacks.
// Record reports firstSeen=false when the same provider event id was already
// journaled. ListByPayment returns records ordered by ReceivedAt.
type IGatewayEventJournal interface {
	Record(ctx context.Context, rec entities.GatewayEventRecord) (firstSeen bool, err error)
	ListByPayment(ctx context.Context, paymentID string) ([]entities.GatewayEventRecord, error)
}
