package interfaces

import (
	"context"
	"io"
	"time"

	"property_manager/internal/domain/entities"
)

// ISettlementNotifier is told when a payment leaves PENDING through the
// gateway path. It is called once per actual state change.
type ISettlementNotifier interface {
	PaymentSettled(ctx context.Context, p entities.Payment) error
}

// ISweepLock guards the reconciliation sweep across instances.
// TryLock returns acquired=false without error when another holder owns it.
type ISweepLock interface {
	TryLock(ctx context.Context, ttl time.Duration) (release func(), acquired bool, err error)
}

// IReportExporter renders landlord payment reports.
type IReportExporter interface {
	WritePaymentsReport(w io.Writer, payments []entities.PaymentView, series []entities.MonthlyBucket) error
}
