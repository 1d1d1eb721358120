package usecase

import (
	"context"
	"errors"
	"time"

	"property_manager/internal/infrastructure/logging"
)

// ReconcileScheduler runs the reconciliation sweep on a fixed interval,
// independent of request traffic.
type ReconcileScheduler struct {
	uc       IPaymentGatewayUseCase
	interval time.Duration
}

func NewReconcileScheduler(uc IPaymentGatewayUseCase, interval time.Duration) *ReconcileScheduler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ReconcileScheduler{uc: uc, interval: interval}
}

// Run blocks until ctx is cancelled.
func (s *ReconcileScheduler) Run(ctx context.Context) {
	log := logging.FromContext(ctx).WithField("interval", s.interval.String())
	log.Info("[payment][scheduler] reconciliation scheduler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("[payment][scheduler] reconciliation scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *ReconcileScheduler) tick(ctx context.Context) {
	if _, err := s.uc.Reconcile(ctx); err != nil {
		if errors.Is(err, ErrReconcileInProgress) || errors.Is(err, context.Canceled) {
			return
		}
		logging.FromContext(ctx).WithError(err).Error("[payment][scheduler] reconciliation sweep failed")
	}
}
