package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/infrastructure/logging"
	"property_manager/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// IPaymentGatewayUseCase bridges the ledger and the external processor.
//
// Processor concepts stay behind interfaces.IPaymentGateway; the ledger only
// ever sees MarkPaid / MarkFailed.

type IPaymentGatewayUseCase interface {
	InitiateCheckout(ctx context.Context, viewer entities.Viewer, paymentID string) (entities.CheckoutSession, error)
	HandleCallback(ctx context.Context, cb entities.GatewayCallback) (entities.CallbackResult, error)
	Reconcile(ctx context.Context) (entities.ReconcileResult, error)
	Verify(ctx context.Context, viewer entities.Viewer, paymentID string) (entities.PaymentView, error)
	ListEvents(ctx context.Context, viewer entities.Viewer, paymentID string) ([]entities.GatewayEventRecord, error)
}

type ReconcileOptions struct {
	// Timeout bounds each processor call, not the sweep.
	Timeout     time.Duration
	Concurrency int
	BatchSize   int
	LockTTL     time.Duration
}

func DefaultReconcileOptions() ReconcileOptions {
	return ReconcileOptions{
		Timeout:     15 * time.Second,
		Concurrency: 4,
		BatchSize:   500,
		LockTTL:     4 * time.Minute,
	}
}

type PaymentGatewayUseCase struct {
	ledger   IPaymentLedgerUseCase
	payments interfaces.IPaymentRepository
	leases   interfaces.ILeaseRepository
	gateway  interfaces.IPaymentGateway
	journal  interfaces.IGatewayEventJournal
	lock     interfaces.ISweepLock
	currency string
	opts     ReconcileOptions
	sweeps   singleflight.Group
	now      func() time.Time
}

var _ IPaymentGatewayUseCase = (*PaymentGatewayUseCase)(nil)

func NewPaymentGatewayUseCase(
	ledger IPaymentLedgerUseCase,
	payments interfaces.IPaymentRepository,
	leases interfaces.ILeaseRepository,
	gateway interfaces.IPaymentGateway,
	journal interfaces.IGatewayEventJournal,
	lock interfaces.ISweepLock,
	currency string,
	opts ReconcileOptions,
) *PaymentGatewayUseCase {
	def := DefaultReconcileOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = def.Concurrency
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = def.BatchSize
	}
	if opts.LockTTL <= 0 {
		opts.LockTTL = def.LockTTL
	}
	if currency == "" {
		currency = "usd"
	}
	return &PaymentGatewayUseCase{
		ledger:   ledger,
		payments: payments,
		leases:   leases,
		gateway:  gateway,
		journal:  journal,
		lock:     lock,
		currency: strings.ToLower(currency),
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentGatewayUseCase) InitiateCheckout(ctx context.Context, viewer entities.Viewer, paymentID string) (entities.CheckoutSession, error) {
	log := logging.FromContext(ctx).WithFields(logrus.Fields{"payment_id": paymentID, "user_id": viewer.UserID})
	log.Info("[payment][gateway] checkout start")

	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.CheckoutSession{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		log.Error("[payment][gateway] gateway not configured")
		return entities.CheckoutSession{}, ErrGatewayNotConfigured
	}

	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		log.WithError(err).Error("[payment][gateway] failed loading payment")
		return entities.CheckoutSession{}, err
	}
	if p.ID == "" {
		log.Warn("[payment][gateway] payment not found")
		return entities.CheckoutSession{}, ErrPaymentNotFound
	}

	lease, err := u.leases.GetByID(ctx, p.LeaseID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if lease.ID == "" {
		log.WithField("lease_id", p.LeaseID).Warn("[payment][gateway] payment references a missing lease")
		return entities.CheckoutSession{}, ErrLeaseNotFound
	}
	if err := authorizeLeaseRead(viewer, lease); err != nil {
		log.Warn("[payment][gateway] checkout denied")
		return entities.CheckoutSession{}, err
	}
	if p.Status.IsTerminal() {
		log.WithField("stored_status", p.Status).Warn("[payment][gateway] checkout on settled payment")
		return entities.CheckoutSession{}, fmt.Errorf("%w: payment is already %s", ErrInvalidTransition, p.Status)
	}

	req := entities.CheckoutRequest{
		PaymentID:          p.ID,
		LeaseID:            p.LeaseID,
		Amount:             p.Amount,
		Currency:           u.currency,
		ProductName:        strings.TrimSpace("Rent Payment - " + lease.PropertyTitle),
		ProductDescription: fmt.Sprintf("Unit %s - Due %s", lease.UnitNumber, p.DueDate.UTC().Format("2006-01-02")),
	}

	session, err := u.gateway.CreateCheckout(ctx, req)
	if err != nil {
		log.WithError(err).Error("[payment][gateway] processor checkout failed")
		return entities.CheckoutSession{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	ref := session.GatewayRef
	if ref == "" {
		ref = session.SessionID
	}
	if _, err := u.payments.SetGatewayRef(ctx, p.ID, ref); err != nil {
		log.WithError(err).Error("[payment][gateway] failed storing gateway reference")
		return entities.CheckoutSession{}, err
	}
	session.GatewayRef = ref

	log.WithFields(logrus.Fields{"provider": u.gateway.Name(), "gateway_ref": ref}).Info("[payment][gateway] checkout success")
	return session, nil
}

func (u *PaymentGatewayUseCase) HandleCallback(ctx context.Context, cb entities.GatewayCallback) (entities.CallbackResult, error) {
	log := logging.FromContext(ctx).WithField("payload_len", len(cb.Payload))
	if u.gateway == nil {
		log.Error("[payment][webhook] gateway not configured")
		return entities.CallbackResult{}, ErrGatewayNotConfigured
	}

	event, err := u.gateway.ParseCallback(ctx, cb)
	if err != nil {
		if errors.Is(err, interfaces.ErrInvalidCallbackSignature) {
			log.WithError(err).Warn("[payment][webhook] signature verification failed")
			return entities.CallbackResult{}, ErrInvalidSignature
		}
		log.WithError(err).Error("[payment][webhook] callback could not be resolved")
		return entities.CallbackResult{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	log = log.WithFields(logrus.Fields{
		"provider":   event.Provider,
		"event_id":   event.EventID,
		"event_type": event.EventType,
		"payment_id": event.PaymentID,
		"outcome":    event.Outcome,
	})
	if event.PaymentID == "" {
		event.Outcome = entities.GatewayOutcomeIgnored
	}
	result := entities.CallbackResult{EventID: event.EventID, PaymentID: event.PaymentID, Outcome: event.Outcome}

	if u.journal != nil {
		firstSeen, jErr := u.journal.Record(ctx, entities.GatewayEventRecord{
			Provider:   event.Provider,
			EventID:    event.EventID,
			EventType:  event.EventType,
			PaymentID:  event.PaymentID,
			Outcome:    event.Outcome,
			Payload:    cb.Payload,
			ReceivedAt: u.now(),
		})
		if jErr != nil {
			log.WithError(jErr).Warn("[payment][webhook] journal write failed")
		}
		result.Duplicate = jErr == nil && !firstSeen
	}

	if event.PaymentID == "" {
		log.Warn("[payment][webhook] event without payment metadata; acknowledged and discarded")
		return result, nil
	}

	var changed bool
	switch event.Outcome {
	case entities.GatewayOutcomeSucceeded:
		_, changed, err = u.ledger.MarkPaid(ctx, event.PaymentID, u.now())
	case entities.GatewayOutcomeFailed:
		_, changed, err = u.ledger.MarkFailed(ctx, event.PaymentID)
	default:
		log.Info("[payment][webhook] event ignored")
		return result, nil
	}
	if err != nil {
		if errors.Is(err, ErrPaymentNotFound) || errors.Is(err, ErrInvalidPaymentID) {
			log.Warn("[payment][webhook] event references an unknown payment; acknowledged")
			return result, nil
		}
		log.WithError(err).Error("[payment][webhook] ledger transition failed")
		return result, err
	}

	result.Applied = changed
	log.WithFields(logrus.Fields{"applied": changed, "duplicate": result.Duplicate}).Info("[payment][webhook] event processed")
	return result, nil
}

// Reconcile re-queries the processor for every payment still PENDING with a
// gateway reference. Overlapping calls in this process share one sweep; the
// sweep lock keeps other instances out. The shared sweep is detached from the
// caller's cancellation and bounded by the lock TTL instead, so a caller that
// goes away stops waiting without aborting the sweep for the others.
func (u *PaymentGatewayUseCase) Reconcile(ctx context.Context) (entities.ReconcileResult, error) {
	ch := u.sweeps.DoChan("reconcile", func() (any, error) {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.opts.LockTTL)
		defer cancel()
		return u.sweep(sctx)
	})

	select {
	case <-ctx.Done():
		logging.FromContext(ctx).Debug("[payment][reconcile] caller left; sweep continues")
		return entities.ReconcileResult{}, ctx.Err()
	case r := <-ch:
		if r.Shared {
			logging.FromContext(ctx).Debug("[payment][reconcile] joined an in-flight sweep")
		}
		if r.Err != nil {
			return entities.ReconcileResult{}, r.Err
		}
		return r.Val.(entities.ReconcileResult), nil
	}
}

func (u *PaymentGatewayUseCase) sweep(ctx context.Context) (entities.ReconcileResult, error) {
	log := logging.FromContext(ctx)
	if u.gateway == nil {
		return entities.ReconcileResult{}, ErrGatewayNotConfigured
	}

	if u.lock != nil {
		release, acquired, err := u.lock.TryLock(ctx, u.opts.LockTTL)
		switch {
		case err != nil:
			log.WithError(err).Warn("[payment][reconcile] sweep lock unavailable; running unlocked")
		case !acquired:
			log.Info("[payment][reconcile] sweep already running on another instance")
			return entities.ReconcileResult{}, ErrReconcileInProgress
		default:
			defer release()
		}
	}

	var (
		mu     sync.Mutex
		result entities.ReconcileResult
		cursor entities.PaymentCursor
	)
	for {
		page, err := u.payments.ListAwaitingGateway(ctx, cursor, u.opts.BatchSize)
		if err != nil {
			log.WithError(err).WithField("checked", result.Checked).Error("[payment][reconcile] failed listing pending payments")
			return entities.ReconcileResult{}, err
		}
		if len(page) == 0 {
			break
		}
		result.Checked += len(page)

		var g errgroup.Group
		g.SetLimit(u.opts.Concurrency)
		for _, p := range page {
			g.Go(func() error {
				changed, err := u.reconcileOne(ctx, p)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err != nil:
					result.Failed++
					log.WithError(err).WithField("payment_id", p.ID).Warn("[payment][reconcile] payment skipped after error")
				case changed:
					result.Updated++
				default:
					result.Skipped++
				}
				// per-payment errors are counted, never returned
				return nil
			})
		}
		_ = g.Wait()

		if len(page) < u.opts.BatchSize {
			break
		}
		cursor = page[len(page)-1].Cursor()
	}

	log.WithFields(logrus.Fields{
		"checked": result.Checked,
		"updated": result.Updated,
		"failed":  result.Failed,
		"skipped": result.Skipped,
	}).Info("[payment][reconcile] sweep finished")
	return result, nil
}

func (u *PaymentGatewayUseCase) reconcileOne(ctx context.Context, p entities.Payment) (bool, error) {
	callCtx, cancel := context.WithTimeout(ctx, u.opts.Timeout)
	defer cancel()

	status, err := u.gateway.FetchStatus(callCtx, p)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	var changed bool
	switch status.Outcome {
	case entities.GatewayOutcomeSucceeded:
		_, changed, err = u.ledger.MarkPaid(ctx, p.ID, u.now())
	case entities.GatewayOutcomeFailed:
		_, changed, err = u.ledger.MarkFailed(ctx, p.ID)
	default:
		return false, nil
	}
	return changed, err
}

func (u *PaymentGatewayUseCase) Verify(ctx context.Context, viewer entities.Viewer, paymentID string) (entities.PaymentView, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentView{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return entities.PaymentView{}, ErrGatewayNotConfigured
	}

	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.PaymentView{}, err
	}
	if p.ID == "" {
		return entities.PaymentView{}, ErrPaymentNotFound
	}
	lease, err := u.leases.GetByID(ctx, p.LeaseID)
	if err != nil {
		return entities.PaymentView{}, err
	}
	if lease.ID == "" {
		return entities.PaymentView{}, ErrLeaseNotFound
	}
	if err := authorizeLeaseRead(viewer, lease); err != nil {
		return entities.PaymentView{}, err
	}

	if p.GatewayRef == "" || p.Status.IsTerminal() {
		return entities.NewPaymentView(p, u.now()), nil
	}

	changed, err := u.reconcileOne(ctx, p)
	if err != nil {
		logging.FromContext(ctx).WithError(err).WithField("payment_id", p.ID).Warn("[payment][gateway] verify failed")
		return entities.PaymentView{}, err
	}
	if changed {
		if p, err = u.payments.GetByID(ctx, p.ID); err != nil {
			return entities.PaymentView{}, err
		}
	}
	return entities.NewPaymentView(p, u.now()), nil
}

// ListEvents returns the journaled processor callbacks of one payment,
// oldest first. Reserved to the owning landlord and admins.
func (u *PaymentGatewayUseCase) ListEvents(ctx context.Context, viewer entities.Viewer, paymentID string) ([]entities.GatewayEventRecord, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}

	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, ErrPaymentNotFound
	}
	lease, err := u.leases.GetByID(ctx, p.LeaseID)
	if err != nil {
		return nil, err
	}
	if lease.ID == "" && !viewer.IsAdmin() {
		return nil, ErrAccessDenied
	}
	if lease.ID != "" {
		if err := authorizeLeaseWrite(viewer, lease); err != nil {
			return nil, err
		}
	}

	if u.journal == nil {
		return []entities.GatewayEventRecord{}, nil
	}
	return u.journal.ListByPayment(ctx, p.ID)
}
