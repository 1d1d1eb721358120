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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// IPaymentLedgerUseCase owns payment records and their status lifecycle.
//
// MarkPaid and MarkFailed are the gateway path: they only move a PENDING
// payment and are a no-op success on a terminal one. Override is the
// administrative path and is the only way out of a terminal status.

type IPaymentLedgerUseCase interface {
	CreatePayment(ctx context.Context, viewer entities.Viewer, leaseID string, amount decimal.Decimal, dueDate time.Time) (entities.Payment, error)
	GenerateScheduleForLease(ctx context.Context, leaseID string, startDate time.Time, endDate *time.Time, monthlyRent decimal.Decimal) (int, error)
	MarkPaid(ctx context.Context, paymentID string, paidAt time.Time) (entities.Payment, bool, error)
	MarkFailed(ctx context.Context, paymentID string) (entities.Payment, bool, error)
	Override(ctx context.Context, viewer entities.Viewer, paymentID string, status entities.PaymentStatus) (entities.Payment, error)
	GetPayment(ctx context.Context, viewer entities.Viewer, paymentID string) (entities.PaymentView, error)
	DeletePayment(ctx context.Context, viewer entities.Viewer, paymentID string) error
	ListByLease(ctx context.Context, viewer entities.Viewer, leaseID string) ([]entities.PaymentView, error)
	ListByLandlord(ctx context.Context, landlordID string) ([]entities.PaymentView, error)
	ListByTenant(ctx context.Context, tenantUserID string) ([]entities.PaymentView, error)
}

type PaymentLedgerUseCase struct {
	repo      interfaces.IPaymentRepository
	leaseRepo interfaces.ILeaseRepository
	notifier  interfaces.ISettlementNotifier
	now       func() time.Time
}

var _ IPaymentLedgerUseCase = (*PaymentLedgerUseCase)(nil)

func NewPaymentLedgerUseCase(repo interfaces.IPaymentRepository, leaseRepo interfaces.ILeaseRepository, notifier interfaces.ISettlementNotifier) *PaymentLedgerUseCase {
	return &PaymentLedgerUseCase{
		repo:      repo,
		leaseRepo: leaseRepo,
		notifier:  notifier,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentLedgerUseCase) CreatePayment(ctx context.Context, viewer entities.Viewer, leaseID string, amount decimal.Decimal, dueDate time.Time) (entities.Payment, error) {
	log := logging.FromContext(ctx).WithFields(logrus.Fields{"lease_id": leaseID, "user_id": viewer.UserID})
	log.Info("[payment][ledger] create start")

	leaseID = strings.TrimSpace(leaseID)
	if leaseID == "" {
		return entities.Payment{}, ErrInvalidLeaseID
	}
	if !amount.IsPositive() {
		log.WithField("amount", amount.String()).Warn("[payment][ledger] invalid amount")
		return entities.Payment{}, ErrInvalidAmount
	}
	if dueDate.IsZero() {
		return entities.Payment{}, fmt.Errorf("%w: due date is required", ErrInvalidInput)
	}

	lease, err := u.leaseRepo.GetByID(ctx, leaseID)
	if err != nil {
		log.WithError(err).Error("[payment][ledger] failed loading lease")
		return entities.Payment{}, err
	}
	if lease.ID == "" {
		log.Warn("[payment][ledger] lease not found")
		return entities.Payment{}, ErrLeaseNotFound
	}
	if err := authorizeLeaseWrite(viewer, lease); err != nil {
		log.Warn("[payment][ledger] create denied")
		return entities.Payment{}, err
	}

	now := u.now()
	created, err := u.repo.Create(ctx, entities.Payment{
		ID:        uuid.NewString(),
		LeaseID:   leaseID,
		Amount:    amount,
		DueDate:   dueDate.UTC(),
		Status:    entities.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.WithError(err).Error("[payment][ledger] repository create failed")
		return entities.Payment{}, err
	}
	log.WithField("payment_id", created.ID).Info("[payment][ledger] create success")
	return created, nil
}

func (u *PaymentLedgerUseCase) GenerateScheduleForLease(ctx context.Context, leaseID string, startDate time.Time, endDate *time.Time, monthlyRent decimal.Decimal) (int, error) {
	log := logging.FromContext(ctx).WithField("lease_id", leaseID)

	leaseID = strings.TrimSpace(leaseID)
	if leaseID == "" {
		return 0, ErrInvalidLeaseID
	}
	if !monthlyRent.IsPositive() {
		return 0, ErrInvalidAmount
	}
	if startDate.IsZero() {
		return 0, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	if endDate != nil && endDate.Before(startDate) {
		return 0, ErrInvalidLeaseDates
	}

	lease, err := u.leaseRepo.GetByID(ctx, leaseID)
	if err != nil {
		return 0, err
	}
	if lease.ID == "" {
		return 0, ErrLeaseNotFound
	}

	now := u.now()
	dueDates := entities.MonthlyDueDates(startDate.UTC(), utcPtr(endDate))
	payments := make([]entities.Payment, 0, len(dueDates))
	for _, due := range dueDates {
		payments = append(payments, entities.Payment{
			ID:        uuid.NewString(),
			LeaseID:   leaseID,
			Amount:    monthlyRent,
			DueDate:   due,
			Status:    entities.PaymentStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	n, err := u.repo.CreateBatch(ctx, payments)
	if err != nil {
		log.WithError(err).Error("[payment][ledger] schedule insert failed")
		return 0, err
	}
	log.WithField("count", n).Info("[payment][ledger] schedule generated")
	return n, nil
}

func (u *PaymentLedgerUseCase) MarkPaid(ctx context.Context, paymentID string, paidAt time.Time) (entities.Payment, bool, error) {
	paidAt = paidAt.UTC()
	return u.settle(ctx, paymentID, entities.StatusChange{To: entities.PaymentStatusPaid, PaidAt: &paidAt})
}

func (u *PaymentLedgerUseCase) MarkFailed(ctx context.Context, paymentID string) (entities.Payment, bool, error) {
	return u.settle(ctx, paymentID, entities.StatusChange{To: entities.PaymentStatusFailed})
}

// settle moves a PENDING payment to a terminal status with a single
// conditional write. Concurrent or repeated deliveries see changed=false.
func (u *PaymentLedgerUseCase) settle(ctx context.Context, paymentID string, change entities.StatusChange) (entities.Payment, bool, error) {
	log := logging.FromContext(ctx).WithFields(logrus.Fields{"payment_id": paymentID, "target": change.To})

	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, false, ErrInvalidPaymentID
	}

	changed, err := u.repo.CompareAndSetStatus(ctx, paymentID, entities.PaymentStatusPending, change)
	if err != nil {
		log.WithError(err).Error("[payment][ledger] conditional update failed")
		return entities.Payment{}, false, err
	}

	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, false, err
	}
	if p.ID == "" {
		log.Warn("[payment][ledger] payment not found")
		return entities.Payment{}, false, ErrPaymentNotFound
	}

	if !changed {
		log.WithField("stored_status", p.Status).Info("[payment][ledger] transition absorbed; payment already settled")
		return p, false, nil
	}

	log.Info("[payment][ledger] payment settled")
	u.notifySettled(ctx, p)
	return p, true, nil
}

func (u *PaymentLedgerUseCase) Override(ctx context.Context, viewer entities.Viewer, paymentID string, status entities.PaymentStatus) (entities.Payment, error) {
	log := logging.FromContext(ctx).WithFields(logrus.Fields{"payment_id": paymentID, "target": status, "user_id": viewer.UserID})
	log.Info("[payment][ledger] override start")

	p, _, err := u.loadAuthorized(ctx, viewer, paymentID, authorizeLeaseWrite)
	if err != nil {
		return entities.Payment{}, err
	}

	switch status {
	case entities.PaymentStatusPending, entities.PaymentStatusPaid, entities.PaymentStatusFailed:
	default:
		return entities.Payment{}, fmt.Errorf("%w: unsupported target status %q", ErrInvalidTransition, status)
	}
	if status == p.Status {
		return entities.Payment{}, fmt.Errorf("%w: payment is already %s", ErrInvalidTransition, status)
	}

	change := entities.StatusChange{To: status}
	if status == entities.PaymentStatusPaid {
		paidAt := u.now()
		change.PaidAt = &paidAt
	}

	changed, err := u.repo.CompareAndSetStatus(ctx, p.ID, p.Status, change)
	if err != nil {
		log.WithError(err).Error("[payment][ledger] override update failed")
		return entities.Payment{}, err
	}
	if !changed {
		log.Warn("[payment][ledger] override lost a concurrent update")
		return entities.Payment{}, fmt.Errorf("%w: payment changed concurrently", ErrInvalidTransition)
	}

	updated, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.Status == entities.PaymentStatusPending {
		u.notifySettled(ctx, updated)
	}
	log.WithField("previous_status", p.Status).Info("[payment][ledger] override success")
	return updated, nil
}

func (u *PaymentLedgerUseCase) GetPayment(ctx context.Context, viewer entities.Viewer, paymentID string) (entities.PaymentView, error) {
	p, _, err := u.loadAuthorized(ctx, viewer, paymentID, authorizeLeaseRead)
	if err != nil {
		return entities.PaymentView{}, err
	}
	return entities.NewPaymentView(p, u.now()), nil
}

func (u *PaymentLedgerUseCase) DeletePayment(ctx context.Context, viewer entities.Viewer, paymentID string) error {
	p, _, err := u.loadAuthorized(ctx, viewer, paymentID, authorizeLeaseWrite)
	if err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, p.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPaymentNotFound
	}
	logging.FromContext(ctx).WithField("payment_id", p.ID).Info("[payment][ledger] payment deleted")
	return nil
}

func (u *PaymentLedgerUseCase) ListByLease(ctx context.Context, viewer entities.Viewer, leaseID string) ([]entities.PaymentView, error) {
	leaseID = strings.TrimSpace(leaseID)
	if leaseID == "" {
		return nil, ErrInvalidLeaseID
	}

	lease, err := u.leaseRepo.GetByID(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if lease.ID == "" {
		return nil, ErrLeaseNotFound
	}
	if err := authorizeLeaseRead(viewer, lease); err != nil {
		logging.FromContext(ctx).WithFields(logrus.Fields{"lease_id": leaseID, "user_id": viewer.UserID}).Warn("[payment][ledger] lease payments denied")
		return nil, err
	}

	ps, err := u.repo.ListByLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	return entities.NewPaymentViews(ps, u.now()), nil
}

func (u *PaymentLedgerUseCase) ListByLandlord(ctx context.Context, landlordID string) ([]entities.PaymentView, error) {
	landlordID = strings.TrimSpace(landlordID)
	if landlordID == "" {
		return nil, fmt.Errorf("%w: landlord id is required", ErrInvalidInput)
	}
	ps, err := u.repo.ListByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	return entities.NewPaymentViews(ps, u.now()), nil
}

func (u *PaymentLedgerUseCase) ListByTenant(ctx context.Context, tenantUserID string) ([]entities.PaymentView, error) {
	tenantUserID = strings.TrimSpace(tenantUserID)
	if tenantUserID == "" {
		return nil, fmt.Errorf("%w: tenant id is required", ErrInvalidInput)
	}
	ps, err := u.repo.ListByTenantUser(ctx, tenantUserID)
	if err != nil {
		return nil, err
	}
	return entities.NewPaymentViews(ps, u.now()), nil
}

// loadAuthorized fetches a payment and its lease and applies check.
// A payment whose lease is gone is only reachable by admins.
func (u *PaymentLedgerUseCase) loadAuthorized(
	ctx context.Context,
	viewer entities.Viewer,
	paymentID string,
	check func(entities.Viewer, entities.Lease) error,
) (entities.Payment, entities.Lease, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, entities.Lease{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, entities.Lease{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, entities.Lease{}, ErrPaymentNotFound
	}

	lease, err := u.leaseRepo.GetByID(ctx, p.LeaseID)
	if err != nil {
		return entities.Payment{}, entities.Lease{}, err
	}
	if lease.ID == "" && !viewer.IsAdmin() {
		return entities.Payment{}, entities.Lease{}, ErrAccessDenied
	}
	if lease.ID != "" {
		if err := check(viewer, lease); err != nil {
			return entities.Payment{}, entities.Lease{}, err
		}
	}
	return p, lease, nil
}

func (u *PaymentLedgerUseCase) notifySettled(ctx context.Context, p entities.Payment) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.PaymentSettled(ctx, p); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("payment_id", p.ID).Warn("[payment][ledger] settlement notification failed")
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
