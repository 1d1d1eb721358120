package usecase

import (
	"context"
	"errors"
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

// CreateLeaseInput is a landlord's request to lease a unit to a tenant.
// A nil Rent falls back to the unit's rent amount.
type CreateLeaseInput struct {
	UnitID    string
	TenantID  string
	StartDate time.Time
	EndDate   *time.Time
	Rent      *decimal.Decimal
}

// ILeaseUseCase manages leases. Creating a lease also generates its monthly
// payment schedule.

type ILeaseUseCase interface {
	CreateLease(ctx context.Context, viewer entities.Viewer, in CreateLeaseInput) (entities.Lease, int, error)
	GetLease(ctx context.Context, viewer entities.Viewer, id string) (entities.Lease, error)
	ListLeases(ctx context.Context, viewer entities.Viewer) ([]entities.Lease, error)
	TerminateLease(ctx context.Context, viewer entities.Viewer, id string) (entities.Lease, error)
}

type LeaseUseCase struct {
	leases     interfaces.ILeaseRepository
	properties interfaces.IPropertyRepository
	tenants    interfaces.ITenantRepository
	ledger     IPaymentLedgerUseCase
	tx         interfaces.ITransactor
	now        func() time.Time
}

var _ ILeaseUseCase = (*LeaseUseCase)(nil)

func NewLeaseUseCase(leases interfaces.ILeaseRepository, properties interfaces.IPropertyRepository, tenants interfaces.ITenantRepository, ledger IPaymentLedgerUseCase, tx interfaces.ITransactor) *LeaseUseCase {
	return &LeaseUseCase{
		leases:     leases,
		properties: properties,
		tenants:    tenants,
		ledger:     ledger,
		tx:         tx,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *LeaseUseCase) CreateLease(ctx context.Context, viewer entities.Viewer, in CreateLeaseInput) (entities.Lease, int, error) {
	log := logging.FromContext(ctx).WithFields(logrus.Fields{"unit_id": in.UnitID, "tenant_id": in.TenantID, "user_id": viewer.UserID})
	log.Info("[lease][usecase] create start")

	if err := requireRole(viewer, entities.RoleLandlord, entities.RoleAdmin); err != nil {
		return entities.Lease{}, 0, err
	}
	in.UnitID = strings.TrimSpace(in.UnitID)
	in.TenantID = strings.TrimSpace(in.TenantID)
	if in.UnitID == "" || in.TenantID == "" {
		return entities.Lease{}, 0, fmt.Errorf("%w: unit and tenant are required", ErrInvalidInput)
	}
	if in.StartDate.IsZero() {
		return entities.Lease{}, 0, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return entities.Lease{}, 0, ErrInvalidLeaseDates
	}

	unit, err := u.properties.GetUnit(ctx, in.UnitID)
	if err != nil {
		return entities.Lease{}, 0, err
	}
	if unit.ID == "" {
		return entities.Lease{}, 0, ErrUnitNotFound
	}
	if err := authorizePropertyWrite(viewer, unit.LandlordID); err != nil {
		log.Warn("[lease][usecase] unit not owned by caller")
		return entities.Lease{}, 0, err
	}

	tenant, err := u.tenants.GetByID(ctx, in.TenantID)
	if err != nil {
		return entities.Lease{}, 0, err
	}
	if tenant.ID == "" {
		return entities.Lease{}, 0, ErrTenantNotFound
	}

	active, err := u.leases.HasActiveLease(ctx, unit.ID)
	if err != nil {
		return entities.Lease{}, 0, err
	}
	if active {
		log.Warn("[lease][usecase] unit already has an active lease")
		return entities.Lease{}, 0, ErrUnitHasActiveLease
	}

	rent := unit.RentAmount
	if in.Rent != nil {
		rent = *in.Rent
	}
	if !rent.IsPositive() {
		return entities.Lease{}, 0, ErrInvalidAmount
	}

	now := u.now()
	var (
		created entities.Lease
		count   int
	)
	// the lease and its schedule commit together
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.leases.Create(ctx, entities.Lease{
			ID:        uuid.NewString(),
			UnitID:    unit.ID,
			TenantID:  tenant.ID,
			StartDate: in.StartDate.UTC(),
			EndDate:   utcPtr(in.EndDate),
			Rent:      rent,
			Status:    entities.LeaseStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			if errors.Is(err, interfaces.ErrConflict) {
				return ErrUnitHasActiveLease
			}
			log.WithError(err).Error("[lease][usecase] repository create failed")
			return err
		}

		count, err = u.ledger.GenerateScheduleForLease(ctx, created.ID, created.StartDate, created.EndDate, created.Rent)
		if err != nil {
			log.WithError(err).WithField("lease_id", created.ID).Error("[lease][usecase] payment schedule failed; lease rolled back")
			return fmt.Errorf("generate payment schedule for lease %s: %w", created.ID, err)
		}
		return nil
	})
	if err != nil {
		return entities.Lease{}, 0, err
	}

	lease, err := u.leases.GetByID(ctx, created.ID)
	if err != nil {
		return entities.Lease{}, 0, err
	}
	log.WithFields(logrus.Fields{"lease_id": lease.ID, "payments": count}).Info("[lease][usecase] create success")
	return lease, count, nil
}

func (u *LeaseUseCase) GetLease(ctx context.Context, viewer entities.Viewer, id string) (entities.Lease, error) {
	lease, err := u.load(ctx, id)
	if err != nil {
		return entities.Lease{}, err
	}
	if err := authorizeLeaseRead(viewer, lease); err != nil {
		return entities.Lease{}, err
	}
	return lease, nil
}

func (u *LeaseUseCase) ListLeases(ctx context.Context, viewer entities.Viewer) ([]entities.Lease, error) {
	switch {
	case viewer.UserID == "":
		return nil, ErrAccessDenied
	case viewer.IsLandlord():
		return u.leases.ListByLandlord(ctx, viewer.UserID)
	case viewer.IsTenant():
		return u.leases.ListByTenantUser(ctx, viewer.UserID)
	}
	return nil, ErrAccessDenied
}

func (u *LeaseUseCase) TerminateLease(ctx context.Context, viewer entities.Viewer, id string) (entities.Lease, error) {
	lease, err := u.load(ctx, id)
	if err != nil {
		return entities.Lease{}, err
	}
	if err := authorizeLeaseWrite(viewer, lease); err != nil {
		return entities.Lease{}, err
	}
	if lease.Status != entities.LeaseStatusActive {
		return entities.Lease{}, ErrLeaseNotActive
	}

	updated, err := u.leases.UpdateStatus(ctx, lease.ID, entities.LeaseStatusTerminated)
	if err != nil {
		return entities.Lease{}, err
	}
	if updated.ID == "" {
		return entities.Lease{}, ErrLeaseNotFound
	}
	logging.FromContext(ctx).WithField("lease_id", lease.ID).Info("[lease][usecase] lease terminated")
	return updated, nil
}

func (u *LeaseUseCase) load(ctx context.Context, id string) (entities.Lease, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lease{}, ErrInvalidLeaseID
	}
	lease, err := u.leases.GetByID(ctx, id)
	if err != nil {
		return entities.Lease{}, err
	}
	if lease.ID == "" {
		return entities.Lease{}, ErrLeaseNotFound
	}
	return lease, nil
}
