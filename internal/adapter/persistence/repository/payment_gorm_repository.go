package repository

import (
	"context"
	"errors"
	"time"

	"property_manager/internal/domain/entities"
	"property_manager/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const paymentBatchSize = 100

// PaymentGormRepository persists the ledger in the relational database.
//
// Status writes are conditional on the stored status (see CompareAndSetStatus),
// so concurrent callbacks and reconciliation sweeps cannot overwrite each other.
type PaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	rec := toPaymentRecord(p)
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return entities.Payment{}, translateError(err)
	}
	return fromPaymentRecord(rec), nil
}

// CreateBatch inserts all payments or none.
func (r *PaymentGormRepository) CreateBatch(ctx context.Context, ps []entities.Payment) (int, error) {
	if len(ps) == 0 {
		return 0, nil
	}
	recs := make([]paymentRecord, 0, len(ps))
	for _, p := range ps {
		recs = append(recs, toPaymentRecord(p))
	}
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&recs, paymentBatchSize).Error
	})
	if err != nil {
		return 0, translateError(err)
	}
	return len(recs), nil
}

func (r *PaymentGormRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var rec paymentRecord
	err := conn(ctx, r.db).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentRecord(rec), nil
}

func (r *PaymentGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&paymentRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PaymentGormRepository) SetGatewayRef(ctx context.Context, id string, ref string) (entities.Payment, error) {
	res := conn(ctx, r.db).Model(&paymentRecord{}).Where("id = ?", id).Updates(map[string]any{
		"gateway_ref": ref,
		"updated_at":  time.Now().UTC(),
	})
	if res.Error != nil {
		return entities.Payment{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Payment{}, nil
	}
	return r.GetByID(ctx, id)
}

// CompareAndSetStatus writes change only while the stored status equals from.
// It reports false when the row is missing or already moved on.
func (r *PaymentGormRepository) CompareAndSetStatus(ctx context.Context, id string, from entities.PaymentStatus, change entities.StatusChange) (bool, error) {
	updates := map[string]any{
		"status":     string(change.To),
		"paid_at":    utcPtr(change.PaidAt),
		"updated_at": time.Now().UTC(),
	}
	if change.GatewayRef != "" {
		updates["gateway_ref"] = change.GatewayRef
	}

	res := conn(ctx, r.db).Model(&paymentRecord{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *PaymentGormRepository) ListByLease(ctx context.Context, leaseID string) ([]entities.Payment, error) {
	var recs []paymentRecord
	err := conn(ctx, r.db).
		Where("lease_id = ?", leaseID).
		Order("due_date ASC, id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return fromPaymentRecords(recs), nil
}

func (r *PaymentGormRepository) ListByLandlord(ctx context.Context, landlordID string) ([]entities.Payment, error) {
	var recs []paymentRecord
	err := conn(ctx, r.db).
		Select("payments.*").
		Joins("JOIN leases ON leases.id = payments.lease_id").
		Joins("JOIN units ON units.id = leases.unit_id").
		Joins("JOIN properties ON properties.id = units.property_id").
		Where("properties.landlord_id = ?", landlordID).
		Order("payments.due_date ASC, payments.id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return fromPaymentRecords(recs), nil
}

func (r *PaymentGormRepository) ListByTenantUser(ctx context.Context, userID string) ([]entities.Payment, error) {
	var recs []paymentRecord
	err := conn(ctx, r.db).
		Select("payments.*").
		Joins("JOIN leases ON leases.id = payments.lease_id").
		Joins("JOIN tenants ON tenants.id = leases.tenant_id").
		Where("tenants.user_id = ?", userID).
		Order("payments.due_date ASC, payments.id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return fromPaymentRecords(recs), nil
}

// ListAwaitingGateway returns PENDING payments that already have a processor
// reference, oldest due date first, starting strictly after the cursor.
func (r *PaymentGormRepository) ListAwaitingGateway(ctx context.Context, after entities.PaymentCursor, limit int) ([]entities.Payment, error) {
	q := conn(ctx, r.db).
		Where("status = ? AND gateway_ref <> ''", string(entities.PaymentStatusPending))
	if !after.IsZero() {
		due := after.DueDate.UTC()
		q = q.Where("(due_date > ? OR (due_date = ? AND id > ?))", due, due, after.ID)
	}
	q = q.Order("due_date ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var recs []paymentRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return fromPaymentRecords(recs), nil
}
