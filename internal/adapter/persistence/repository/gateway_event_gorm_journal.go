package repository

import (
	"context"

	"property_manager/internal/domain/entities"
	"property_manager/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GatewayEventGormJournal keeps the callback journal next to the ledger when
// DynamoDB is not configured. (provider, event_id) is the primary key.
type GatewayEventGormJournal struct {
	db *gorm.DB
}

var _ interfaces.IGatewayEventJournal = (*GatewayEventGormJournal)(nil)

func NewGatewayEventGormJournal(db *gorm.DB) *GatewayEventGormJournal {
	return &GatewayEventGormJournal{db: db}
}

func (j *GatewayEventGormJournal) Record(ctx context.Context, rec entities.GatewayEventRecord) (bool, error) {
	row := toGatewayEventRecord(rec)
	res := j.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (j *GatewayEventGormJournal) ListByPayment(ctx context.Context, paymentID string) ([]entities.GatewayEventRecord, error) {
	var rows []gatewayEventRecord
	err := j.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("received_at ASC, event_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.GatewayEventRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromGatewayEventRecord(r))
	}
	return out, nil
}
