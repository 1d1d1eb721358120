package repository

import (
	"context"

	"property_manager/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type txKey struct{}

// GormTransactor runs a unit of work in one database transaction.
// Repositories built on the same *gorm.DB pick the transaction up from the
// context, so their writes commit or roll back together.
type GormTransactor struct {
	db *gorm.DB
}

var _ interfaces.ITransactor = (*GormTransactor)(nil)

func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return conn(ctx, t.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction carried by ctx, or db when there is none.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
