package ledger

import (
	"context"
	"database/sql"
	"time"

	"go-fleetpay/internal/shared/dbtx"
	"go-fleetpay/internal/shared/scope"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// GetByTypeAndDriver lists entries of one type for a driver dated in [from, to].
	GetByTypeAndDriver(ctx context.Context, entryType, driverID string, from, to time.Time) ([]Entry, error)
	Post(ctx context.Context, entry *Entry) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) GetByTypeAndDriver(ctx context.Context, entryType, driverID string, from, to time.Time) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("entry_type = ?", entryType).
		Scopes(scope.Driver("driver_id", driverID), scope.DateWindow("entry_date", from, to)).
		Order("entry_date ASC, number ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) Post(ctx context.Context, entry *Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
