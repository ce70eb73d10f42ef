package expense

import (
	"context"
	"time"

	"go-fleetpay/internal/shared/scope"

	"gorm.io/gorm"
)

type Repository interface {
	GetApproved(ctx context.Context, driverID string, from, to time.Time) ([]Expense, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetApproved(ctx context.Context, driverID string, from, to time.Time) ([]Expense, error) {
	var expenses []Expense
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusApproved).
		Scopes(scope.Driver("driver_id", driverID), scope.DateWindow("expense_date", from, to)).
		Order("expense_date ASC").
		Find(&expenses).Error
	return expenses, err
}
