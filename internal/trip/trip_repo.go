package trip

import (
	"context"
	"time"

	"go-fleetpay/internal/shared/scope"

	"gorm.io/gorm"
)

type Repository interface {
	// FindCompleted lists completed or settled trips of a driver whose service
	// date falls in [from, to], both inclusive.
	FindCompleted(ctx context.Context, driverID string, from, to time.Time) ([]CompletedTrip, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindCompleted(ctx context.Context, driverID string, from, to time.Time) ([]CompletedTrip, error) {
	var trips []CompletedTrip
	err := r.db.WithContext(ctx).
		Where("state IN ?", PayableStates).
		Scopes(scope.Driver("assigned_driver_id", driverID), scope.DateWindow("service_date", from, to)).
		Order("service_date ASC, id ASC").
		Find(&trips).Error
	return trips, err
}
