package driver

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	// FindByID returns nil, nil when the driver does not exist.
	FindByID(ctx context.Context, id string) (*Driver, error)
	FindActiveByCalculationType(ctx context.Context, calculationType string) ([]Driver, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Driver, error) {
	var d Driver
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindActiveByCalculationType(ctx context.Context, calculationType string) ([]Driver, error) {
	var drivers []Driver
	err := r.db.WithContext(ctx).
		Where("active = ? AND calculation_type = ?", true, calculationType).
		Order("full_name ASC, id ASC").
		Find(&drivers).Error
	return drivers, err
}
