package rate

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rate_repo.go -destination=mock/rate_repo_mock.go -package=mock
type Repository interface {
	GetTiers(ctx context.Context, year int) ([]RateTier, error)
	GetConfiguration(ctx context.Context, year int) (*YearlyConfiguration, error)
	UpsertTier(ctx context.Context, tier *RateTier) error
	DeactivateTier(ctx context.Context, year int, distanceKm int) (bool, error)
	UpsertConfiguration(ctx context.Context, cfg *YearlyConfiguration) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetTiers(ctx context.Context, year int) ([]RateTier, error) {
	var tiers []RateTier
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Where("active = ?", true).
		Order("distance_km ASC").
		Find(&tiers).Error
	return tiers, err
}

// GetConfiguration returns nil without error when the year has no row.
func (r *repository) GetConfiguration(ctx context.Context, year int) (*YearlyConfiguration, error) {
	var cfg YearlyConfiguration
	err := r.db.WithContext(ctx).First(&cfg, "year = ?", year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpsertTier retires the current active tier for (year, distance) and inserts
// the new one, keeping the history of amounts.
func (r *repository) UpsertTier(ctx context.Context, tier *RateTier) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&RateTier{}).
			Where("year = ? AND distance_km = ? AND active = ?", tier.Year, tier.DistanceKm, true).
			Update("active", false).Error; err != nil {
			return err
		}
		tier.Active = true
		return tx.Create(tier).Error
	})
}

func (r *repository) DeactivateTier(ctx context.Context, year int, distanceKm int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&RateTier{}).
		Where("year = ? AND distance_km = ? AND active = ?", year, distanceKm, true).
		Update("active", false)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) UpsertConfiguration(ctx context.Context, cfg *YearlyConfiguration) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"uplift_coefficient",
				"hourly_waiting_rate",
				"linear_rate_beyond_threshold",
				"updated_at",
			}),
		}).
		Create(cfg).Error
}
