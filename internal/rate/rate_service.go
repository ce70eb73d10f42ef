package rate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	rateerrors "go-fleetpay/internal/rate/errors"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	TiersCacheKeyPrefix  = "rates:tiers:"
	ConfigCacheKeyPrefix = "rates:config:"
	CacheTTL             = 30 * time.Minute

	minYear = 2000
	maxYear = 2100
)

func TiersCacheKey(year int) string {
	return fmt.Sprintf("%s%d", TiersCacheKeyPrefix, year)
}

func ConfigCacheKey(year int) string {
	return fmt.Sprintf("%s%d", ConfigCacheKeyPrefix, year)
}

//go:generate mockgen -source=rate_service.go -destination=mock/rate_service_mock.go -package=mock
type Service interface {
	// GetRateTiers returns the active tiers ordered by distance and fails with
	// ErrRateTableEmpty when the year has none.
	GetRateTiers(ctx context.Context, year int) ([]RateTier, error)
	// GetYearlyConfiguration fails with ErrConfigurationMissing when absent.
	GetYearlyConfiguration(ctx context.Context, year int) (YearlyConfiguration, error)

	ListTiers(ctx context.Context, year int) ([]RateTierResponse, error)
	UpsertTier(ctx context.Context, year int, req UpsertRateTierRequest) (RateTierResponse, error)
	DeactivateTier(ctx context.Context, year int, distanceKm int) error
	GetConfiguration(ctx context.Context, year int) (ConfigurationResponse, error)
	UpsertConfiguration(ctx context.Context, year int, req UpsertConfigurationRequest) (ConfigurationResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("rate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rate.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetRateTiers(ctx context.Context, year int) ([]RateTier, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	tiers, err := s.loadTiers(ctx, year)
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		return nil, rateerrors.ErrRateTableEmpty.WithDetails(map[string]int{"year": year})
	}

	return tiers, nil
}

func (s *service) GetYearlyConfiguration(ctx context.Context, year int) (YearlyConfiguration, error) {
	if err := validateYear(year); err != nil {
		return YearlyConfiguration{}, err
	}

	cfg, err := s.loadConfiguration(ctx, year)
	if err != nil {
		return YearlyConfiguration{}, err
	}
	if cfg == nil {
		return YearlyConfiguration{}, rateerrors.ErrConfigurationMissing.WithDetails(map[string]int{"year": year})
	}

	return *cfg, nil
}

func (s *service) ListTiers(ctx context.Context, year int) ([]RateTierResponse, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	tiers, err := s.loadTiers(ctx, year)
	if err != nil {
		return nil, err
	}

	return mapToTierListResponse(tiers), nil
}

func (s *service) UpsertTier(ctx context.Context, year int, req UpsertRateTierRequest) (RateTierResponse, error) {
	if err := validateYear(year); err != nil {
		return RateTierResponse{}, err
	}
	if req.DistanceKm < 0 || req.DistanceKm > ThresholdKm {
		return RateTierResponse{}, rateerrors.ErrInvalidDistance
	}
	amount, err := parseNonNegative(req.BaseAmount)
	if err != nil {
		return RateTierResponse{}, err
	}

	tier := &RateTier{
		Year:       year,
		DistanceKm: req.DistanceKm,
		BaseAmount: amount,
		Active:     true,
	}
	if err := s.repo.UpsertTier(ctx, tier); err != nil {
		s.logger.Error("upsert rate tier failed",
			zap.Int("year", year),
			zap.Int("distance_km", req.DistanceKm),
			zap.Error(err),
		)
		return RateTierResponse{}, err
	}

	s.invalidate(ctx, TiersCacheKey(year))
	s.logger.Info("rate tier upserted",
		zap.Int("year", year),
		zap.Int("distance_km", req.DistanceKm),
		zap.String("base_amount", amount.StringFixed(2)),
	)

	return mapToTierResponse(*tier), nil
}

func (s *service) DeactivateTier(ctx context.Context, year int, distanceKm int) error {
	if err := validateYear(year); err != nil {
		return err
	}

	found, err := s.repo.DeactivateTier(ctx, year, distanceKm)
	if err != nil {
		return err
	}
	if !found {
		return rateerrors.ErrTierNotFound
	}

	s.invalidate(ctx, TiersCacheKey(year))
	return nil
}

func (s *service) GetConfiguration(ctx context.Context, year int) (ConfigurationResponse, error) {
	cfg, err := s.GetYearlyConfiguration(ctx, year)
	if err != nil {
		return ConfigurationResponse{}, err
	}
	return mapToConfigurationResponse(cfg), nil
}

func (s *service) UpsertConfiguration(ctx context.Context, year int, req UpsertConfigurationRequest) (ConfigurationResponse, error) {
	if err := validateYear(year); err != nil {
		return ConfigurationResponse{}, err
	}

	uplift, err := decimal.NewFromString(req.UpliftCoefficient)
	if err != nil || !uplift.IsPositive() {
		return ConfigurationResponse{}, rateerrors.ErrInvalidUplift
	}
	waitingRate, err := parseNonNegative(req.HourlyWaitingRate)
	if err != nil {
		return ConfigurationResponse{}, err
	}
	linearRate, err := parseNonNegative(req.LinearRateBeyondThreshold)
	if err != nil {
		return ConfigurationResponse{}, err
	}

	cfg := &YearlyConfiguration{
		Year:                      year,
		UpliftCoefficient:         uplift,
		HourlyWaitingRate:         waitingRate,
		LinearRateBeyondThreshold: linearRate,
	}
	if err := s.repo.UpsertConfiguration(ctx, cfg); err != nil {
		s.logger.Error("upsert yearly configuration failed", zap.Int("year", year), zap.Error(err))
		return ConfigurationResponse{}, err
	}

	s.invalidate(ctx, ConfigCacheKey(year))
	s.logger.Info("yearly configuration upserted", zap.Int("year", year))

	return mapToConfigurationResponse(*cfg), nil
}

func (s *service) loadTiers(ctx context.Context, year int) ([]RateTier, error) {
	cacheKey := TiersCacheKey(year)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var tiers []RateTier
			if json.Unmarshal([]byte(cached), &tiers) == nil {
				return tiers, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		tiers, err := s.repo.GetTiers(ctx, year)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(tiers); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, CacheTTL).Err(); err != nil {
					s.logger.Warn("cache rate tiers failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return tiers, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]RateTier), nil
}

func (s *service) loadConfiguration(ctx context.Context, year int) (*YearlyConfiguration, error) {
	cacheKey := ConfigCacheKey(year)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cfg YearlyConfiguration
			if json.Unmarshal([]byte(cached), &cfg) == nil {
				return &cfg, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		cfg, err := s.repo.GetConfiguration(ctx, year)
		if err != nil {
			return nil, err
		}

		// Misses are not cached so a new year becomes visible on its first upsert.
		if cfg != nil && s.rdb != nil {
			if jsonData, err := json.Marshal(cfg); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, CacheTTL).Err(); err != nil {
					s.logger.Warn("cache yearly configuration failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return cfg, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*YearlyConfiguration), nil
}

func (s *service) invalidate(ctx context.Context, key string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate rate cache", zap.String("key", key), zap.Error(err))
	}
}

func validateYear(year int) error {
	if year < minYear || year > maxYear {
		return rateerrors.ErrInvalidYear.WithDetails(map[string]int{"year": year})
	}
	return nil
}

func parseNonNegative(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		return decimal.Zero, rateerrors.ErrInvalidAmount
	}
	return d, nil
}

func mapToTierResponse(t RateTier) RateTierResponse {
	return RateTierResponse{
		ID:         t.ID.String(),
		Year:       t.Year,
		DistanceKm: t.DistanceKm,
		BaseAmount: t.BaseAmount.StringFixed(2),
		Active:     t.Active,
	}
}

func mapToTierListResponse(tiers []RateTier) []RateTierResponse {
	resp := make([]RateTierResponse, len(tiers))
	for i, t := range tiers {
		resp[i] = mapToTierResponse(t)
	}
	return resp
}

func mapToConfigurationResponse(cfg YearlyConfiguration) ConfigurationResponse {
	return ConfigurationResponse{
		Year:                      cfg.Year,
		UpliftCoefficient:         cfg.UpliftCoefficient.String(),
		HourlyWaitingRate:         cfg.HourlyWaitingRate.StringFixed(2),
		LinearRateBeyondThreshold: cfg.LinearRateBeyondThreshold.String(),
		ThresholdKm:               ThresholdKm,
	}
}
