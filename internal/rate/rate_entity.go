package rate

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ThresholdKm is the longest distance priced from the tier table; anything
// longer is priced linearly from the yearly configuration.
const ThresholdKm = 200

type RateTier struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Year       int             `gorm:"not null;index:idx_rate_tiers_year_distance" json:"year"`
	DistanceKm int             `gorm:"not null;index:idx_rate_tiers_year_distance" json:"distance_km"`
	BaseAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"base_amount"`
	Active     bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (RateTier) TableName() string {
	return "rate_tiers"
}

type YearlyConfiguration struct {
	Year                      int             `gorm:"primaryKey;autoIncrement:false" json:"year"`
	UpliftCoefficient         decimal.Decimal `gorm:"type:numeric(8,4);not null" json:"uplift_coefficient"`
	HourlyWaitingRate         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"hourly_waiting_rate"`
	LinearRateBeyondThreshold decimal.Decimal `gorm:"type:numeric(12,4);not null;default:0" json:"linear_rate_beyond_threshold"`
	CreatedAt                 time.Time       `json:"created_at"`
	UpdatedAt                 time.Time       `json:"updated_at"`
}

func (YearlyConfiguration) TableName() string {
	return "yearly_configurations"
}

// TierIndex is the active tier table of one year keyed by distance.
type TierIndex map[int]decimal.Decimal

func NewTierIndex(tiers []RateTier) TierIndex {
	idx := make(TierIndex, len(tiers))
	for _, t := range tiers {
		if !t.Active {
			continue
		}
		idx[t.DistanceKm] = t.BaseAmount
	}
	return idx
}

func (idx TierIndex) Lookup(distanceKm int) (decimal.Decimal, bool) {
	v, ok := idx[distanceKm]
	return v, ok
}
