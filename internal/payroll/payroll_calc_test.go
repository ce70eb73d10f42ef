package payroll_test

import (
	"testing"
	"time"

	"go-fleetpay/internal/payroll"
	payrollerrors "go-fleetpay/internal/payroll/errors"
	"go-fleetpay/internal/rate"
	rateerrors "go-fleetpay/internal/rate/errors"
	"go-fleetpay/internal/shared/money"

	"github.com/stretchr/testify/assert"
)

func TestTierKey(t *testing.T) {
	tests := []struct {
		distance string
		want     int
	}{
		{"0", 0},
		{"3", 3},
		{"7.4", 7},
		{"7.5", 8},
		{"12", 12},
		{"12.4", 10},
		{"13", 15},
		{"17.4", 15},
		{"17.5", 20},
		{"18", 20},
		{"22.4", 20},
		{"22.5", 25},
		{"199", 200},
		{"200", 200},
	}

	for _, tt := range tests {
		t.Run(tt.distance, func(t *testing.T) {
			assert.Equal(t, tt.want, payroll.TierKey(money.MustParse(tt.distance)))
		})
	}
}

func TestPriceService(t *testing.T) {
	book := payroll.RateBook{
		Year: 2026,
		Config: rate.YearlyConfiguration{
			Year:                      2026,
			UpliftCoefficient:         money.MustParse("1.10"),
			HourlyWaitingRate:         money.MustParse("10"),
			LinearRateBeyondThreshold: money.MustParse("0.30"),
		},
		Tiers: rate.TierIndex{
			5:   money.MustParse("9.00"),
			20:  money.MustParse("22.50"),
			200: money.MustParse("150.00"),
		},
	}

	t.Run("tiered lookup snaps to the nearest five", func(t *testing.T) {
		base, err := payroll.PriceService(money.MustParse("18"), book)

		assert.NoError(t, err)
		assert.Equal(t, payroll.ModeTiered, base.Mode)
		assert.Equal(t, "22.50", base.BaseAmount.StringFixed(2))
		if assert.NotNil(t, base.RoundedKm) {
			assert.Equal(t, 20, *base.RoundedKm)
		}
		assert.Contains(t, base.Explanation, "tier 20 km")
	})

	t.Run("short distance keeps its own tier", func(t *testing.T) {
		base, err := payroll.PriceService(money.MustParse("5"), book)

		assert.NoError(t, err)
		assert.Equal(t, "9.00", base.BaseAmount.StringFixed(2))
	})

	t.Run("threshold itself is tiered", func(t *testing.T) {
		base, err := payroll.PriceService(money.MustParse("200"), book)

		assert.NoError(t, err)
		assert.Equal(t, payroll.ModeTiered, base.Mode)
		assert.Equal(t, "150.00", base.BaseAmount.StringFixed(2))
	})

	t.Run("beyond threshold is linear", func(t *testing.T) {
		base, err := payroll.PriceService(money.MustParse("210"), book)

		assert.NoError(t, err)
		assert.Equal(t, payroll.ModeLinear, base.Mode)
		assert.Nil(t, base.RoundedKm)
		assert.Equal(t, "63.00", base.BaseAmount.StringFixed(2))
	})

	t.Run("linear result is rounded to cents", func(t *testing.T) {
		base, err := payroll.PriceService(money.MustParse("200.05"), book)

		assert.NoError(t, err)
		assert.Equal(t, "60.02", base.BaseAmount.StringFixed(2))
	})

	t.Run("missing tier", func(t *testing.T) {
		_, err := payroll.PriceService(money.MustParse("33"), book)

		assert.ErrorIs(t, err, rateerrors.ErrRateNotFound)
	})

	t.Run("negative distance", func(t *testing.T) {
		_, err := payroll.PriceService(money.MustParse("-1"), book)

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidTripData)
	})
}

func TestPeriod(t *testing.T) {
	p, err := payroll.NewPeriod(3, 2026)
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-01", p.Start().Format("2006-01-02"))
	assert.Equal(t, "2026-03-31", p.End().Format("2006-01-02"))
	assert.Equal(t, payroll.Period{Month: 2, Year: 2026}, p.Previous())

	jan, _ := payroll.NewPeriod(1, 2026)
	assert.Equal(t, payroll.Period{Month: 12, Year: 2025}, jan.Previous())

	feb, _ := payroll.NewPeriod(2, 2028)
	assert.Equal(t, "2028-02-29", feb.End().Format("2006-01-02"))

	_, err = payroll.NewPeriod(13, 2026)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)

	parsed, err := payroll.ParsePeriod("2026-11")
	assert.NoError(t, err)
	assert.Equal(t, "2026-11", parsed.String())

	_, err = payroll.ParsePeriod("11/2026")
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriodFormat)

	// 01:30 at +02:00 is still 31 March in UTC.
	localApril := time.Date(2026, 4, 1, 1, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	assert.Equal(t, payroll.Period{Month: 3, Year: 2026}, payroll.PeriodOf(localApril))

	localMarch := time.Date(2026, 3, 31, 23, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	assert.Equal(t, payroll.Period{Month: 4, Year: 2026}, payroll.PeriodOf(localMarch))
}
