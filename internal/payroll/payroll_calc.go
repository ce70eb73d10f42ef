package payroll

import (
	"fmt"

	"go-fleetpay/internal/driver"
	payrollerrors "go-fleetpay/internal/payroll/errors"
	"go-fleetpay/internal/rate"
	rateerrors "go-fleetpay/internal/rate/errors"
	"go-fleetpay/internal/shared/money"

	"github.com/shopspring/decimal"
)

const (
	CalculationPartner  = driver.CalculationPartner
	CalculationEmployee = driver.CalculationEmployee

	ModeTiered = "tiered"
	ModeLinear = "linear"

	// Distances up to this value keep their own tier instead of snapping to a
	// multiple of five.
	flatTierLimitKm = 12
	tierStepKm      = 5
)

var (
	threshold = decimal.NewFromInt(rate.ThresholdKm)
	flatLimit = decimal.NewFromInt(flatTierLimitKm)
	tierStep  = decimal.NewFromInt(tierStepKm)
)

// ServiceBase is the priced base of a single trip.
type ServiceBase struct {
	BaseAmount  decimal.Decimal
	Mode        string
	RoundedKm   *int
	Explanation string
}

// RateBook is everything needed to price trips of one year. Tiers may be nil
// when no trip of the month falls under the threshold.
type RateBook struct {
	Year   int
	Config rate.YearlyConfiguration
	Tiers  rate.TierIndex
}

// TierKey maps a distance at or below the threshold to its tier key.
func TierKey(distanceKm decimal.Decimal) int {
	if distanceKm.LessThanOrEqual(flatLimit) {
		return int(distanceKm.Round(0).IntPart())
	}
	return int(distanceKm.Div(tierStep).Round(0).Mul(tierStep).IntPart())
}

// UsesTiers reports whether a distance is priced from the tier table.
func UsesTiers(distanceKm decimal.Decimal) bool {
	return distanceKm.LessThanOrEqual(threshold)
}

// PriceService computes the base amount of one trip. It is applied per trip,
// never to a monthly total.
func PriceService(distanceKm decimal.Decimal, book RateBook) (ServiceBase, error) {
	if distanceKm.IsNegative() {
		return ServiceBase{}, payrollerrors.ErrInvalidTripData.WithDetails(map[string]string{"distance_km": distanceKm.String()})
	}

	if !UsesTiers(distanceKm) {
		linear := book.Config.LinearRateBeyondThreshold
		base := money.Round2(distanceKm.Mul(linear))
		return ServiceBase{
			BaseAmount:  base,
			Mode:        ModeLinear,
			Explanation: fmt.Sprintf("%s km x %s = %s", distanceKm.String(), linear.String(), base.StringFixed(money.Scale)),
		}, nil
	}

	key := TierKey(distanceKm)
	amount, ok := book.Tiers.Lookup(key)
	if !ok {
		return ServiceBase{}, rateerrors.ErrRateNotFound.WithDetails(map[string]any{
			"distance_km": distanceKm.String(),
			"tier_km":     key,
			"year":        book.Year,
		})
	}

	return ServiceBase{
		BaseAmount:  amount,
		Mode:        ModeTiered,
		RoundedKm:   &key,
		Explanation: fmt.Sprintf("%s km -> tier %d km = %s", distanceKm.String(), key, amount.StringFixed(money.Scale)),
	}, nil
}
