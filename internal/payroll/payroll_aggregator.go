package payroll

import (
	"context"

	payrollerrors "go-fleetpay/internal/payroll/errors"
	"go-fleetpay/internal/rate"
	"go-fleetpay/internal/shared/money"
	"go-fleetpay/internal/trip"

	"github.com/shopspring/decimal"
)

// RateSource is the read side of the rate package used by the engine.
type RateSource interface {
	GetRateTiers(ctx context.Context, year int) ([]rate.RateTier, error)
	GetYearlyConfiguration(ctx context.Context, year int) (rate.YearlyConfiguration, error)
}

// PricedTrip pairs a trip with its computed base.
type PricedTrip struct {
	Trip trip.CompletedTrip
	Base ServiceBase
}

type MonthlyTotals struct {
	TripCount         int
	TotalBaseKm       decimal.Decimal
	TotalWaitingHours decimal.Decimal
	// TotalDistanceKm is raw distance, for display only.
	TotalDistanceKm decimal.Decimal
	Trips           []PricedTrip
}

type Aggregator struct {
	trips trip.Repository
	rates RateSource
}

func NewAggregator(trips trip.Repository, rates RateSource) *Aggregator {
	return &Aggregator{trips: trips, rates: rates}
}

// Aggregate prices every payable trip of the driver in the period. The tier
// table is only loaded when at least one trip needs it; a month without
// trips yields zero totals.
func (a *Aggregator) Aggregate(ctx context.Context, driverID string, period Period, cfg rate.YearlyConfiguration) (MonthlyTotals, error) {
	trips, err := a.trips.FindCompleted(ctx, driverID, period.Start(), period.End())
	if err != nil {
		return MonthlyTotals{}, err
	}

	payable := make([]trip.CompletedTrip, 0, len(trips))
	needsTiers := false
	for _, t := range trips {
		if !t.IsPayable() {
			continue
		}
		if t.DistanceKm.IsNegative() || t.WaitingHours.IsNegative() {
			return MonthlyTotals{}, payrollerrors.ErrInvalidTripData.WithDetails(map[string]string{"trip_id": t.ID.String()})
		}
		if UsesTiers(t.DistanceKm) {
			needsTiers = true
		}
		payable = append(payable, t)
	}

	book := RateBook{Year: period.Year, Config: cfg}
	if needsTiers {
		tiers, err := a.rates.GetRateTiers(ctx, period.Year)
		if err != nil {
			return MonthlyTotals{}, err
		}
		book.Tiers = rate.NewTierIndex(tiers)
	}

	totals := MonthlyTotals{
		TotalBaseKm:       decimal.Zero,
		TotalWaitingHours: decimal.Zero,
		TotalDistanceKm:   decimal.Zero,
		Trips:             make([]PricedTrip, 0, len(payable)),
	}
	for _, t := range payable {
		base, err := PriceService(t.DistanceKm, book)
		if err != nil {
			return MonthlyTotals{}, err
		}
		totals.TripCount++
		totals.TotalBaseKm = totals.TotalBaseKm.Add(base.BaseAmount)
		totals.TotalWaitingHours = totals.TotalWaitingHours.Add(t.WaitingHours)
		totals.TotalDistanceKm = totals.TotalDistanceKm.Add(t.DistanceKm)
		totals.Trips = append(totals.Trips, PricedTrip{Trip: t, Base: base})
	}
	totals.TotalBaseKm = money.Round2(totals.TotalBaseKm)

	return totals, nil
}
