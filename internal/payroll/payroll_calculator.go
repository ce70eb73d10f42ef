package payroll

import (
	"context"

	"go-fleetpay/internal/driver"
	payrollerrors "go-fleetpay/internal/payroll/errors"
	"go-fleetpay/internal/rate"
	"go-fleetpay/internal/shared/money"

	"github.com/shopspring/decimal"
)

// Breakdown is a fully computed payroll, before it is persisted.
type Breakdown struct {
	CalculationType string
	Period          Period

	// Partner
	Totals        MonthlyTotals
	Config        *rate.YearlyConfiguration
	BaseAmount    decimal.Decimal
	UpliftedBase  decimal.Decimal
	WaitingAmount decimal.Decimal
	Deductions    *DeductionBreakdown

	// Employee
	WorkedHours decimal.NullDecimal
	HourlyRate  decimal.NullDecimal

	GrossTotal decimal.Decimal
	NetTotal   decimal.Decimal
}

// NetTotal applies the monthly adjustments to a gross amount. Expenses are
// reimbursed; everything else was already received by the driver.
func NetTotal(gross decimal.Decimal, d DeductionBreakdown) decimal.Decimal {
	return gross.
		Add(d.PersonalExpensesTotal).
		Sub(d.WithdrawalsTotal).
		Sub(d.ConvertedCollectionsTotal).
		Sub(d.CashCollectedTotal).
		Sub(d.CarryOverPreviousMonth)
}

func CalculatePartner(period Period, totals MonthlyTotals, deductions DeductionBreakdown, cfg rate.YearlyConfiguration) Breakdown {
	uplifted := money.Round2(totals.TotalBaseKm.Mul(cfg.UpliftCoefficient))
	waiting := money.Round2(totals.TotalWaitingHours.Mul(cfg.HourlyWaitingRate))
	gross := uplifted.Add(waiting)

	return Breakdown{
		CalculationType: CalculationPartner,
		Period:          period,
		Totals:          totals,
		Config:          &cfg,
		BaseAmount:      totals.TotalBaseKm,
		UpliftedBase:    uplifted,
		WaitingAmount:   waiting,
		Deductions:      &deductions,
		GrossTotal:      gross,
		NetTotal:        NetTotal(gross, deductions),
	}
}

func CalculateEmployee(period Period, workedHours, hourlyRate decimal.Decimal) Breakdown {
	gross := money.Round2(workedHours.Mul(hourlyRate))
	return Breakdown{
		CalculationType: CalculationEmployee,
		Period:          period,
		WorkedHours:     money.Present(workedHours),
		HourlyRate:      money.Present(hourlyRate),
		GrossTotal:      gross,
		NetTotal:        gross,
	}
}

// Engine runs the full monthly computation for one driver.
type Engine struct {
	rates      RateSource
	aggregator *Aggregator
	deductions *DeductionResolver
}

func NewEngine(rates RateSource, aggregator *Aggregator, deductions *DeductionResolver) *Engine {
	return &Engine{rates: rates, aggregator: aggregator, deductions: deductions}
}

// Compute prices a driver's month. workedHours is only read for employee
// drivers. Configuration and rate table errors are returned unmodified.
func (e *Engine) Compute(ctx context.Context, drv driver.Driver, period Period, workedHours decimal.NullDecimal) (Breakdown, error) {
	if !drv.IsPartner() {
		if !workedHours.Valid {
			return Breakdown{}, payrollerrors.ErrWorkedHoursRequired
		}
		if !drv.HourlyRate.Valid {
			return Breakdown{}, payrollerrors.ErrHourlyRateMissing.WithDetails(map[string]string{"driver_id": drv.ID.String()})
		}
		return CalculateEmployee(period, workedHours.Decimal, drv.HourlyRate.Decimal), nil
	}

	cfg, err := e.rates.GetYearlyConfiguration(ctx, period.Year)
	if err != nil {
		return Breakdown{}, err
	}

	driverID := drv.ID.String()
	totals, err := e.aggregator.Aggregate(ctx, driverID, period, cfg)
	if err != nil {
		return Breakdown{}, err
	}

	deductions, err := e.deductions.Resolve(ctx, driverID, period)
	if err != nil {
		return Breakdown{}, err
	}

	return CalculatePartner(period, totals, deductions, cfg), nil
}
