package payroll

import (
	"context"
	"fmt"

	"go-fleetpay/internal/expense"
	"go-fleetpay/internal/ledger"
	payrollerrors "go-fleetpay/internal/payroll/errors"
	"go-fleetpay/internal/shared/apperror"
	"go-fleetpay/internal/shared/money"
	"go-fleetpay/internal/trip"

	"github.com/shopspring/decimal"
)

type DeductionBreakdown struct {
	PersonalExpensesTotal     decimal.Decimal
	WithdrawalsTotal          decimal.Decimal
	ConvertedCollectionsTotal decimal.Decimal
	CashCollectedTotal        decimal.Decimal
	CarryOverPreviousMonth    decimal.Decimal
}

// PreviousRecordSource finds the record of the month before a period.
type PreviousRecordSource interface {
	FindPrevious(ctx context.Context, driverID string, period Period) (*Payroll, error)
}

type DeductionResolver struct {
	trips    trip.Repository
	expenses expense.Repository
	ledger   ledger.Repository
	previous PreviousRecordSource
}

func NewDeductionResolver(
	trips trip.Repository,
	expenses expense.Repository,
	ledgerRepo ledger.Repository,
	previous PreviousRecordSource,
) *DeductionResolver {
	return &DeductionResolver{trips: trips, expenses: expenses, ledger: ledgerRepo, previous: previous}
}

// Resolve gathers the monthly adjustments of a partner driver. Empty sources
// give zero; any data access fault is reported as ErrDeductionResolution.
func (r *DeductionResolver) Resolve(ctx context.Context, driverID string, period Period) (DeductionBreakdown, error) {
	from, to := period.Start(), period.End()
	var out DeductionBreakdown

	expenses, err := r.expenses.GetApproved(ctx, driverID, from, to)
	if err != nil {
		return DeductionBreakdown{}, deductionError("personal expenses", err)
	}
	out.PersonalExpensesTotal = decimal.Zero
	for _, e := range expenses {
		out.PersonalExpensesTotal = out.PersonalExpensesTotal.Add(e.Amount)
	}

	out.WithdrawalsTotal, err = r.ledgerTotal(ctx, ledger.TypeWithdrawal, driverID, period)
	if err != nil {
		return DeductionBreakdown{}, deductionError("withdrawals", err)
	}

	out.ConvertedCollectionsTotal, err = r.ledgerTotal(ctx, ledger.TypeCollection, driverID, period)
	if err != nil {
		return DeductionBreakdown{}, deductionError("collections", err)
	}

	trips, err := r.trips.FindCompleted(ctx, driverID, from, to)
	if err != nil {
		return DeductionBreakdown{}, deductionError("cash collected", err)
	}
	out.CashCollectedTotal = decimal.Zero
	for _, t := range trips {
		if t.IsPayable() && t.PaidInCash() {
			out.CashCollectedTotal = out.CashCollectedTotal.Add(money.OrZero(t.CashCollectedAmount))
		}
	}

	prev, err := r.previous.FindPrevious(ctx, driverID, period)
	if err != nil {
		return DeductionBreakdown{}, deductionError("carry over", err)
	}
	out.CarryOverPreviousMonth = carryOver(prev)

	out.PersonalExpensesTotal = money.Round2(out.PersonalExpensesTotal)
	out.CashCollectedTotal = money.Round2(out.CashCollectedTotal)
	return out, nil
}

func (r *DeductionResolver) ledgerTotal(ctx context.Context, entryType, driverID string, period Period) (decimal.Decimal, error) {
	entries, err := r.ledger.GetByTypeAndDriver(ctx, entryType, driverID, period.Start(), period.End())
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return money.Round2(total), nil
}

// carryOver only trusts closed months: a draft may still change.
func carryOver(prev *Payroll) decimal.Decimal {
	if prev == nil {
		return decimal.Zero
	}
	if prev.Status != StatusConfirmed && prev.Status != StatusPaid {
		return decimal.Zero
	}
	return prev.NetTotal
}

func deductionError(source string, err error) error {
	return apperror.Because(payrollerrors.ErrDeductionResolution, fmt.Errorf("%s: %w", source, err))
}
