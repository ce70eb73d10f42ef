package payroll_test

import (
	"context"
	"database/sql"
	"time"

	"go-fleetpay/internal/driver"
	"go-fleetpay/internal/expense"
	"go-fleetpay/internal/ledger"
	"go-fleetpay/internal/messaging/kafka"
	"go-fleetpay/internal/payroll"
	"go-fleetpay/internal/rate"
	"go-fleetpay/internal/trip"
)

type fakePayrollRepository struct {
	withTxFn           func(tx *sql.Tx) payroll.Repository
	createFn           func(ctx context.Context, p *payroll.Payroll) error
	updateFn           func(ctx context.Context, p *payroll.Payroll, expectedVersion int, expectedStatus string) error
	replaceTripLinesFn func(ctx context.Context, payrollID string, lines []payroll.PayrollTripLine) error
	findByIDFn         func(ctx context.Context, id string) (*payroll.Payroll, error)
	findByPeriodFn     func(ctx context.Context, driverID string, period payroll.Period) (*payroll.Payroll, error)
	findPreviousFn     func(ctx context.Context, driverID string, period payroll.Period) (*payroll.Payroll, error)
	findAllFn          func(ctx context.Context, filter payroll.PayrollQueryFilter) ([]payroll.Payroll, error)
	findTripLinesFn    func(ctx context.Context, payrollID string) ([]payroll.PayrollTripLine, error)
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayrollRepository) Create(ctx context.Context, p *payroll.Payroll) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePayrollRepository) Update(ctx context.Context, p *payroll.Payroll, expectedVersion int, expectedStatus string) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p, expectedVersion, expectedStatus)
	}
	return nil
}

func (f *fakePayrollRepository) ReplaceTripLines(ctx context.Context, payrollID string, lines []payroll.PayrollTripLine) error {
	if f.replaceTripLinesFn != nil {
		return f.replaceTripLinesFn(ctx, payrollID, lines)
	}
	return nil
}

func (f *fakePayrollRepository) FindByID(ctx context.Context, id string) (*payroll.Payroll, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindByPeriod(ctx context.Context, driverID string, period payroll.Period) (*payroll.Payroll, error) {
	if f.findByPeriodFn != nil {
		return f.findByPeriodFn(ctx, driverID, period)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindPrevious(ctx context.Context, driverID string, period payroll.Period) (*payroll.Payroll, error) {
	if f.findPreviousFn != nil {
		return f.findPreviousFn(ctx, driverID, period)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindAll(ctx context.Context, filter payroll.PayrollQueryFilter) ([]payroll.Payroll, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindTripLines(ctx context.Context, payrollID string) ([]payroll.PayrollTripLine, error) {
	if f.findTripLinesFn != nil {
		return f.findTripLinesFn(ctx, payrollID)
	}
	return nil, nil
}

type fakeTripRepository struct {
	findCompletedFn func(ctx context.Context, driverID string, from, to time.Time) ([]trip.CompletedTrip, error)
}

func (f *fakeTripRepository) FindCompleted(ctx context.Context, driverID string, from, to time.Time) ([]trip.CompletedTrip, error) {
	if f.findCompletedFn != nil {
		return f.findCompletedFn(ctx, driverID, from, to)
	}
	return nil, nil
}

type fakeExpenseRepository struct {
	getApprovedFn func(ctx context.Context, driverID string, from, to time.Time) ([]expense.Expense, error)
}

func (f *fakeExpenseRepository) GetApproved(ctx context.Context, driverID string, from, to time.Time) ([]expense.Expense, error) {
	if f.getApprovedFn != nil {
		return f.getApprovedFn(ctx, driverID, from, to)
	}
	return nil, nil
}

type fakeLedgerRepository struct {
	getByTypeAndDriverFn func(ctx context.Context, entryType, driverID string, from, to time.Time) ([]ledger.Entry, error)
	postFn               func(ctx context.Context, entry *ledger.Entry) error
}

func (f *fakeLedgerRepository) WithTx(tx *sql.Tx) ledger.Repository {
	return f
}

func (f *fakeLedgerRepository) GetByTypeAndDriver(ctx context.Context, entryType, driverID string, from, to time.Time) ([]ledger.Entry, error) {
	if f.getByTypeAndDriverFn != nil {
		return f.getByTypeAndDriverFn(ctx, entryType, driverID, from, to)
	}
	return nil, nil
}

func (f *fakeLedgerRepository) Post(ctx context.Context, entry *ledger.Entry) error {
	if f.postFn != nil {
		return f.postFn(ctx, entry)
	}
	return nil
}

type fakeDriverRepository struct {
	findByIDFn   func(ctx context.Context, id string) (*driver.Driver, error)
	findActiveFn  func(ctx context.Context, calculationType string) ([]driver.Driver, error)
}

func (f *fakeDriverRepository) FindByID(ctx context.Context, id string) (*driver.Driver, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeDriverRepository) FindActiveByCalculationType(ctx context.Context, calculationType string) ([]driver.Driver, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx, calculationType)
	}
	return nil, nil
}

type fakeRateSource struct {
	getRateTiersFn func(ctx context.Context, year int) ([]rate.RateTier, error)
	getConfigFn    func(ctx context.Context, year int) (rate.YearlyConfiguration, error)
}

func (f *fakeRateSource) GetRateTiers(ctx context.Context, year int) ([]rate.RateTier, error) {
	if f.getRateTiersFn != nil {
		return f.getRateTiersFn(ctx, year)
	}
	return nil, nil
}

func (f *fakeRateSource) GetYearlyConfiguration(ctx context.Context, year int) (rate.YearlyConfiguration, error) {
	if f.getConfigFn != nil {
		return f.getConfigFn(ctx, year)
	}
	return rate.YearlyConfiguration{}, nil
}

type fakeCounterRepository struct {
	next int64
	err  error
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.next++
	return f.next, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func (f *fakeOutboxRepository) PurgeSent(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}
