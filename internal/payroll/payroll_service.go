package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-fleetpay/internal/driver"
	"go-fleetpay/internal/events"
	"go-fleetpay/internal/ledger"
	"go-fleetpay/internal/messaging/kafka"
	payrollerrors "go-fleetpay/internal/payroll/errors"
	"go-fleetpay/internal/shared/apperror"
	"go-fleetpay/internal/shared/contextutil"
	"go-fleetpay/internal/shared/counter"
	"go-fleetpay/internal/shared/keylock"
	"go-fleetpay/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const systemActor = "system"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	GetBreakdown(ctx context.Context, id string) (PayrollBreakdownResponse, error)
	Preview(ctx context.Context, req PreviewPayrollRequest) (PayrollBreakdownResponse, error)
	Recalculate(ctx context.Context, actorID, id string, req RecalculatePayrollRequest) (PayrollResponse, error)
	Confirm(ctx context.Context, actorID, id string) (PayrollResponse, error)
	MarkAsPaid(ctx context.Context, actorID, id string) (PayrollResponse, error)
	BatchRecompute(ctx context.Context, actorID string, req BatchRecomputeRequest) (BatchRecomputeResponse, error)
	RequestBatch(ctx context.Context, actorID string, req BatchRecomputeRequest) (BatchRequestedResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	engine  *Engine
	drivers driver.Repository
	ledger  ledger.Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	locker  keylock.Locker
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	engine *Engine,
	drivers driver.Repository,
	ledgerRepo ledger.Repository,
	counter counter.Repository,
	locker keylock.Locker,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, engine, drivers, ledgerRepo, counter, nil, locker, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	engine *Engine,
	drivers driver.Repository,
	ledgerRepo ledger.Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	locker keylock.Locker,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if locker == nil {
		locker = keylock.New(nil, 0)
	}
	return &service{
		db:      db,
		repo:    repo,
		engine:  engine,
		drivers: drivers,
		ledger:  ledgerRepo,
		counter: counter,
		outbox:  outboxRepo,
		locker:  locker,
		logger:  l,
		now:     time.Now,
	}
}

func (s *service) Create(
	ctx context.Context,
	actorID string,
	req CreatePayrollRequest,
) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create payroll requested",
		zap.String("request_id", rid),
		zap.String("driver_id", req.DriverID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	period, err := NewPeriod(req.Month, req.Year)
	if err != nil {
		return PayrollResponse{}, err
	}
	workedHours, err := parseHours(req.WorkedHoursTotal)
	if err != nil {
		return PayrollResponse{}, err
	}
	drv, err := s.findDriver(ctx, req.DriverID)
	if err != nil {
		return PayrollResponse{}, err
	}

	release, err := s.locker.Acquire(ctx, lockKey(req.DriverID, period))
	if err != nil {
		return PayrollResponse{}, err
	}
	defer release()

	existing, err := s.repo.FindByPeriod(ctx, req.DriverID, period)
	if err != nil {
		return PayrollResponse{}, err
	}
	if existing != nil {
		return PayrollResponse{}, payrollerrors.ErrDuplicateRecord.WithDetails(map[string]string{
			"payroll_id": existing.ID.String(),
			"period":     period.String(),
		})
	}

	p, err := s.createRecord(ctx, actorOrSystem(actorID), *drv, period, workedHours, req.Notes)
	if err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) GetAll(
	ctx context.Context,
	filterReq GetPayrollsFilterRequest,
) ([]PayrollResponse, error) {
	filter, err := buildQueryFilter(filterReq)
	if err != nil {
		return nil, err
	}

	payrolls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	p, err := s.findPayroll(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) GetBreakdown(ctx context.Context, id string) (PayrollBreakdownResponse, error) {
	p, err := s.findPayroll(ctx, id)
	if err != nil {
		return PayrollBreakdownResponse{}, err
	}

	lines, err := s.repo.FindTripLines(ctx, id)
	if err != nil {
		return PayrollBreakdownResponse{}, err
	}

	return PayrollBreakdownResponse{
		Payroll: mapToResponse(*p),
		Trips:   mapToTripLineResponses(lines),
	}, nil
}

// Preview runs the full computation without persisting anything.
func (s *service) Preview(ctx context.Context, req PreviewPayrollRequest) (PayrollBreakdownResponse, error) {
	period, err := NewPeriod(req.Month, req.Year)
	if err != nil {
		return PayrollBreakdownResponse{}, err
	}
	workedHours, err := parseHours(req.WorkedHoursTotal)
	if err != nil {
		return PayrollBreakdownResponse{}, err
	}
	drv, err := s.findDriver(ctx, req.DriverID)
	if err != nil {
		return PayrollBreakdownResponse{}, err
	}

	b, err := s.engine.Compute(ctx, *drv, period, workedHours)
	if err != nil {
		return PayrollBreakdownResponse{}, err
	}

	p := Payroll{
		DriverID: drv.ID,
		Month:    period.Month,
		Year:     period.Year,
		Driver:   &PayrollDriver{ID: drv.ID, FullName: drv.FullName},
	}
	applyBreakdown(&p, b)

	return PayrollBreakdownResponse{
		Payroll: mapToResponse(p),
		Trips:   mapToTripLineResponses(buildTripLines(uuid.Nil, b)),
	}, nil
}

func (s *service) Recalculate(
	ctx context.Context,
	actorID, id string,
	req RecalculatePayrollRequest,
) (PayrollResponse, error) {
	p, err := s.findPayroll(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if p.Status != StatusDraft {
		return PayrollResponse{}, payrollerrors.ErrImmutableRecord.WithDetails(map[string]string{"status": p.Status})
	}

	workedHours := p.WorkedHoursTotal
	if req.WorkedHoursTotal != nil {
		workedHours, err = parseHours(req.WorkedHoursTotal)
		if err != nil {
			return PayrollResponse{}, err
		}
	}

	drv, err := s.findDriver(ctx, p.DriverID.String())
	if err != nil {
		return PayrollResponse{}, err
	}

	release, err := s.locker.Acquire(ctx, lockKey(p.DriverID.String(), p.Period()))
	if err != nil {
		return PayrollResponse{}, err
	}
	defer release()

	updated, err := s.recalculateRecord(ctx, actorOrSystem(actorID), p, *drv, workedHours, req.Notes)
	if err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*updated), nil
}

func (s *service) Confirm(ctx context.Context, actorID, id string) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	actor := actorOrSystem(actorID)

	p, err := s.findPayroll(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if p.Status != StatusDraft {
		return PayrollResponse{}, invalidTransition(p.Status, StatusConfirmed)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	now := s.now().UTC()
	expected := p.Version
	p.Status = StatusConfirmed
	p.ConfirmedBy = &actor
	p.ConfirmedAt = &now
	p.Version = expected + 1

	if err := s.repo.WithTx(tx).Update(ctx, p, expected, StatusDraft); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("confirm payroll commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll confirmed",
		zap.String("request_id", rid),
		zap.String("payroll_id", id),
		zap.String("actor", actor),
	)
	return mapToResponse(*p), nil
}

// MarkAsPaid flips a confirmed record to paid, posts the matching ledger
// expense and queues the payroll_paid event in a single transaction.
func (s *service) MarkAsPaid(ctx context.Context, actorID, id string) (PayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	actor := actorOrSystem(actorID)

	p, err := s.findPayroll(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if p.Status != StatusConfirmed {
		return PayrollResponse{}, invalidTransition(p.Status, StatusPaid)
	}

	seq, err := s.counter.GetNextValue(ctx, counter.TypeLedgerPayrollExpense)
	if err != nil {
		return PayrollResponse{}, s.ledgerFailure(rid, id, "generate ledger number", err)
	}

	now := s.now().UTC()
	refType := ledger.ReferencePayroll
	payrollID := p.ID
	driverID := p.DriverID
	entry := &ledger.Entry{
		ID:            uuid.New(),
		Number:        fmt.Sprintf("PAY-%04d%02d-%06d", p.Year, p.Month, seq),
		EntryType:     ledger.TypeExpense,
		DriverID:      &driverID,
		Amount:        p.NetTotal,
		EntryDate:     now,
		Description:   fmt.Sprintf("Driver payroll %s %s", driverName(*p), p.Period().String()),
		ReferenceType: &refType,
		ReferenceID:   &payrollID,
		CreatedBy:     actor,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, s.ledgerFailure(rid, id, "begin tx", err)
	}
	defer tx.Rollback()

	if err := s.ledger.WithTx(tx).Post(ctx, entry); err != nil {
		return PayrollResponse{}, s.ledgerFailure(rid, id, "post ledger entry", err)
	}

	expected := p.Version
	p.Status = StatusPaid
	p.PaidBy = &actor
	p.PaidAt = &now
	p.LedgerEntryID = &entry.ID
	p.Version = expected + 1

	if err := s.repo.WithTx(tx).Update(ctx, p, expected, StatusConfirmed); err != nil {
		if errors.Is(err, payrollerrors.ErrConcurrentUpdate) {
			return PayrollResponse{}, err
		}
		return PayrollResponse{}, s.ledgerFailure(rid, id, "update payroll", err)
	}

	if s.outbox != nil {
		event := events.PayrollPaidEvent{
			EventType:     events.PayrollPaidEventType,
			RequestID:     rid,
			PayrollID:     p.ID.String(),
			DriverID:      p.DriverID.String(),
			Month:         p.Month,
			Year:          p.Year,
			NetTotal:      p.NetTotal.StringFixed(money.Scale),
			LedgerEntryID: entry.ID.String(),
			LedgerNumber:  entry.Number,
			PaidBy:        actor,
			OccurredAt:    now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return PayrollResponse{}, s.ledgerFailure(rid, id, "marshal event", err)
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll",
			AggregateID:   p.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayrollPaidTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return PayrollResponse{}, s.ledgerFailure(rid, id, "outbox persist", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, s.ledgerFailure(rid, id, "commit", err)
	}

	s.logger.Info("payroll paid",
		zap.String("request_id", rid),
		zap.String("payroll_id", id),
		zap.String("ledger_number", entry.Number),
		zap.String("net_total", p.NetTotal.StringFixed(money.Scale)),
	)
	return mapToResponse(*p), nil
}

// BatchRecompute upserts the draft payroll of every active partner driver.
// A failing driver is reported and the batch moves on; a cancelled context
// stops the batch between drivers.
func (s *service) BatchRecompute(
	ctx context.Context,
	actorID string,
	req BatchRecomputeRequest,
) (BatchRecomputeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	actor := actorOrSystem(actorID)

	period, err := NewPeriod(req.Month, req.Year)
	if err != nil {
		return BatchRecomputeResponse{}, err
	}

	drivers, err := s.drivers.FindActiveByCalculationType(ctx, driver.CalculationPartner)
	if err != nil {
		return BatchRecomputeResponse{}, err
	}

	resp := BatchRecomputeResponse{
		Month:   period.Month,
		Year:    period.Year,
		Results: make([]BatchDriverResult, 0, len(drivers)),
	}

	for _, d := range drivers {
		if ctx.Err() != nil {
			resp.Interrupted = true
			s.logger.Warn("payroll batch interrupted",
				zap.String("request_id", rid),
				zap.String("period", period.String()),
				zap.Int("processed", resp.Processed),
				zap.Error(ctx.Err()),
			)
			break
		}

		result := s.recomputeDriver(ctx, actor, d, period)
		resp.Processed++
		switch result.Outcome {
		case BatchOutcomeCreated:
			resp.Created++
		case BatchOutcomeRecalculated:
			resp.Recalculated++
		case BatchOutcomeSkipped:
			resp.Skipped++
		default:
			resp.Failed++
		}
		resp.Results = append(resp.Results, result)
	}

	s.logger.Info("payroll batch finished",
		zap.String("request_id", rid),
		zap.String("period", period.String()),
		zap.Int("drivers", len(drivers)),
		zap.Int("created", resp.Created),
		zap.Int("recalculated", resp.Recalculated),
		zap.Int("skipped", resp.Skipped),
		zap.Int("failed", resp.Failed),
	)
	return resp, nil
}

// RequestBatch queues a batch recompute for the consumer instead of running
// it inline.
func (s *service) RequestBatch(
	ctx context.Context,
	actorID string,
	req BatchRecomputeRequest,
) (BatchRequestedResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	period, err := NewPeriod(req.Month, req.Year)
	if err != nil {
		return BatchRequestedResponse{}, err
	}
	if s.outbox == nil {
		return BatchRequestedResponse{}, payrollerrors.ErrBatchQueueUnavailable
	}

	event := events.PayrollBatchRequestedEvent{
		EventType:   events.PayrollBatchRequestedEventType,
		RequestID:   rid,
		Month:       period.Month,
		Year:        period.Year,
		RequestedBy: actorOrSystem(actorID),
		OccurredAt:  s.now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return BatchRequestedResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BatchRequestedResponse{}, err
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll_batch",
		AggregateID:   period.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollBatchRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("request payroll batch outbox persist failed", zap.String("request_id", rid), zap.Error(err))
		return BatchRequestedResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return BatchRequestedResponse{}, err
	}

	return BatchRequestedResponse{Month: period.Month, Year: period.Year, RequestID: rid}, nil
}

func (s *service) recomputeDriver(ctx context.Context, actor string, d driver.Driver, period Period) BatchDriverResult {
	result := BatchDriverResult{DriverID: d.ID.String(), DriverName: d.FullName}
	fail := func(err error) BatchDriverResult {
		contextutil.Logger(ctx, s.logger).Warn("payroll batch driver failed",
			zap.String("driver_id", result.DriverID),
			zap.String("period", period.String()),
			zap.Error(err),
		)
		result.Outcome = BatchOutcomeFailed
		result.Message = err.Error()
		return result
	}

	release, err := s.locker.Acquire(ctx, lockKey(result.DriverID, period))
	if err != nil {
		return fail(err)
	}
	defer release()

	existing, err := s.repo.FindByPeriod(ctx, result.DriverID, period)
	if err != nil {
		return fail(err)
	}

	switch {
	case existing == nil:
		p, err := s.createRecord(ctx, actor, d, period, decimal.NullDecimal{}, nil)
		if err != nil {
			return fail(err)
		}
		result.Outcome = BatchOutcomeCreated
		result.PayrollID = p.ID.String()
	case existing.Status != StatusDraft:
		result.Outcome = BatchOutcomeSkipped
		result.PayrollID = existing.ID.String()
		result.Message = "payroll is " + existing.Status
	default:
		p, err := s.recalculateRecord(ctx, actor, existing, d, existing.WorkedHoursTotal, nil)
		if err != nil {
			return fail(err)
		}
		result.Outcome = BatchOutcomeRecalculated
		result.PayrollID = p.ID.String()
	}

	return result
}

// createRecord computes and inserts a new draft. Callers hold the period lock.
func (s *service) createRecord(
	ctx context.Context,
	actor string,
	drv driver.Driver,
	period Period,
	workedHours decimal.NullDecimal,
	notes *string,
) (*Payroll, error) {
	rid := contextutil.GetRequestID(ctx)

	b, err := s.engine.Compute(ctx, drv, period, workedHours)
	if err != nil {
		contextutil.Logger(ctx, s.logger).Warn("payroll computation failed",
			zap.String("driver_id", drv.ID.String()),
			zap.String("period", period.String()),
			zap.Error(err),
		)
		return nil, err
	}

	p := &Payroll{
		ID:        uuid.New(),
		DriverID:  drv.ID,
		Month:     period.Month,
		Year:      period.Year,
		Status:    StatusDraft,
		Notes:     notes,
		CreatedBy: actor,
		Version:   1,
	}
	applyBreakdown(p, b)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("create payroll persist failed", zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if err := qtx.ReplaceTripLines(ctx, p.ID.String(), buildTripLines(p.ID, b)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create payroll commit failed", zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	p.Driver = &PayrollDriver{ID: drv.ID, FullName: drv.FullName}
	return p, nil
}

// recalculateRecord overwrites a draft with a fresh computation. Callers hold
// the period lock; the version check catches writers that bypass it.
func (s *service) recalculateRecord(
	ctx context.Context,
	actor string,
	p *Payroll,
	drv driver.Driver,
	workedHours decimal.NullDecimal,
	notes *string,
) (*Payroll, error) {
	b, err := s.engine.Compute(ctx, drv, p.Period(), workedHours)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	expected := p.Version
	applyBreakdown(p, b)
	if notes != nil {
		p.Notes = notes
	}
	p.Version = expected + 1

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, p, expected, StatusDraft); err != nil {
		return nil, mapRepositoryError(err)
	}
	if err := qtx.ReplaceTripLines(ctx, p.ID.String(), buildTripLines(p.ID, b)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	contextutil.Logger(ctx, s.logger).Info("payroll recalculated",
		zap.String("payroll_id", p.ID.String()),
		zap.String("actor", actor),
		zap.String("net_total", p.NetTotal.StringFixed(money.Scale)),
	)
	return p, nil
}

func (s *service) findPayroll(ctx context.Context, id string) (*Payroll, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrInvalidPayrollID
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if p == nil {
		return nil, payrollerrors.ErrPayrollNotFound
	}
	return p, nil
}

func (s *service) findDriver(ctx context.Context, id string) (*driver.Driver, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrInvalidDriverID
	}
	drv, err := s.drivers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if drv == nil {
		return nil, payrollerrors.ErrDriverNotFound
	}
	return drv, nil
}

func (s *service) ledgerFailure(rid, payrollID, step string, err error) error {
	s.logger.Error("mark payroll paid failed",
		zap.String("request_id", rid),
		zap.String("payroll_id", payrollID),
		zap.String("step", step),
		zap.Error(err),
	)
	return apperror.Because(payrollerrors.ErrLedgerPostFailure, fmt.Errorf("%s: %w", step, err))
}

func applyBreakdown(p *Payroll, b Breakdown) {
	p.CalculationType = b.CalculationType
	p.TripCount = b.Totals.TripCount
	p.DistanceKmTotal = money.Round2(b.Totals.TotalDistanceKm)
	p.WaitingHoursTotal = money.Round2(b.Totals.TotalWaitingHours)
	p.WorkedHoursTotal = b.WorkedHours
	p.HourlyRate = b.HourlyRate
	p.GrossTotal = b.GrossTotal
	p.NetTotal = b.NetTotal

	if b.CalculationType != CalculationPartner || b.Config == nil || b.Deductions == nil {
		p.UpliftCoefficient = money.Absent()
		p.HourlyWaitingRate = money.Absent()
		p.BaseAmount = money.Absent()
		p.UpliftedBase = money.Absent()
		p.WaitingAmount = money.Absent()
		p.PersonalExpensesTotal = money.Absent()
		p.WithdrawalsTotal = money.Absent()
		p.ConvertedCollectionsTotal = money.Absent()
		p.CashCollectedTotal = money.Absent()
		p.CarryOverPreviousMonth = money.Absent()
		return
	}

	p.UpliftCoefficient = money.Present(b.Config.UpliftCoefficient)
	p.HourlyWaitingRate = money.Present(b.Config.HourlyWaitingRate)
	p.BaseAmount = money.Present(b.BaseAmount)
	p.UpliftedBase = money.Present(b.UpliftedBase)
	p.WaitingAmount = money.Present(b.WaitingAmount)
	p.PersonalExpensesTotal = money.Present(b.Deductions.PersonalExpensesTotal)
	p.WithdrawalsTotal = money.Present(b.Deductions.WithdrawalsTotal)
	p.ConvertedCollectionsTotal = money.Present(b.Deductions.ConvertedCollectionsTotal)
	p.CashCollectedTotal = money.Present(b.Deductions.CashCollectedTotal)
	p.CarryOverPreviousMonth = money.Present(b.Deductions.CarryOverPreviousMonth)
}

func buildTripLines(payrollID uuid.UUID, b Breakdown) []PayrollTripLine {
	lines := make([]PayrollTripLine, 0, len(b.Totals.Trips))
	for _, t := range b.Totals.Trips {
		lines = append(lines, PayrollTripLine{
			ID:           uuid.New(),
			PayrollID:    payrollID,
			TripID:       t.Trip.ID,
			ServiceDate:  t.Trip.ServiceDate,
			DistanceKm:   t.Trip.DistanceKm,
			WaitingHours: t.Trip.WaitingHours,
			RoundedKm:    t.Base.RoundedKm,
			Mode:         t.Base.Mode,
			BaseAmount:   t.Base.BaseAmount,
			Explanation:  t.Base.Explanation,
		})
	}
	return lines
}

func buildQueryFilter(req GetPayrollsFilterRequest) (PayrollQueryFilter, error) {
	var filter PayrollQueryFilter

	if req.Period != "" {
		period, err := ParsePeriod(req.Period)
		if err != nil {
			return PayrollQueryFilter{}, err
		}
		filter.Month = &period.Month
		filter.Year = &period.Year
	}

	if req.Status != "" {
		status := strings.ToUpper(strings.TrimSpace(req.Status))
		switch status {
		case StatusDraft, StatusConfirmed, StatusPaid:
			filter.Status = &status
		default:
			return PayrollQueryFilter{}, payrollerrors.ErrInvalidStatusFilter
		}
	}

	if req.DriverID != "" {
		if _, err := uuid.Parse(req.DriverID); err != nil {
			return PayrollQueryFilter{}, payrollerrors.ErrInvalidDriverID
		}
		driverID := req.DriverID
		filter.DriverID = &driverID
	}

	return filter, nil
}

func parseHours(v *string) (decimal.NullDecimal, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return money.Absent(), nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*v))
	if err != nil || d.IsNegative() {
		return decimal.NullDecimal{}, payrollerrors.ErrInvalidHours
	}
	return money.Present(d), nil
}

func invalidTransition(from, to string) error {
	return payrollerrors.ErrInvalidTransition.WithDetails(map[string]string{"from": from, "to": to})
}

func actorOrSystem(actorID string) string {
	if strings.TrimSpace(actorID) == "" {
		return systemActor
	}
	return actorID
}

func driverName(p Payroll) string {
	if p.Driver != nil && p.Driver.FullName != "" {
		return p.Driver.FullName
	}
	return p.DriverID.String()
}

func formatNull(v decimal.NullDecimal, fixed bool) *string {
	if !v.Valid {
		return nil
	}
	s := v.Decimal.String()
	if fixed {
		s = v.Decimal.StringFixed(money.Scale)
	}
	return &s
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		DriverID:          p.DriverID.String(),
		Month:             p.Month,
		Year:              p.Year,
		Period:            p.Period().String(),
		CalculationType:   p.CalculationType,
		TripCount:         p.TripCount,
		DistanceKmTotal:   p.DistanceKmTotal.StringFixed(money.Scale),
		WaitingHoursTotal: p.WaitingHoursTotal.StringFixed(money.Scale),
		WorkedHoursTotal:  formatNull(p.WorkedHoursTotal, true),
		HourlyRate:        formatNull(p.HourlyRate, true),
		UpliftCoefficient: formatNull(p.UpliftCoefficient, false),
		HourlyWaitingRate: formatNull(p.HourlyWaitingRate, true),
		BaseAmount:        formatNull(p.BaseAmount, true),
		UpliftedBase:      formatNull(p.UpliftedBase, true),
		WaitingAmount:     formatNull(p.WaitingAmount, true),
		GrossTotal:        p.GrossTotal.StringFixed(money.Scale),
		NetTotal:          p.NetTotal.StringFixed(money.Scale),
		Status:            p.Status,
		Notes:             p.Notes,
		CreatedBy:         p.CreatedBy,
		ConfirmedBy:       p.ConfirmedBy,
		ConfirmedAt:       formatTime(p.ConfirmedAt),
		PaidBy:            p.PaidBy,
		PaidAt:            formatTime(p.PaidAt),
		Version:           p.Version,
	}

	if p.ID != uuid.Nil {
		resp.ID = p.ID.String()
	}
	if p.Driver != nil {
		resp.DriverName = p.Driver.FullName
	}
	if p.LedgerEntryID != nil {
		v := p.LedgerEntryID.String()
		resp.LedgerEntryID = &v
	}
	if p.PersonalExpensesTotal.Valid {
		resp.Deductions = &DeductionResponse{
			PersonalExpensesTotal:     money.OrZero(p.PersonalExpensesTotal).StringFixed(money.Scale),
			WithdrawalsTotal:          money.OrZero(p.WithdrawalsTotal).StringFixed(money.Scale),
			ConvertedCollectionsTotal: money.OrZero(p.ConvertedCollectionsTotal).StringFixed(money.Scale),
			CashCollectedTotal:        money.OrZero(p.CashCollectedTotal).StringFixed(money.Scale),
			CarryOverPreviousMonth:    money.OrZero(p.CarryOverPreviousMonth).StringFixed(money.Scale),
		}
	}

	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapToResponse(p)
	}
	return resp
}

func mapToTripLineResponses(lines []PayrollTripLine) []TripLineResponse {
	resp := make([]TripLineResponse, len(lines))
	for i, l := range lines {
		resp[i] = TripLineResponse{
			TripID:       l.TripID.String(),
			ServiceDate:  l.ServiceDate.Format("2006-01-02"),
			DistanceKm:   l.DistanceKm.String(),
			WaitingHours: l.WaitingHours.String(),
			RoundedKm:    l.RoundedKm,
			Mode:         l.Mode,
			BaseAmount:   l.BaseAmount.StringFixed(money.Scale),
			Explanation:  l.Explanation,
		}
	}
	return resp
}
