package payroll_test

import (
	"context"
	"testing"
	"time"

	"go-fleetpay/internal/payroll"
	payrollerrors "go-fleetpay/internal/payroll/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupPayrollRepo(t *testing.T) (payroll.Repository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return payroll.NewRepository(db), mock
}

func TestRepository_UpdateChecksVersionAndStatus(t *testing.T) {
	p := &payroll.Payroll{ID: uuid.New(), DriverID: uuid.New(), Month: 3, Year: 2026, Status: payroll.StatusConfirmed, Version: 5}

	t.Run("stale version", func(t *testing.T) {
		repo, mock := setupPayrollRepo(t)
		mock.ExpectExec(`UPDATE "payroll_records" SET .* WHERE \(?id = \$\d+ AND version = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), p, 4, payroll.StatusDraft)

		assert.ErrorIs(t, err, payrollerrors.ErrConcurrentUpdate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("matching row", func(t *testing.T) {
		repo, mock := setupPayrollRepo(t)
		mock.ExpectExec(`UPDATE "payroll_records" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), p, 4, payroll.StatusDraft)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByPeriodMissing(t *testing.T) {
	repo, mock := setupPayrollRepo(t)
	driverID := uuid.NewString()
	mock.ExpectQuery(`SELECT \* FROM "payroll_records" WHERE driver_id = \$1 AND month = \$2 AND year = \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	p, err := repo.FindPrevious(context.Background(), driverID, payroll.Period{Month: 1, Year: 2026})

	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceTripLinesWithoutLines(t *testing.T) {
	repo, mock := setupPayrollRepo(t)
	mock.ExpectExec(`DELETE FROM "payroll_trip_lines" WHERE payroll_id = \$1`).
		WithArgs("p-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.ReplaceTripLines(context.Background(), "p-1", nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceTripLinesInsertsAuditColumns(t *testing.T) {
	repo, mock := setupPayrollRepo(t)
	payrollID := uuid.New()
	rounded := 20
	lines := []payroll.PayrollTripLine{{
		PayrollID:    payrollID,
		TripID:       uuid.New(),
		ServiceDate:  time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		DistanceKm:   decimal.RequireFromString("18.40"),
		WaitingHours: decimal.RequireFromString("0.50"),
		RoundedKm:    &rounded,
		Mode:         payroll.ModeTiered,
		BaseAmount:   decimal.RequireFromString("22.50"),
		Explanation:  "rounded 18.40 km up to the 20 km tier",
	}}

	mock.ExpectExec(`DELETE FROM "payroll_trip_lines" WHERE payroll_id = \$1`).
		WithArgs(payrollID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "payroll_trip_lines" \("payroll_id","trip_id","service_date","distance_km","waiting_hours","rounded_km","mode","base_amount","explanation","created_at"\) VALUES .* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))

	err := repo.ReplaceTripLines(context.Background(), payrollID.String(), lines)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
