package trip_test

import (
	"context"
	"testing"
	"time"

	"go-fleetpay/internal/trip"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_FindCompleted(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	driverID := uuid.New()
	tripID := uuid.New()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "assigned_driver_id", "distance_km", "waiting_hours", "service_date", "state", "payment_method", "cash_collected_amount"}).
		AddRow(tripID, driverID, "18.00", "0.50", from.AddDate(0, 0, 3), trip.StateCompleted, trip.PaymentCash, "40.00")

	mock.ExpectQuery(`SELECT \* FROM "trips" WHERE state IN \(\$1,\$2\) AND assigned_driver_id = \$3 AND \(service_date BETWEEN \$4 AND \$5\)`).
		WithArgs(trip.StateCompleted, trip.StateSettled, driverID.String(), "2026-03-01", "2026-03-31").
		WillReturnRows(rows)

	trips, err := trip.NewRepository(db).FindCompleted(context.Background(), driverID.String(), from, to)

	assert.NoError(t, err)
	if assert.Len(t, trips, 1) {
		assert.Equal(t, "18", trips[0].DistanceKm.String())
		assert.True(t, trips[0].PaidInCash())
		assert.Equal(t, "40", trips[0].CashCollectedAmount.Decimal.String())
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
