package expense_test

import (
	"context"
	"testing"
	"time"

	"go-fleetpay/internal/expense"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_GetApproved(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	driverID := uuid.New()
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "driver_expenses" WHERE status = \$1 AND driver_id = \$2 AND \(expense_date BETWEEN \$3 AND \$4\) ORDER BY expense_date ASC`).
		WithArgs(expense.StatusApproved, driverID.String(), "2026-02-01", "2026-02-28").
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_id", "amount", "status", "expense_date"}).
			AddRow(uuid.New(), driverID, "12.30", expense.StatusApproved, from.AddDate(0, 0, 4)).
			AddRow(uuid.New(), driverID, "7.70", expense.StatusApproved, from.AddDate(0, 0, 20)))

	rows, err := expense.NewRepository(db).GetApproved(context.Background(), driverID.String(), from, to)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
