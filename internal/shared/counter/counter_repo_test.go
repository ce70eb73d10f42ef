package counter_test

import (
	"context"
	"errors"
	"testing"

	"go-fleetpay/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_GetNextValue(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	repo := counter.NewRepository(db)

	mock.ExpectQuery(`INSERT INTO document_counters`).
		WithArgs(counter.TypeLedgerPayrollExpense).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(7)))

	n, err := repo.GetNextValue(context.Background(), counter.TypeLedgerPayrollExpense)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), n)

	mock.ExpectQuery(`INSERT INTO document_counters`).
		WillReturnError(errors.New("conn reset"))

	_, err = repo.GetNextValue(context.Background(), counter.TypeLedgerPayrollExpense)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
