package driver_test

import (
	"context"
	"testing"

	"go-fleetpay/internal/driver"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (driver.Repository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return driver.NewRepository(db), mock
}

func TestRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := setupRepo(t)
		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "drivers" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "calculation_type", "hourly_rate", "active"}).
				AddRow(id, "Ana Souza", driver.CalculationEmployee, "12.50", true))

		d, err := repo.FindByID(context.Background(), id.String())

		assert.NoError(t, err)
		if assert.NotNil(t, d) {
			assert.False(t, d.IsPartner())
			assert.True(t, d.HourlyRate.Valid)
			assert.Equal(t, "12.5", d.HourlyRate.Decimal.String())
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing driver is nil without error", func(t *testing.T) {
		repo, mock := setupRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "drivers" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		d, err := repo.FindByID(context.Background(), uuid.NewString())

		assert.NoError(t, err)
		assert.Nil(t, d)
	})
}

func TestRepository_FindActiveByCalculationType(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectQuery(`SELECT \* FROM "drivers" WHERE active = \$1 AND calculation_type = \$2 ORDER BY full_name ASC, id ASC`).
		WithArgs(true, driver.CalculationPartner).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "calculation_type", "active"}).
			AddRow(uuid.New(), "Bruno Lima", driver.CalculationPartner, true).
			AddRow(uuid.New(), "Carla Dias", driver.CalculationPartner, true))

	drivers, err := repo.FindActiveByCalculationType(context.Background(), driver.CalculationPartner)

	assert.NoError(t, err)
	assert.Len(t, drivers, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
