package migrate_test

import (
	"context"
	"errors"
	"io/fs"
	"regexp"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"go-fleetpay/internal/driver"
	"go-fleetpay/internal/expense"
	"go-fleetpay/internal/ledger"
	"go-fleetpay/internal/payroll"
	"go-fleetpay/internal/rate"
	"go-fleetpay/internal/shared/migrate"
	"go-fleetpay/internal/trip"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestUp(t *testing.T) {
	files := fstest.MapFS{
		"0001_a.sql": {Data: []byte("CREATE TABLE a (id INT)")},
		"0002_b.sql": {Data: []byte("CREATE TABLE b (id INT)")},
		"README.md":  {Data: []byte("ignored")},
	}

	t.Run("applies only new versions", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").WithArgs("0001_a").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT EXISTS").WithArgs("0002_b").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO schema_migrations").WithArgs("0002_b").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		applied, err := migrate.Up(context.Background(), db, files)

		assert.NoError(t, err)
		assert.Equal(t, []string{"0002_b"}, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed migration rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").WithArgs("0001_a").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE a").WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		applied, err := migrate.Up(context.Background(), db, files)

		assert.ErrorContains(t, err, "migration 0001_a failed")
		assert.Empty(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFiles_ShipsSchema(t *testing.T) {
	names, err := fs.Glob(migrate.Files(), "*.sql")
	assert.NoError(t, err)
	assert.Contains(t, names, "0003_payroll.sql")
}

var (
	createTableRe = regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`)
	addColumnRe   = regexp.MustCompile(`(?s)ALTER TABLE (\w+)\s+ADD COLUMN IF NOT EXISTS (\w+)`)
)

// shippedColumns collects table -> columns across every embedded migration.
func shippedColumns(t *testing.T) map[string]map[string]bool {
	t.Helper()

	names, err := fs.Glob(migrate.Files(), "*.sql")
	require.NoError(t, err)

	tables := map[string]map[string]bool{}
	for _, name := range names {
		body, err := fs.ReadFile(migrate.Files(), name)
		require.NoError(t, err)

		for _, m := range createTableRe.FindAllStringSubmatch(string(body), -1) {
			cols := map[string]bool{}
			for _, line := range strings.Split(m[2], "\n") {
				if fields := strings.Fields(line); len(fields) > 0 {
					cols[fields[0]] = true
				}
			}
			tables[m[1]] = cols
		}
		for _, m := range addColumnRe.FindAllStringSubmatch(string(body), -1) {
			require.Contains(t, tables, m[1], "%s alters unknown table", name)
			tables[m[1]][m[2]] = true
		}
	}
	return tables
}

func TestFiles_CoverEntityColumns(t *testing.T) {
	tables := shippedColumns(t)

	entities := []any{
		&driver.Driver{},
		&rate.RateTier{},
		&rate.YearlyConfiguration{},
		&trip.CompletedTrip{},
		&expense.Expense{},
		&ledger.Entry{},
		&payroll.Payroll{},
		&payroll.PayrollTripLine{},
	}

	for _, e := range entities {
		s, err := schema.Parse(e, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)

		t.Run(s.Table, func(t *testing.T) {
			cols, ok := tables[s.Table]
			require.True(t, ok, "no CREATE TABLE for %s", s.Table)
			for _, col := range s.DBNames {
				assert.True(t, cols[col], "%s.%s is mapped but never created", s.Table, col)
			}
		})
	}
}
