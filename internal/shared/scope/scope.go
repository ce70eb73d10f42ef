package scope

import (
	"time"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Driver limits a query to one driver's rows.
func Driver(column, driverID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", driverID)
	}
}

// DateWindow limits a DATE column to [from, to], both inclusive. Bounds are
// sent as calendar dates so the session time zone cannot shift them.
func DateWindow(column string, from, to time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" BETWEEN ? AND ?", from.Format(dateLayout), to.Format(dateLayout))
	}
}
