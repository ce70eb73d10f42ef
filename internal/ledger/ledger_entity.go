package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeWithdrawal = "withdrawal"
	TypeCollection = "collection"
	TypeExpense    = "expense"

	ReferencePayroll = "payroll"
)

// Entry is a posted movement in the company ledger.
type Entry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number        string          `gorm:"type:varchar(30);not null;uniqueIndex"`
	EntryType     string          `gorm:"type:varchar(20);not null;index:idx_ledger_type_driver_date"`
	DriverID      *uuid.UUID      `gorm:"type:uuid;index:idx_ledger_type_driver_date"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EntryDate     time.Time       `gorm:"type:date;not null;index:idx_ledger_type_driver_date"`
	Description   string          `gorm:"type:text;not null"`
	ReferenceType *string         `gorm:"type:varchar(30)"`
	ReferenceID   *uuid.UUID      `gorm:"type:uuid"`
	CreatedBy     string          `gorm:"type:varchar(100);not null"`
	CreatedAt     time.Time
}

func (Entry) TableName() string {
	return "ledger_entries"
}
