package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Expense is a personal expense claim filed by a driver for reimbursement.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DriverID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_driver_date"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null"`
	ExpenseDate time.Time       `gorm:"type:date;not null;index:idx_expenses_driver_date"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Expense) TableName() string {
	return "driver_expenses"
}
