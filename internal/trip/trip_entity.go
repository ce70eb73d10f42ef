package trip

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StateScheduled = "scheduled"
	StateCompleted = "completed"
	StateSettled   = "settled"
	StateCancelled = "cancelled"

	PaymentCash     = "cash"
	PaymentInvoice  = "invoice"
	PaymentTransfer = "transfer"
)

// PayableStates are the trip states that count towards a driver's payroll.
var PayableStates = []string{StateCompleted, StateSettled}

// CompletedTrip is a read-only projection of a dispatched service.
type CompletedTrip struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey"`
	DriverID            uuid.UUID           `gorm:"column:assigned_driver_id;type:uuid;not null;index:idx_trips_driver_date"`
	DistanceKm          decimal.Decimal     `gorm:"type:numeric(10,2);not null;default:0"`
	WaitingHours        decimal.Decimal     `gorm:"type:numeric(6,2);not null;default:0"`
	ServiceDate         time.Time           `gorm:"type:date;not null;index:idx_trips_driver_date"`
	State               string              `gorm:"type:varchar(20);not null"`
	PaymentMethod       string              `gorm:"type:varchar(20)"`
	CashCollectedAmount decimal.NullDecimal `gorm:"type:numeric(12,2)"`
}

func (CompletedTrip) TableName() string {
	return "trips"
}

func (t CompletedTrip) IsPayable() bool {
	return t.State == StateCompleted || t.State == StateSettled
}

func (t CompletedTrip) PaidInCash() bool {
	return t.PaymentMethod == PaymentCash
}
