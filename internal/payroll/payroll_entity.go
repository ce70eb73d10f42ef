package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "DRAFT"
	StatusConfirmed = "CONFIRMED"
	StatusPaid      = "PAID"
)

// Payroll is the monthly pay record of one driver. Partner-only figures
// (distance pricing and the deduction chain) are NULL for employee drivers,
// never zero.
type Payroll struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DriverID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_driver_period"`
	Month    int       `gorm:"not null;uniqueIndex:uq_payroll_driver_period"`
	Year     int       `gorm:"not null;uniqueIndex:uq_payroll_driver_period;index:idx_payroll_period_status"`

	CalculationType   string              `gorm:"type:varchar(20);not null"`
	TripCount         int                 `gorm:"not null;default:0"`
	DistanceKmTotal   decimal.Decimal     `gorm:"type:numeric(12,2);not null;default:0"`
	WaitingHoursTotal decimal.Decimal     `gorm:"type:numeric(10,2);not null;default:0"`
	WorkedHoursTotal  decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	HourlyRate        decimal.NullDecimal `gorm:"type:numeric(12,2)"`

	// Snapshot of the yearly configuration used, so later edits to the rate
	// tables never change a stored record.
	UpliftCoefficient decimal.NullDecimal `gorm:"type:numeric(8,4)"`
	HourlyWaitingRate decimal.NullDecimal `gorm:"type:numeric(12,2)"`

	BaseAmount    decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	UpliftedBase  decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	WaitingAmount decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	GrossTotal    decimal.Decimal     `gorm:"type:numeric(12,2);not null"`

	PersonalExpensesTotal     decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	WithdrawalsTotal          decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	ConvertedCollectionsTotal decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	CashCollectedTotal        decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	CarryOverPreviousMonth    decimal.NullDecimal `gorm:"type:numeric(12,2)"`

	NetTotal decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Status        string     `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_payroll_period_status"`
	Notes         *string    `gorm:"type:text"`
	CreatedBy     string     `gorm:"type:varchar(100);not null"`
	ConfirmedBy   *string    `gorm:"type:varchar(100)"`
	ConfirmedAt   *time.Time
	PaidBy        *string `gorm:"type:varchar(100)"`
	PaidAt        *time.Time
	LedgerEntryID *uuid.UUID `gorm:"type:uuid"`
	Version       int        `gorm:"not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Driver    *PayrollDriver    `gorm:"foreignKey:DriverID;references:ID"`
	TripLines []PayrollTripLine `gorm:"foreignKey:PayrollID"`
}

func (Payroll) TableName() string {
	return "payroll_records"
}

func (p Payroll) Period() Period {
	return Period{Month: p.Month, Year: p.Year}
}

func (p Payroll) IsPartner() bool {
	return p.CalculationType == CalculationPartner
}

// PayrollTripLine is the priced audit row of one trip.
type PayrollTripLine struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	TripID       uuid.UUID       `gorm:"type:uuid;not null"`
	ServiceDate  time.Time       `gorm:"type:date;not null"`
	DistanceKm   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	WaitingHours decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"`
	RoundedKm    *int
	Mode         string          `gorm:"type:varchar(10);not null"`
	BaseAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Explanation  string          `gorm:"type:text;not null"`
	CreatedAt    time.Time
}

func (PayrollTripLine) TableName() string {
	return "payroll_trip_lines"
}

type PayrollDriver struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (PayrollDriver) TableName() string {
	return "drivers"
}
