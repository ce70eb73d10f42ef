package driver

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CalculationPartner  = "partner"
	CalculationEmployee = "employee"
)

type Driver struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	FullName        string              `gorm:"type:varchar(150);not null"`
	CalculationType string              `gorm:"type:varchar(20);not null;index"`
	HourlyRate      decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Active          bool                `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Driver) TableName() string {
	return "drivers"
}

func (d Driver) IsPartner() bool {
	return d.CalculationType == CalculationPartner
}
