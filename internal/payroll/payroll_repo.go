package payroll

import (
	"context"
	"database/sql"
	"errors"

	payrollerrors "go-fleetpay/internal/payroll/errors"
	"go-fleetpay/internal/shared/dbtx"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payroll) error
	// Update writes every column of p when the stored row still has
	// expectedVersion and expectedStatus; otherwise ErrConcurrentUpdate.
	Update(ctx context.Context, p *Payroll, expectedVersion int, expectedStatus string) error
	ReplaceTripLines(ctx context.Context, payrollID string, lines []PayrollTripLine) error
	FindByID(ctx context.Context, id string) (*Payroll, error)
	// FindByPeriod returns nil, nil when no record exists for the key.
	FindByPeriod(ctx context.Context, driverID string, period Period) (*Payroll, error)
	FindPrevious(ctx context.Context, driverID string, period Period) (*Payroll, error)
	FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error)
	FindTripLines(ctx context.Context, payrollID string) ([]PayrollTripLine, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.db.WithContext(ctx).Omit("Driver", "TripLines").Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *Payroll, expectedVersion int, expectedStatus string) error {
	res := r.db.WithContext(ctx).
		Model(&Payroll{}).
		Where("id = ? AND version = ? AND status = ?", p.ID, expectedVersion, expectedStatus).
		Select("*").
		Omit("id", "driver_id", "month", "year", "created_by", "created_at", "Driver", "TripLines").
		Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return payrollerrors.ErrConcurrentUpdate
	}
	return nil
}

func (r *repository) ReplaceTripLines(ctx context.Context, payrollID string, lines []PayrollTripLine) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("payroll_id = ?", payrollID).Delete(&PayrollTripLine{}).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	return db.CreateInBatches(lines, 200).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Preload("Driver").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByPeriod(ctx context.Context, driverID string, period Period) (*Payroll, error) {
	var p Payroll
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND month = ? AND year = ?", driverID, period.Month, period.Year).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindPrevious(ctx context.Context, driverID string, period Period) (*Payroll, error) {
	return r.FindByPeriod(ctx, driverID, period.Previous())
}

func (r *repository) FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error) {
	db := r.db.WithContext(ctx).Preload("Driver")

	if filter.Year != nil {
		db = db.Where("year = ?", *filter.Year)
	}
	if filter.Month != nil {
		db = db.Where("month = ?", *filter.Month)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.DriverID != nil {
		db = db.Where("driver_id = ?", *filter.DriverID)
	}

	var payrolls []Payroll
	err := db.Order("year DESC, month DESC, created_at DESC").Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindTripLines(ctx context.Context, payrollID string) ([]PayrollTripLine, error) {
	var lines []PayrollTripLine
	err := r.db.WithContext(ctx).
		Where("payroll_id = ?", payrollID).
		Order("service_date ASC, trip_id ASC").
		Find(&lines).Error
	return lines, err
}
