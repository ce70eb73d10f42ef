package payroll

import (
	"fmt"
	"time"

	payrollerrors "go-fleetpay/internal/payroll/errors"
)

const (
	minYear = 2000
	maxYear = 2100
)

// Period is one calendar month.
type Period struct {
	Month int
	Year  int
}

func NewPeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 || year < minYear || year > maxYear {
		return Period{}, payrollerrors.ErrInvalidPeriod.WithDetails(map[string]int{"month": month, "year": year})
	}
	return Period{Month: month, Year: year}, nil
}

// PeriodOf is the month containing t, in UTC.
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// ParsePeriod reads the YYYY-MM form used by query strings.
func ParsePeriod(v string) (Period, error) {
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return Period{}, payrollerrors.ErrInvalidPeriodFormat
	}
	return NewPeriod(int(t.Month()), t.Year())
}

// Start is the first day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End is the last day of the month; date windows are inclusive.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

func (p Period) Previous() Period {
	prev := p.Start().AddDate(0, -1, 0)
	return Period{Month: int(prev.Month()), Year: prev.Year()}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

func lockKey(driverID string, p Period) string {
	return "payroll:" + driverID + ":" + p.String()
}
