package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one employee-month salary slip. Rows are produced by the payer
// system; this application reads them. net_salary is stored, not derived —
// the app surfaces what the payer recorded.
type Record struct {
	ID          string
	UserID      string
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	Month       int
	Year        int
	PaymentDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join fields for org-wide listings
	EmployeeName *string
	EmployeeID   *string
}

// PeriodLabel renders the slip period, e.g. "January 2025".
func (r Record) PeriodLabel() string {
	return time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
