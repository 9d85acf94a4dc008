package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// PayrollRepository - interface for the payroll table. Rows are written by
// the payer system; the application only reads.
type PayrollRepository interface {
	GetByID(ctx context.Context, id string) (Record, error)
	// ListForUser returns the user's records, newest period first.
	ListForUser(ctx context.Context, userID string) ([]Record, error)
	// ListAll returns every record, newest period first; callers must have
	// confirmed the hr/admin capability.
	ListAll(ctx context.Context) ([]Record, error)
	// SumNetForPeriod totals net salaries for one (month, year) across the
	// organization.
	SumNetForPeriod(ctx context.Context, month, year int) (decimal.Decimal, error)
}
