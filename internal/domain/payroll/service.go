package payroll

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
)

// PayrollService backs the Payroll page and the salary slip download.
type PayrollService interface {
	// MyPayroll lists the caller's records with totals.
	MyPayroll(ctx context.Context, session user.Session) (ListResponse, error)
	// AllPayroll lists every employee's records; hr/admin only.
	AllPayroll(ctx context.Context, session user.Session) (ListResponse, error)
	// Slip renders a record as downloadable plain text. Employees can only
	// render their own slips.
	Slip(ctx context.Context, session user.Session, recordID string) (string, error)
}
