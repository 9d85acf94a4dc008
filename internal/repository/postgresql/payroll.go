package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	pr.id, pr.user_id, pr.basic_salary, pr.allowances, pr.deductions, pr.net_salary,
	pr.month, pr.year, pr.payment_date, pr.created_at, pr.updated_at
`

func scanPayroll(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.BasicSalary, &rec.Allowances, &rec.Deductions, &rec.NetSalary,
		&rec.Month, &rec.Year, &rec.PaymentDate, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM payroll pr WHERE pr.id = $1`, payrollColumns)
	rec, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return rec, nil
}

func (r *payrollRepository) ListForUser(ctx context.Context, userID string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM payroll pr
		WHERE pr.user_id = $1
		ORDER BY pr.year DESC, pr.month DESC
	`, payrollColumns)

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *payrollRepository) ListAll(ctx context.Context) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, p.first_name || ' ' || p.last_name, p.employee_id
		FROM payroll pr
		INNER JOIN profiles p ON p.user_id = pr.user_id
		ORDER BY pr.year DESC, pr.month DESC, p.first_name
	`, payrollColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var rec payroll.Record
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.BasicSalary, &rec.Allowances, &rec.Deductions, &rec.NetSalary,
			&rec.Month, &rec.Year, &rec.PaymentDate, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *payrollRepository) SumNetForPeriod(ctx context.Context, month, year int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(net_salary), 0) FROM payroll WHERE month = $1 AND year = $2`,
		month, year,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payroll: %w", err)
	}
	return total, nil
}
