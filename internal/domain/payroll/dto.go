package payroll

import (
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/aggregate"
)

type RecordResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Period       string  `json:"period"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	BasicSalary  string  `json:"basic_salary"`
	Allowances   string  `json:"allowances"`
	Deductions   string  `json:"deductions"`
	NetSalary    string  `json:"net_salary"`
	PaymentDate  *string `json:"payment_date,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeID   *string `json:"employee_code,omitempty"`
}

func NewRecordResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		Period:       r.PeriodLabel(),
		Month:        r.Month,
		Year:         r.Year,
		BasicSalary:  FormatUSD(r.BasicSalary),
		Allowances:   FormatUSD(r.Allowances),
		Deductions:   FormatUSD(r.Deductions),
		NetSalary:    FormatUSD(r.NetSalary),
		EmployeeName: r.EmployeeName,
		EmployeeID:   r.EmployeeID,
	}
	if r.PaymentDate != nil {
		d := r.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &d
	}
	return resp
}

// ListResponse bundles a payroll collection with its aggregate summary.
type ListResponse struct {
	Records         []RecordResponse `json:"records"`
	Count           int              `json:"count"`
	TotalNet        string           `json:"total_net"`
	TotalAllowances string           `json:"total_allowances"`
	TotalDeductions string           `json:"total_deductions"`
	AverageNet      string           `json:"average_net"`
}

func NewListResponse(records []Record) ListResponse {
	resp := ListResponse{Records: make([]RecordResponse, 0, len(records))}
	amounts := make([]aggregate.PayrollAmounts, 0, len(records))
	for _, r := range records {
		resp.Records = append(resp.Records, NewRecordResponse(r))
		amounts = append(amounts, aggregate.PayrollAmounts{
			NetSalary:  r.NetSalary,
			Allowances: r.Allowances,
			Deductions: r.Deductions,
		})
	}

	totals := aggregate.SumPayroll(amounts)
	resp.Count = totals.Count
	resp.TotalNet = FormatUSD(totals.TotalNet)
	resp.TotalAllowances = FormatUSD(totals.TotalAllowances)
	resp.TotalDeductions = FormatUSD(totals.TotalDeductions)
	resp.AverageNet = FormatUSD(totals.AverageNet)
	return resp
}
