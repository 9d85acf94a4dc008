// Package aggregate contains the pure reducers behind every derived figure
// the application shows: attendance buckets, rates, leave balances and
// payroll totals. No I/O happens here; repositories fetch, this package
// reduces.
package aggregate

import "github.com/shopspring/decimal"

// Attendance statuses as stored on attendance rows.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusHalfDay = "half_day"
	StatusLeave   = "leave"
)

// AttendanceStatusCounts buckets a period's attendance rows by status.
type AttendanceStatusCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	HalfDay int `json:"half_day"`
	Leave   int `json:"leave"`
}

// Sum returns the total across all four buckets.
func (c AttendanceStatusCounts) Sum() int {
	return c.Present + c.Absent + c.HalfDay + c.Leave
}

// CountStatuses reduces attendance status values into buckets. Order
// independent; the bucket sum equals the number of recognized statuses.
func CountStatuses(statuses []string) AttendanceStatusCounts {
	var counts AttendanceStatusCounts
	for _, s := range statuses {
		switch s {
		case StatusPresent:
			counts.Present++
		case StatusAbsent:
			counts.Absent++
		case StatusHalfDay:
			counts.HalfDay++
		case StatusLeave:
			counts.Leave++
		}
	}
	return counts
}

// Percent returns part/total as a rounded whole percentage. Zero total means
// zero percent, never a division fault.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(float64(part)/float64(total)*100 + 0.5)
}

// AttendanceRate is the rounded share of present records in a period.
func AttendanceRate(counts AttendanceStatusCounts) int {
	return Percent(counts.Present, counts.Sum())
}

// LeaveBalance is an employee's annual leave account.
type LeaveBalance struct {
	Total         int  `json:"total"`
	Used          int  `json:"used"`
	Remaining     int  `json:"remaining"`
	OverAllotment bool `json:"over_allotment"`
}

// NewLeaveBalance derives the balance from the configured annual allotment
// and the days consumed this year. Remaining clamps at zero; consuming more
// than the allotment raises OverAllotment instead of going negative.
func NewLeaveBalance(allotment, used int) LeaveBalance {
	balance := LeaveBalance{
		Total:     allotment,
		Used:      used,
		Remaining: allotment - used,
	}
	if balance.Remaining < 0 {
		balance.Remaining = 0
		balance.OverAllotment = true
	}
	return balance
}

// PayrollAmounts is the monetary slice of one payroll record.
type PayrollAmounts struct {
	NetSalary  decimal.Decimal
	Allowances decimal.Decimal
	Deductions decimal.Decimal
}

// PayrollTotals summarizes a payroll collection.
type PayrollTotals struct {
	Count           int             `json:"count"`
	TotalNet        decimal.Decimal `json:"total_net"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	AverageNet      decimal.Decimal `json:"average_net"`
}

// SumPayroll totals a payroll collection. AverageNet is zero for an empty
// collection and rounded to cents otherwise.
func SumPayroll(records []PayrollAmounts) PayrollTotals {
	totals := PayrollTotals{Count: len(records)}
	for _, r := range records {
		totals.TotalNet = totals.TotalNet.Add(r.NetSalary)
		totals.TotalAllowances = totals.TotalAllowances.Add(r.Allowances)
		totals.TotalDeductions = totals.TotalDeductions.Add(r.Deductions)
	}
	if totals.Count > 0 {
		totals.AverageNet = totals.TotalNet.Div(decimal.NewFromInt(int64(totals.Count))).Round(2)
	}
	return totals
}
