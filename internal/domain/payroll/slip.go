package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD renders an amount the way the payroll screens do: dollar sign,
// thousands separators, two decimals.
func FormatUSD(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s", sign, grouped.String(), fracPart)
}

// RenderSlip serializes a salary slip as downloadable plain text. Field order
// and currency formatting are fixed for compatibility with the slips
// employees already have on file.
func RenderSlip(record Record, employeeName string) string {
	paymentDate := "-"
	if record.PaymentDate != nil {
		paymentDate = record.PaymentDate.Format("2006-01-02")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Salary Slip - %s\n", record.PeriodLabel())
	fmt.Fprintf(&b, "Employee: %s\n", employeeName)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Basic Salary: %s\n", FormatUSD(record.BasicSalary))
	fmt.Fprintf(&b, "Allowances: +%s\n", FormatUSD(record.Allowances))
	fmt.Fprintf(&b, "Deductions: -%s\n", FormatUSD(record.Deductions))
	fmt.Fprintf(&b, "Net Salary: %s\n", FormatUSD(record.NetSalary))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Payment Date: %s\n", paymentDate)
	return b.String()
}
