package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCountStatusesBucketsSumToCollectionSize(t *testing.T) {
	statuses := []string{
		StatusPresent, StatusPresent, StatusAbsent, StatusHalfDay,
		StatusLeave, StatusPresent, StatusLeave,
	}
	counts := CountStatuses(statuses)

	assert.Equal(t, 3, counts.Present)
	assert.Equal(t, 1, counts.Absent)
	assert.Equal(t, 1, counts.HalfDay)
	assert.Equal(t, 2, counts.Leave)
	assert.Equal(t, len(statuses), counts.Sum())
}

func TestCountStatusesOrderIndependent(t *testing.T) {
	a := CountStatuses([]string{StatusPresent, StatusAbsent, StatusLeave})
	b := CountStatuses([]string{StatusLeave, StatusPresent, StatusAbsent})
	assert.Equal(t, a, b)
}

func TestCountStatusesEmpty(t *testing.T) {
	counts := CountStatuses(nil)
	assert.Equal(t, 0, counts.Sum())
}

func TestPercent(t *testing.T) {
	cases := []struct {
		part, total, want int
	}{
		{0, 0, 0}, // zero denominator policy
		{5, 0, 0},
		{1, 2, 50},
		{2, 3, 67}, // rounds
		{1, 3, 33},
		{10, 10, 100},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Percent(c.part, c.total), "Percent(%d, %d)", c.part, c.total)
	}
}

func TestAttendanceRate(t *testing.T) {
	assert.Equal(t, 0, AttendanceRate(AttendanceStatusCounts{}))

	counts := AttendanceStatusCounts{Present: 18, Absent: 2, HalfDay: 1, Leave: 1}
	assert.Equal(t, 82, AttendanceRate(counts)) // 18/22 -> 81.8 -> 82
}

func TestNewLeaveBalance(t *testing.T) {
	b := NewLeaveBalance(20, 5)
	assert.Equal(t, 20, b.Total)
	assert.Equal(t, 5, b.Used)
	assert.Equal(t, 15, b.Remaining)
	assert.False(t, b.OverAllotment)
}

func TestNewLeaveBalanceClampsOverAllotment(t *testing.T) {
	b := NewLeaveBalance(20, 25)
	assert.Equal(t, 0, b.Remaining)
	assert.Equal(t, 25, b.Used)
	assert.True(t, b.OverAllotment)
}

func TestSumPayrollEmpty(t *testing.T) {
	totals := SumPayroll(nil)
	assert.Equal(t, 0, totals.Count)
	assert.True(t, totals.AverageNet.IsZero())
	assert.True(t, totals.TotalNet.IsZero())
}

func TestSumPayroll(t *testing.T) {
	records := []PayrollAmounts{
		{
			NetSalary:  decimal.NewFromInt(1000),
			Allowances: decimal.NewFromInt(200),
			Deductions: decimal.NewFromInt(50),
		},
		{
			NetSalary:  decimal.NewFromInt(2000),
			Allowances: decimal.NewFromInt(300),
			Deductions: decimal.NewFromInt(100),
		},
	}
	totals := SumPayroll(records)

	assert.Equal(t, 2, totals.Count)
	assert.True(t, totals.TotalNet.Equal(decimal.NewFromInt(3000)))
	assert.True(t, totals.TotalAllowances.Equal(decimal.NewFromInt(500)))
	assert.True(t, totals.TotalDeductions.Equal(decimal.NewFromInt(150)))
	assert.True(t, totals.AverageNet.Equal(decimal.NewFromInt(1500)))
}

func TestSumPayrollAverageRoundsToCents(t *testing.T) {
	records := []PayrollAmounts{
		{NetSalary: decimal.NewFromInt(1000)},
		{NetSalary: decimal.NewFromInt(1000)},
		{NetSalary: decimal.NewFromInt(1001)},
	}
	totals := SumPayroll(records)
	assert.True(t, totals.AverageNet.Equal(decimal.RequireFromString("1000.33")))
}
