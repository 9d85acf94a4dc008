package report

import (
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/aggregate"
)

// LeaveStatusCounts buckets the current month's leave requests by status.
type LeaveStatusCounts struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// TrendPoint is one month of the trailing trend series.
type TrendPoint struct {
	Month          string `json:"month"`
	PresentDays    int64  `json:"present_days"`
	ApprovedLeaves int64  `json:"approved_leaves"`
}

// OverviewResponse is the Reports page view model.
type OverviewResponse struct {
	AttendanceDistribution aggregate.AttendanceStatusCounts `json:"attendance_distribution"`
	AttendanceRate         int                              `json:"attendance_rate"`
	LeaveDistribution      LeaveStatusCounts                `json:"leave_distribution"`
	// MonthlyTrend holds the trailing months oldest first.
	MonthlyTrend []TrendPoint `json:"monthly_trend"`
}
