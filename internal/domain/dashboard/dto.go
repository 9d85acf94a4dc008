package dashboard

import (
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/aggregate"
)

// EmployeeDashboardResponse is the landing view for the employee role:
// today's attendance, the latest leave requests and the derived personal
// figures.
type EmployeeDashboardResponse struct {
	TodayAttendance  *attendance.RecordResponse `json:"today_attendance,omitempty"`
	RecentLeaves     []leave.Response           `json:"recent_leaves"`
	LeaveBalance     aggregate.LeaveBalance     `json:"leave_balance"`
	PresentThisMonth int64                      `json:"present_this_month"`
}

// AdminDashboardResponse is the landing view for hr/admin: organization-wide
// tallies for the current day and month.
type AdminDashboardResponse struct {
	TotalEmployees int64  `json:"total_employees"`
	PresentToday   int64  `json:"present_today"`
	PendingLeaves  int64  `json:"pending_leaves"`
	MonthlyPayroll string `json:"monthly_payroll"`
}
