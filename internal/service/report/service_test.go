package report

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/report"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/daterange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAttendanceRepo serves canned month counts keyed by the window's start
// month.
type stubAttendanceRepo struct {
	records        []attendance.Record
	presentByMonth map[time.Month]int64
}

func (s *stubAttendanceRepo) UpsertCheckIn(context.Context, string, time.Time, time.Time) (attendance.Record, error) {
	return attendance.Record{}, nil
}

func (s *stubAttendanceRepo) SetCheckOut(context.Context, string, time.Time) (attendance.Record, error) {
	return attendance.Record{}, nil
}

func (s *stubAttendanceRepo) GetByID(context.Context, string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (s *stubAttendanceRepo) GetByUserAndDate(context.Context, string, time.Time) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (s *stubAttendanceRepo) ListForUser(context.Context, string, daterange.Range) ([]attendance.Record, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) ListAll(context.Context, daterange.Range) ([]attendance.Record, error) {
	return s.records, nil
}

func (s *stubAttendanceRepo) CountOnDate(context.Context, time.Time, attendance.Status) (int64, error) {
	return 0, nil
}

func (s *stubAttendanceRepo) CountForUserBetween(context.Context, string, daterange.Range, attendance.Status) (int64, error) {
	return 0, nil
}

func (s *stubAttendanceRepo) CountBetween(_ context.Context, window daterange.Range, _ attendance.Status) (int64, error) {
	return s.presentByMonth[window.Start.Month()], nil
}

type stubLeaveRepo struct {
	countsByStatus  map[leave.Status]int64
	approvedByMonth map[time.Month]int64
}

func (s *stubLeaveRepo) Create(context.Context, leave.Request) (leave.Request, error) {
	return leave.Request{}, nil
}

func (s *stubLeaveRepo) GetByID(context.Context, string) (leave.Request, error) {
	return leave.Request{}, leave.ErrRequestNotFound
}

func (s *stubLeaveRepo) ListForUser(context.Context, string, int) ([]leave.Request, error) {
	return nil, nil
}

func (s *stubLeaveRepo) ListAll(context.Context) ([]leave.Request, error) {
	return nil, nil
}

func (s *stubLeaveRepo) UpdateStatus(context.Context, string, leave.Status, string) (leave.Request, error) {
	return leave.Request{}, leave.ErrRequestNotFound
}

func (s *stubLeaveRepo) CountByStatus(_ context.Context, status leave.Status) (int64, error) {
	return s.countsByStatus[status], nil
}

func (s *stubLeaveRepo) CountApprovedStartingBetween(_ context.Context, window daterange.Range) (int64, error) {
	return s.approvedByMonth[window.Start.Month()], nil
}

func (s *stubLeaveRepo) ListApprovedForUserOverlapping(context.Context, string, daterange.Range) ([]leave.Request, error) {
	return nil, nil
}

func TestOverview_RequiresHrOrAdmin(t *testing.T) {
	svc := &ReportServiceImpl{
		attendanceRepository: &stubAttendanceRepo{},
		leaveRepository:      &stubLeaveRepo{},
		now:                  time.Now,
	}

	employee := user.Session{UserID: "user-1", Role: user.RoleEmployee}
	_, err := svc.Overview(context.Background(), employee)
	assert.ErrorIs(t, err, user.ErrHrOrAdminRequired)
}

func TestOverview_TrendOldestFirst(t *testing.T) {
	// Reference date in February: the six-month trend runs Sep through Feb.
	now := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)

	attendanceRepo := &stubAttendanceRepo{
		presentByMonth: map[time.Month]int64{
			time.September: 1,
			time.October:   2,
			time.November:  3,
			time.December:  4,
			time.January:   5,
			time.February:  6,
		},
	}
	leaveRepo := &stubLeaveRepo{
		countsByStatus: map[leave.Status]int64{
			leave.StatusPending:  2,
			leave.StatusApproved: 7,
			leave.StatusRejected: 1,
		},
		approvedByMonth: map[time.Month]int64{time.February: 7},
	}

	svc := &ReportServiceImpl{
		attendanceRepository: attendanceRepo,
		leaveRepository:      leaveRepo,
		now:                  func() time.Time { return now },
	}

	admin := user.Session{UserID: "admin-1", Role: user.RoleAdmin}
	overview, err := svc.Overview(context.Background(), admin)
	require.NoError(t, err)

	require.Len(t, overview.MonthlyTrend, report.TrendMonths)
	labels := make([]string, 0, len(overview.MonthlyTrend))
	presents := make([]int64, 0, len(overview.MonthlyTrend))
	for _, point := range overview.MonthlyTrend {
		labels = append(labels, point.Month)
		presents = append(presents, point.PresentDays)
	}
	assert.Equal(t, []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}, labels)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, presents)

	assert.Equal(t, int64(2), overview.LeaveDistribution.Pending)
	assert.Equal(t, int64(7), overview.LeaveDistribution.Approved)
	assert.Equal(t, int64(1), overview.LeaveDistribution.Rejected)
}

func TestOverview_DistributionFromCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	attendanceRepo := &stubAttendanceRepo{
		records: []attendance.Record{
			{Status: attendance.StatusPresent},
			{Status: attendance.StatusPresent},
			{Status: attendance.StatusAbsent},
			{Status: attendance.StatusLeave},
		},
	}

	svc := &ReportServiceImpl{
		attendanceRepository: attendanceRepo,
		leaveRepository:      &stubLeaveRepo{},
		now:                  func() time.Time { return now },
	}

	hr := user.Session{UserID: "hr-1", Role: user.RoleHR}
	overview, err := svc.Overview(context.Background(), hr)
	require.NoError(t, err)

	assert.Equal(t, 2, overview.AttendanceDistribution.Present)
	assert.Equal(t, 1, overview.AttendanceDistribution.Absent)
	assert.Equal(t, 1, overview.AttendanceDistribution.Leave)
	assert.Equal(t, 50, overview.AttendanceRate)
}
