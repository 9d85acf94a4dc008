package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/daterange"
	"golang.org/x/sync/errgroup"
)

const recentLeaveLimit = 3

type DashboardServiceImpl struct {
	attendanceRepository attendance.AttendanceRepository
	leaveRepository      leave.LeaveRequestRepository
	profileRepository    employee.ProfileRepository
	payrollRepository    payroll.PayrollRepository
	leaveService         leave.LeaveService
	now                  func() time.Time
}

func NewDashboardService(
	attendanceRepository attendance.AttendanceRepository,
	leaveRepository leave.LeaveRequestRepository,
	profileRepository employee.ProfileRepository,
	payrollRepository payroll.PayrollRepository,
	leaveService leave.LeaveService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendanceRepository: attendanceRepository,
		leaveRepository:      leaveRepository,
		profileRepository:    profileRepository,
		payrollRepository:    payrollRepository,
		leaveService:         leaveService,
		now:                  time.Now,
	}
}

// Employee assembles the personal landing view with parallel queries, one
// goroutine per widget.
func (s *DashboardServiceImpl) Employee(ctx context.Context, session user.Session) (*dashboard.EmployeeDashboardResponse, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	month := daterange.MonthBounds(now)

	resp := &dashboard.EmployeeDashboardResponse{
		RecentLeaves: []leave.Response{},
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rec, err := s.attendanceRepository.GetByUserAndDate(gCtx, session.UserID, today)
		if err != nil {
			if errors.Is(err, attendance.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		r := attendance.NewRecordResponse(rec)
		resp.TodayAttendance = &r
		return nil
	})

	g.Go(func() error {
		requests, err := s.leaveRepository.ListForUser(gCtx, session.UserID, recentLeaveLimit)
		if err != nil {
			return err
		}
		resp.RecentLeaves = leave.NewResponses(requests)
		return nil
	})

	g.Go(func() error {
		balance, err := s.leaveService.Balance(gCtx, session)
		if err != nil {
			return err
		}
		resp.LeaveBalance = balance
		return nil
	})

	g.Go(func() error {
		count, err := s.attendanceRepository.CountForUserBetween(gCtx, session.UserID, month, attendance.StatusPresent)
		if err != nil {
			return err
		}
		resp.PresentThisMonth = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}

// Admin assembles the organization-wide landing view; hr/admin only.
func (s *DashboardServiceImpl) Admin(ctx context.Context, session user.Session) (*dashboard.AdminDashboardResponse, error) {
	if !session.IsHrOrAdmin() {
		return nil, user.ErrHrOrAdminRequired
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	resp := &dashboard.AdminDashboardResponse{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.profileRepository.Count(gCtx)
		if err != nil {
			return err
		}
		resp.TotalEmployees = count
		return nil
	})

	g.Go(func() error {
		count, err := s.attendanceRepository.CountOnDate(gCtx, today, attendance.StatusPresent)
		if err != nil {
			return err
		}
		resp.PresentToday = count
		return nil
	})

	g.Go(func() error {
		count, err := s.leaveRepository.CountByStatus(gCtx, leave.StatusPending)
		if err != nil {
			return err
		}
		resp.PendingLeaves = count
		return nil
	})

	g.Go(func() error {
		total, err := s.payrollRepository.SumNetForPeriod(gCtx, int(now.Month()), now.Year())
		if err != nil {
			return err
		}
		resp.MonthlyPayroll = payroll.FormatUSD(total)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
