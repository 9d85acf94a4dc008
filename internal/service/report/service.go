package report

import (
	"context"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/report"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/aggregate"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/daterange"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	attendanceRepository attendance.AttendanceRepository
	leaveRepository      leave.LeaveRequestRepository
	now                  func() time.Time
}

func NewReportService(
	attendanceRepository attendance.AttendanceRepository,
	leaveRepository leave.LeaveRequestRepository,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepository: attendanceRepository,
		leaveRepository:      leaveRepository,
		now:                  time.Now,
	}
}

// Overview assembles the analytics view: current-month attendance and leave
// distributions plus the trailing trend, all queried in parallel. Each trend
// point writes into its own slice slot, so the series stays oldest first no
// matter which goroutine finishes last.
func (s *ReportServiceImpl) Overview(ctx context.Context, session user.Session) (*report.OverviewResponse, error) {
	if !session.IsHrOrAdmin() {
		return nil, user.ErrHrOrAdminRequired
	}

	now := s.now().UTC()
	month := daterange.MonthBounds(now)
	trailing := daterange.TrailingMonths(now, report.TrendMonths)

	resp := &report.OverviewResponse{
		MonthlyTrend: make([]report.TrendPoint, len(trailing)),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.attendanceRepository.ListAll(gCtx, month)
		if err != nil {
			return err
		}
		statuses := make([]string, 0, len(records))
		for _, rec := range records {
			statuses = append(statuses, string(rec.Status))
		}
		resp.AttendanceDistribution = aggregate.CountStatuses(statuses)
		resp.AttendanceRate = aggregate.AttendanceRate(resp.AttendanceDistribution)
		return nil
	})

	for _, status := range []leave.Status{leave.StatusPending, leave.StatusApproved, leave.StatusRejected} {
		status := status
		g.Go(func() error {
			count, err := s.leaveRepository.CountByStatus(gCtx, status)
			if err != nil {
				return err
			}
			switch status {
			case leave.StatusPending:
				resp.LeaveDistribution.Pending = count
			case leave.StatusApproved:
				resp.LeaveDistribution.Approved = count
			case leave.StatusRejected:
				resp.LeaveDistribution.Rejected = count
			}
			return nil
		})
	}

	for i, window := range trailing {
		i, window := i, window
		g.Go(func() error {
			present, err := s.attendanceRepository.CountBetween(gCtx, window, attendance.StatusPresent)
			if err != nil {
				return err
			}
			approved, err := s.leaveRepository.CountApprovedStartingBetween(gCtx, window)
			if err != nil {
				return err
			}
			resp.MonthlyTrend[i] = report.TrendPoint{
				Month:          window.Label(),
				PresentDays:    present,
				ApprovedLeaves: approved,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
