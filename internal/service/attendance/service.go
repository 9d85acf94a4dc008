package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/daterange"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	now func() time.Time
}

func NewAttendanceService(repo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		now:                  time.Now,
	}
}

// today truncates the clock to the calendar day the row is keyed on.
func (s *AttendanceServiceImpl) today() (time.Time, time.Time) {
	now := s.now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return day, now
}

// CheckIn records today's check-in. A repeat call on the same day finds the
// existing row and returns it unchanged: the first check-in wins.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, session user.Session) (attendance.RecordResponse, error) {
	day, now := s.today()

	rec, err := s.AttendanceRepository.UpsertCheckIn(ctx, session.UserID, day, now)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.NewRecordResponse(rec), nil
}

// CheckOut completes today's row. It requires a prior check-in, rejects a
// second check-out and refuses a clock that went backwards.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, session user.Session) (attendance.RecordResponse, error) {
	day, now := s.today()

	rec, err := s.AttendanceRepository.GetByUserAndDate(ctx, session.UserID, day)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.RecordResponse{}, err
	}
	if rec.CheckIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if now.Before(*rec.CheckIn) {
		return attendance.RecordResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	rec, err = s.AttendanceRepository.SetCheckOut(ctx, rec.ID, now)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.NewRecordResponse(rec), nil
}

// Today returns the caller's row for the current day, nil when none exists.
func (s *AttendanceServiceImpl) Today(ctx context.Context, session user.Session) (*attendance.RecordResponse, error) {
	day, _ := s.today()

	rec, err := s.AttendanceRepository.GetByUserAndDate(ctx, session.UserID, day)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resp := attendance.NewRecordResponse(rec)
	return &resp, nil
}

func (s *AttendanceServiceImpl) MyMonth(ctx context.Context, session user.Session) (attendance.ListResponse, error) {
	window := daterange.MonthBounds(s.now().UTC())

	records, err := s.AttendanceRepository.ListForUser(ctx, session.UserID, window)
	if err != nil {
		return attendance.ListResponse{}, err
	}
	return attendance.NewListResponse(records), nil
}

func (s *AttendanceServiceImpl) AllMonth(ctx context.Context, session user.Session) (attendance.ListResponse, error) {
	if !session.IsHrOrAdmin() {
		return attendance.ListResponse{}, user.ErrHrOrAdminRequired
	}
	window := daterange.MonthBounds(s.now().UTC())

	records, err := s.AttendanceRepository.ListAll(ctx, window)
	if err != nil {
		return attendance.ListResponse{}, err
	}
	return attendance.NewListResponse(records), nil
}
