package leave

import (
	"context"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/aggregate"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/daterange"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	annualAllotment int
	now             func() time.Time
}

func NewLeaveService(repo leave.LeaveRequestRepository, annualAllotment int) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: repo,
		annualAllotment:        annualAllotment,
		now:                    time.Now,
	}
}

func (s *LeaveServiceImpl) Create(ctx context.Context, session user.Session, req leave.CreateRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	start, end := req.Dates()
	var reason *string
	if req.Reason != "" {
		reason = &req.Reason
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.Request{
		UserID:    session.UserID,
		Type:      leave.Type(req.LeaveType),
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
	})
	if err != nil {
		return leave.Response{}, err
	}
	return leave.NewResponse(created), nil
}

func (s *LeaveServiceImpl) MyRequests(ctx context.Context, session user.Session) ([]leave.Response, error) {
	requests, err := s.LeaveRequestRepository.ListForUser(ctx, session.UserID, 0)
	if err != nil {
		return nil, err
	}
	return leave.NewResponses(requests), nil
}

func (s *LeaveServiceImpl) AllRequests(ctx context.Context, session user.Session) ([]leave.Response, error) {
	if !session.IsHrOrAdmin() {
		return nil, user.ErrHrOrAdminRequired
	}

	requests, err := s.LeaveRequestRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return leave.NewResponses(requests), nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, session user.Session, requestID string) (leave.Response, error) {
	return s.review(ctx, session, requestID, leave.StatusApproved)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, session user.Session, requestID string) (leave.Response, error) {
	return s.review(ctx, session, requestID, leave.StatusRejected)
}

// review applies a terminal status. The repository guards the pending state,
// so concurrent reviewers cannot both win.
func (s *LeaveServiceImpl) review(ctx context.Context, session user.Session, requestID string, status leave.Status) (leave.Response, error) {
	if !session.IsHrOrAdmin() {
		return leave.Response{}, user.ErrHrOrAdminRequired
	}

	updated, err := s.LeaveRequestRepository.UpdateStatus(ctx, requestID, status, session.UserID)
	if err != nil {
		return leave.Response{}, err
	}
	return leave.NewResponse(updated), nil
}

// Balance derives the caller's annual account for the current year. Used days
// come from approved requests clipped to the year, so a request spanning
// New Year only consumes from its overlapping part.
func (s *LeaveServiceImpl) Balance(ctx context.Context, session user.Session) (aggregate.LeaveBalance, error) {
	now := s.now().UTC()
	window := daterange.YearBounds(now)

	approved, err := s.LeaveRequestRepository.ListApprovedForUserOverlapping(ctx, session.UserID, window)
	if err != nil {
		return aggregate.LeaveBalance{}, err
	}

	used := 0
	for _, req := range approved {
		used += req.DaysInYear(now.Year())
	}
	return aggregate.NewLeaveBalance(s.annualAllotment, used), nil
}
