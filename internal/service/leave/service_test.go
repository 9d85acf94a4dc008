package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/daterange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	requests map[string]leave.Request
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.Request)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, request leave.Request) (leave.Request, error) {
	f.nextID++
	request.ID = fmt.Sprintf("req-%d", f.nextID)
	request.Status = leave.StatusPending
	request.CreatedAt = time.Now()
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Request, error) {
	if req, ok := f.requests[id]; ok {
		return req, nil
	}
	return leave.Request{}, leave.ErrRequestNotFound
}

func (f *fakeLeaveRepo) ListForUser(_ context.Context, userID string, limit int) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListAll(_ context.Context) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status, reviewerID string) (leave.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	if req.Status != leave.StatusPending {
		return leave.Request{}, leave.ErrAlreadyReviewed
	}
	req.Status = status
	req.ReviewedBy = &reviewerID
	f.requests[id] = req
	return req, nil
}

func (f *fakeLeaveRepo) CountByStatus(_ context.Context, status leave.Status) (int64, error) {
	var count int64
	for _, req := range f.requests {
		if req.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeLeaveRepo) CountApprovedStartingBetween(_ context.Context, window daterange.Range) (int64, error) {
	var count int64
	for _, req := range f.requests {
		if req.Status == leave.StatusApproved && !req.StartDate.Before(window.Start) && !req.StartDate.After(window.End) {
			count++
		}
	}
	return count, nil
}

func (f *fakeLeaveRepo) ListApprovedForUserOverlapping(_ context.Context, userID string, window daterange.Range) ([]leave.Request, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if req.UserID == userID && req.Status == leave.StatusApproved &&
			!req.StartDate.After(window.End) && !req.EndDate.Before(window.Start) {
			out = append(out, req)
		}
	}
	return out, nil
}

func newTestService(repo leave.LeaveRequestRepository, allotment int, now time.Time) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		LeaveRequestRepository: repo,
		annualAllotment:        allotment,
		now:                    func() time.Time { return now },
	}
}

var (
	employeeSession = user.Session{UserID: "user-1", Email: "e@dayflow.io", Role: user.RoleEmployee}
	hrSession       = user.Session{UserID: "hr-1", Email: "hr@dayflow.io", Role: user.RoleHR}
)

func approvedRequest(userID string, start, end time.Time) leave.Request {
	return leave.Request{
		UserID:    userID,
		Type:      leave.TypePaid,
		StartDate: start,
		EndDate:   end,
	}
}

func TestCreate_RejectsEndBeforeStart(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), 20, time.Now())

	_, err := svc.Create(context.Background(), employeeSession, leave.CreateRequest{
		LeaveType: "paid",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-09",
	})
	assert.Error(t, err)
}

func TestReview_RequiresHrOrAdmin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, 20, time.Now())

	created, err := svc.Create(ctx, employeeSession, leave.CreateRequest{
		LeaveType: "paid",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-03",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, employeeSession, created.ID)
	assert.ErrorIs(t, err, user.ErrHrOrAdminRequired)

	approved, err := svc.Approve(ctx, hrSession, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, hrSession.UserID, *approved.ReviewedBy)
}

func TestReview_SecondReviewRejected(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	svc := newTestService(repo, 20, time.Now())

	created, err := svc.Create(ctx, employeeSession, leave.CreateRequest{
		LeaveType: "sick",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-02",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, hrSession, created.ID)
	require.NoError(t, err)

	_, err = svc.Reject(ctx, hrSession, created.ID)
	assert.ErrorIs(t, err, leave.ErrAlreadyReviewed)
}

func TestBalance_CountsApprovedDaysInYear(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, 20, now)

	// 5 approved days in March.
	req, err := repo.Create(ctx, approvedRequest(employeeSession.UserID,
		time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, req.ID, leave.StatusApproved, hrSession.UserID)
	require.NoError(t, err)

	// Pending requests do not consume.
	_, err = repo.Create(ctx, approvedRequest(employeeSession.UserID,
		time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	balance, err := svc.Balance(ctx, employeeSession)
	require.NoError(t, err)
	assert.Equal(t, 20, balance.Total)
	assert.Equal(t, 5, balance.Used)
	assert.Equal(t, 15, balance.Remaining)
	assert.False(t, balance.OverAllotment)
}

func TestBalance_ClampsAtZero(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, 10, now)

	// 25 approved days against an allotment of 10.
	req, err := repo.Create(ctx, approvedRequest(employeeSession.UserID,
		time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 26, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, req.ID, leave.StatusApproved, hrSession.UserID)
	require.NoError(t, err)

	balance, err := svc.Balance(ctx, employeeSession)
	require.NoError(t, err)
	assert.Equal(t, 25, balance.Used)
	assert.Equal(t, 0, balance.Remaining)
	assert.True(t, balance.OverAllotment)
}

func TestBalance_ClipsYearSpanningRequests(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLeaveRepo()
	now := time.Date(2026, time.January, 20, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, 20, now)

	// Dec 29 2025 - Jan 3 2026: only the three January days count for 2026.
	req, err := repo.Create(ctx, approvedRequest(employeeSession.UserID,
		time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, req.ID, leave.StatusApproved, hrSession.UserID)
	require.NoError(t, err)

	balance, err := svc.Balance(ctx, employeeSession)
	require.NoError(t, err)
	assert.Equal(t, 3, balance.Used)
}

func TestAllRequests_RequiresHrOrAdmin(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo(), 20, time.Now())

	_, err := svc.AllRequests(context.Background(), employeeSession)
	assert.ErrorIs(t, err, user.ErrHrOrAdminRequired)
}
