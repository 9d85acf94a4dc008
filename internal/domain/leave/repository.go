package leave

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/daterange"
)

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// ListForUser returns the user's requests, newest submission first.
	ListForUser(ctx context.Context, userID string, limit int) ([]Request, error)
	// ListAll returns every request, newest submission first; callers must
	// have confirmed the hr/admin capability.
	ListAll(ctx context.Context) ([]Request, error)
	// UpdateStatus moves a pending request to approved/rejected and stamps
	// the reviewer. Returns ErrAlreadyReviewed when the row is no longer
	// pending.
	UpdateStatus(ctx context.Context, id string, status Status, reviewerID string) (Request, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	CountApprovedStartingBetween(ctx context.Context, window daterange.Range) (int64, error)
	// ListApprovedForUserOverlapping returns the user's approved requests
	// that overlap the window, for balance computation.
	ListApprovedForUserOverlapping(ctx context.Context, userID string, window daterange.Range) ([]Request, error)
}
