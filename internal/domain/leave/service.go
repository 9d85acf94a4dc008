package leave

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/aggregate"
)

// LeaveService backs the Leaves page: applications, the role-scoped listing
// and the HR review actions.
type LeaveService interface {
	Create(ctx context.Context, session user.Session, req CreateRequest) (Response, error)
	MyRequests(ctx context.Context, session user.Session) ([]Response, error)
	// AllRequests lists every employee's requests; hr/admin only.
	AllRequests(ctx context.Context, session user.Session) ([]Response, error)
	Approve(ctx context.Context, session user.Session, requestID string) (Response, error)
	Reject(ctx context.Context, session user.Session, requestID string) (Response, error)
	// Balance derives the caller's annual leave account for the current
	// year.
	Balance(ctx context.Context, session user.Session) (aggregate.LeaveBalance, error)
}
