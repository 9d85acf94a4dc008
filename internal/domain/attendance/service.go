package attendance

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
)

// AttendanceService backs the Attendance page: check-in/out plus the
// role-scoped month listing.
type AttendanceService interface {
	// CheckIn records today's attendance. Issuing it twice on the same day
	// returns the existing row unchanged.
	CheckIn(ctx context.Context, session user.Session) (RecordResponse, error)
	CheckOut(ctx context.Context, session user.Session) (RecordResponse, error)
	Today(ctx context.Context, session user.Session) (*RecordResponse, error)
	// MyMonth lists the caller's current-month rows with stats.
	MyMonth(ctx context.Context, session user.Session) (ListResponse, error)
	// AllMonth lists the whole organization's current-month rows; hr/admin
	// only.
	AllMonth(ctx context.Context, session user.Session) (ListResponse, error)
}
