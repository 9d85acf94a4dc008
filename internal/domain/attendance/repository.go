package attendance

import (
	"context"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/daterange"
)

// AttendanceRepository - interface for the attendance table
type AttendanceRepository interface {
	// UpsertCheckIn inserts the day's row if none exists and returns the
	// stored row either way. A second check-in on the same (user, date) is
	// a no-op: the first check_in wins.
	UpsertCheckIn(ctx context.Context, userID string, date time.Time, checkIn time.Time) (Record, error)
	SetCheckOut(ctx context.Context, recordID string, checkOut time.Time) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Record, error)
	// ListForUser returns the user's rows in the window, newest date first.
	ListForUser(ctx context.Context, userID string, window daterange.Range) ([]Record, error)
	// ListAll returns every employee's rows in the window, newest date
	// first. Callers must have confirmed the hr/admin capability.
	ListAll(ctx context.Context, window daterange.Range) ([]Record, error)
	CountOnDate(ctx context.Context, date time.Time, status Status) (int64, error)
	CountForUserBetween(ctx context.Context, userID string, window daterange.Range, status Status) (int64, error)
	CountBetween(ctx context.Context, window daterange.Range, status Status) (int64, error)
}
