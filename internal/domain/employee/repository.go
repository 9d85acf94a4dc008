package employee

import (
	"context"
	"time"
)

// ProfileRepository - interface for the profiles table
type ProfileRepository interface {
	Create(ctx context.Context, profile Profile) (Profile, error)
	GetByID(ctx context.Context, id string) (Profile, error)
	GetByUserID(ctx context.Context, userID string) (Profile, error)
	// List returns profiles ordered by first name; callers must have
	// confirmed the hr/admin capability before reaching for it.
	List(ctx context.Context, filter ListFilter) ([]Profile, error)
	Departments(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	UpdateContactInfo(ctx context.Context, profileID string, phone, address *string) (Profile, error)
	UpdateJobInfo(ctx context.Context, profileID string, department, designation *string, dateOfJoining *time.Time) (Profile, error)
}
