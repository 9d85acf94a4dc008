package employee

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
)

// EmployeeService backs the HR-only employee directory.
type EmployeeService interface {
	List(ctx context.Context, session user.Session, filter ListFilter) ([]ProfileResponse, error)
	Get(ctx context.Context, session user.Session, profileID string) (ProfileResponse, error)
	Departments(ctx context.Context, session user.Session) ([]string, error)
	UpdateJobInfo(ctx context.Context, session user.Session, profileID string, req UpdateJobInfoRequest) (ProfileResponse, error)
}

// ProfileService backs the self-service profile page.
type ProfileService interface {
	GetMine(ctx context.Context, session user.Session) (ProfileResponse, error)
	UpdateContactInfo(ctx context.Context, session user.Session, req UpdateContactInfoRequest) (ProfileResponse, error)
}
