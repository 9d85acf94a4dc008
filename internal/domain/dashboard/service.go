package dashboard

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
)

// DashboardService assembles the role-branched landing page view models.
type DashboardService interface {
	// Employee returns the personal dashboard; available to every role.
	Employee(ctx context.Context, session user.Session) (*EmployeeDashboardResponse, error)
	// Admin returns the organization-wide dashboard; hr/admin only.
	Admin(ctx context.Context, session user.Session) (*AdminDashboardResponse, error)
}
