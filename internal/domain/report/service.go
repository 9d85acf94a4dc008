package report

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
)

// TrendMonths is the depth of the Reports page trend series.
const TrendMonths = 6

// ReportService assembles the hr/admin analytics view.
type ReportService interface {
	Overview(ctx context.Context, session user.Session) (*OverviewResponse, error)
}
