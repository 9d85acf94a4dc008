package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Employee(w http.ResponseWriter, r *http.Request)
	Admin(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Employee implements DashboardHandler.
func (h *DashboardHandlerImpl) Employee(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	view, err := h.dashboardService.Employee(r.Context(), session)
	if err != nil {
		slog.Error("Employee dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// Admin implements DashboardHandler.
func (h *DashboardHandlerImpl) Admin(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	view, err := h.dashboardService.Admin(r.Context(), session)
	if err != nil {
		slog.Error("Admin dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}
