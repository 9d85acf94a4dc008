package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	UpdateJobInfo(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	filter := employee.ListFilter{
		Search:     r.URL.Query().Get("search"),
		Department: r.URL.Query().Get("department"),
	}

	profiles, err := h.employeeService.List(r.Context(), session, filter)
	if err != nil {
		slog.Error("Employee list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, profiles)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	profileID := chi.URLParam(r, "id")
	profile, err := h.employeeService.Get(r.Context(), session, profileID)
	if err != nil {
		slog.Error("Employee get service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// Departments implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	departments, err := h.employeeService.Departments(r.Context(), session)
	if err != nil {
		slog.Error("Departments service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

// UpdateJobInfo implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateJobInfo(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var updateReq employee.UpdateJobInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateJobInfo decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profileID := chi.URLParam(r, "id")
	profile, err := h.employeeService.UpdateJobInfo(r.Context(), session, profileID, updateReq)
	if err != nil {
		slog.Error("UpdateJobInfo service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job information updated", profile)
}
