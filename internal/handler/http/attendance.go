package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	MyMonth(w http.ResponseWriter, r *http.Request)
	AllMonth(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), session)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Checked in", record)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	record, err := h.attendanceService.CheckOut(r.Context(), session)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Checked out", record)
}

// Today implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	record, err := h.attendanceService.Today(r.Context(), session)
	if err != nil {
		slog.Error("Today service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, record)
}

// MyMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MyMonth(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	list, err := h.attendanceService.MyMonth(r.Context(), session)
	if err != nil {
		slog.Error("MyMonth service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, list)
}

// AllMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) AllMonth(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	list, err := h.attendanceService.AllMonth(r.Context(), session)
	if err != nil {
		slog.Error("AllMonth service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, list)
}
