package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	MyRequests(w http.ResponseWriter, r *http.Request)
	AllRequests(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var createReq leave.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Leave create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.Create(r.Context(), session, createReq)
	if err != nil {
		slog.Error("Leave create service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", created)
}

// MyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) MyRequests(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	requests, err := h.leaveService.MyRequests(r.Context(), session)
	if err != nil {
		slog.Error("MyRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// AllRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) AllRequests(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	requests, err := h.leaveService.AllRequests(r.Context(), session)
	if err != nil {
		slog.Error("AllRequests service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	requestID := chi.URLParam(r, "id")
	updated, err := h.leaveService.Approve(r.Context(), session, requestID)
	if err != nil {
		slog.Error("Approve service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request approved", updated)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	requestID := chi.URLParam(r, "id")
	updated, err := h.leaveService.Reject(r.Context(), session, requestID)
	if err != nil {
		slog.Error("Reject service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request rejected", updated)
}

// Balance implements LeaveHandler.
func (h *LeaveHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	balance, err := h.leaveService.Balance(r.Context(), session)
	if err != nil {
		slog.Error("Balance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, balance)
}
