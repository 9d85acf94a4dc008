package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/handler/http/response"
)

type ProfileHandler interface {
	GetMine(w http.ResponseWriter, r *http.Request)
	UpdateContactInfo(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	profileService employee.ProfileService
}

func NewProfileHandler(profileService employee.ProfileService) ProfileHandler {
	return &ProfileHandlerImpl{profileService: profileService}
}

// GetMine implements ProfileHandler.
func (h *ProfileHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.profileService.GetMine(r.Context(), session)
	if err != nil {
		slog.Error("GetMine service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// UpdateContactInfo implements ProfileHandler.
func (h *ProfileHandlerImpl) UpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(w, r)
	if !ok {
		return
	}

	var updateReq employee.UpdateContactInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateContactInfo decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.profileService.UpdateContactInfo(r.Context(), session, updateReq)
	if err != nil {
		slog.Error("UpdateContactInfo service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Contact information updated", profile)
}
