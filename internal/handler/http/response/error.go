package response

import (
	"errors"
	"net/http"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrOAuthEmailNotFound):
		NotFound(w, "No account registered for this Google email")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrHrOrAdminRequired):
		Forbidden(w, "HR or admin role required")

	// Employee domain errors
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "Profile not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in recorded for today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Check-out must not precede check-in", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request already reviewed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
