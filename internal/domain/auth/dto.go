package auth

import (
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

func (r RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be 3-20 letters, digits or dashes"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Role != "" && !validator.IsInSlice(r.Role, []string{string(user.RoleEmployee), string(user.RoleHR), string(user.RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be employee, hr or admin"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionInfo struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Role        user.Role `json:"role"`
	IsHrOrAdmin bool      `json:"is_hr_or_admin"`
}

type AuthResponse struct {
	AccessToken           string      `json:"access_token"`
	AccessTokenExpiresIn  int64       `json:"access_token_expires_in"`
	RefreshToken          string      `json:"-"`
	RefreshTokenExpiresIn int64       `json:"-"`
	Session               SessionInfo `json:"session"`
}
