package employee

import (
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

type ProfileResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	EmployeeID    string  `json:"employee_id"`
	Email         string  `json:"email"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	Department    *string `json:"department,omitempty"`
	Designation   *string `json:"designation,omitempty"`
	DateOfJoining *string `json:"date_of_joining,omitempty"`
	AvatarURL     *string `json:"avatar_url,omitempty"`
}

func NewProfileResponse(p Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		EmployeeID:  p.EmployeeID,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Phone:       p.Phone,
		Address:     p.Address,
		Department:  p.Department,
		Designation: p.Designation,
		AvatarURL:   p.AvatarURL,
	}
	if p.DateOfJoining != nil {
		d := p.DateOfJoining.Format("2006-01-02")
		resp.DateOfJoining = &d
	}
	return resp
}

// UpdateContactInfoRequest covers the self-service contact fields.
type UpdateContactInfoRequest struct {
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (r UpdateContactInfoRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "must be a valid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateJobInfoRequest covers the HR-managed job fields.
type UpdateJobInfoRequest struct {
	Department    *string `json:"department"`
	Designation   *string `json:"designation"`
	DateOfJoining *string `json:"date_of_joining"`
}

func (r UpdateJobInfoRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DateOfJoining != nil && *r.DateOfJoining != "" {
		if _, ok := validator.IsValidDate(*r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "must be a YYYY-MM-DD date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// JoiningDate parses the validated date_of_joining, nil when absent.
func (r UpdateJobInfoRequest) JoiningDate() *time.Time {
	if r.DateOfJoining == nil || *r.DateOfJoining == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *r.DateOfJoining)
	if err != nil {
		return nil
	}
	return &t
}

// ListFilter narrows the employee directory.
type ListFilter struct {
	Search     string
	Department string
}
