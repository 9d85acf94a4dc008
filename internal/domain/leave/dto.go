package leave

import (
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// Validate rejects malformed requests before any write is attempted, in
// particular an end date preceding the start date.
func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, []string{string(TypePaid), string(TypeSick), string(TypeUnpaid), string(TypeCasual)}) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be paid, sick, unpaid or casual"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a YYYY-MM-DD date"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a YYYY-MM-DD date"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the parsed date pair; call only after Validate.
func (r CreateRequest) Dates() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	return start, end
}

type Response struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	LeaveType    Type    `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       *string `json:"reason,omitempty"`
	Status       Status  `json:"status"`
	ReviewedBy   *string `json:"reviewed_by,omitempty"`
	CreatedAt    string  `json:"created_at"`
	EmployeeName *string `json:"employee_name,omitempty"`
}

func NewResponse(r Request) Response {
	return Response{
		ID:           r.ID,
		UserID:       r.UserID,
		LeaveType:    r.Type,
		StartDate:    r.StartDate.Format("2006-01-02"),
		EndDate:      r.EndDate.Format("2006-01-02"),
		Days:         r.Days(),
		Reason:       r.Reason,
		Status:       r.Status,
		ReviewedBy:   r.ReviewedBy,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		EmployeeName: r.EmployeeName,
	}
}

func NewResponses(requests []Request) []Response {
	out := make([]Response, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewResponse(r))
	}
	return out
}
