package leave

import "time"

type Type string

const (
	TypePaid   Type = "paid"
	TypeSick   Type = "sick"
	TypeUnpaid Type = "unpaid"
	TypeCasual Type = "casual"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a leave application. It starts pending and is immutable once an
// HR/admin reviewer moves it to approved or rejected.
type Request struct {
	ID         string
	UserID     string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     Status
	ReviewedBy *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join field for org-wide listings
	EmployeeName *string
}

// Days is the inclusive day count of the request.
func (r Request) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// DaysInYear counts the request's days that fall inside the given year;
// requests spanning a year boundary only consume from the overlapping part.
func (r Request) DaysInYear(year int) int {
	start := r.StartDate
	end := r.EndDate

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, start.Location())
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, start.Location())
	if start.Before(yearStart) {
		start = yearStart
	}
	if end.After(yearEnd) {
		end = yearEnd
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
