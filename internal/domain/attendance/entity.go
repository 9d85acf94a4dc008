package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusLeave   Status = "leave"
)

// Record is one employee-day of attendance. The (UserID, Date) pair is
// unique; check-in creates the row, check-out completes it.
type Record struct {
	ID       string
	UserID   string
	Date     time.Time
	CheckIn  *time.Time
	CheckOut *time.Time
	Status   Status
	Notes    *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join field for org-wide listings
	EmployeeName *string
}

// Completed reports whether the day has both a check-in and a check-out.
func (r Record) Completed() bool {
	return r.CheckIn != nil && r.CheckOut != nil
}
