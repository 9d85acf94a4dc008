package employee

import "time"

// Profile is the identity record shown on the Profile and Employees pages.
// Contact fields are self-service; job fields are HR-managed.
type Profile struct {
	ID            string
	UserID        string
	EmployeeID    string
	Email         string
	FirstName     string
	LastName      string
	Phone         *string
	Address       *string
	Department    *string
	Designation   *string
	DateOfJoining *time.Time
	AvatarURL     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
