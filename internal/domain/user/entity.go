package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee, sees own records only
	RoleHR       Role = "hr"       // Reviews leave, sees organization-wide data
	RoleAdmin    Role = "admin"    // Same visibility as HR plus administration
)

// ParseRole maps a stored role string onto the closed role set. Anything
// unrecognized resolves to employee: a failed or corrupted role lookup must
// never grant elevated access.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleHR:
		return RoleHR
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleEmployee
	}
}

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsHrOrAdmin is the single capability predicate behind every org-wide data
// path and role-gated page.
func (u *User) IsHrOrAdmin() bool {
	return u.Role == RoleHR || u.Role == RoleAdmin
}

// Session is the resolved identity handed explicitly to services; it is built
// once per request from the verified token claims.
type Session struct {
	UserID string
	Email  string
	Role   Role
}

func (s Session) IsHrOrAdmin() bool {
	return s.Role == RoleHR || s.Role == RoleAdmin
}
