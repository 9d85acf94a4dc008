package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailExists       = errors.New("email already registered")
	ErrHrOrAdminRequired = errors.New("hr or admin role required")
)
