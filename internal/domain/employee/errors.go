package employee

import "errors"

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrEmployeeIDExists = errors.New("employee ID already taken")
)
