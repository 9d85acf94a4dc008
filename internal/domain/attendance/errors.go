package attendance

import "errors"

var (
	ErrRecordNotFound        = errors.New("attendance record not found")
	ErrNotCheckedIn          = errors.New("no check-in recorded for today")
	ErrAlreadyCheckedOut     = errors.New("already checked out")
	ErrCheckOutBeforeCheckIn = errors.New("check-out must not precede check-in")
)
