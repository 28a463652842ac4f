package attendance

import "errors"

// Attendance domain errors
var (
	// ErrDuplicateDay is returned by the store when a second record for the same
	// (employee, day) pair hits the unique constraint.
	ErrDuplicateDay = errors.New("attendance record already exists for this day")

	ErrTooEarlyToCheckOut = errors.New("too early to check out")
	ErrAlreadyCompleted   = errors.New("attendance already completed for this day")
	ErrDeviceMismatch     = errors.New("check-out must use the check-in device")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
