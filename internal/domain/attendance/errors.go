package attendance

import "errors"

// Attendance domain errors
var (
	ErrShiftNotFound = errors.New("shift not found")
)
