package overtime

import "errors"

// Overtime domain errors
var (
	ErrOvertimeRequestNotFound = errors.New("overtime request not found")
)
