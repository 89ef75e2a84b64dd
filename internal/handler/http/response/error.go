package response

import (
	"errors"
	"net/http"

	"github.com/dungnt9/hrm-ApiGateway/internal/domain/attendance"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/auth"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/employee"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/leave"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/overtime"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/user"
	"github.com/dungnt9/hrm-ApiGateway/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrRefreshFailed):
		Unauthorized(w, "Token refresh failed")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Role errors
	case errors.Is(err, user.ErrManagerAccessRequired),
		errors.Is(err, user.ErrHRAccessRequired),
		errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Manager not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrShiftNotFound):
		NotFound(w, "No shift assigned for this date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeRequestNotFound):
		NotFound(w, "Overtime request not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
