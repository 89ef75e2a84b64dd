package attendance

import "github.com/dungnt9/hrm-ApiGateway/internal/pkg/validator"

// CheckInRequest is the inbound body for POST /api/attendance/check-in.
// EmployeeID defaults to the caller's subject claim when empty.
type CheckInRequest struct {
	EmployeeID string  `json:"employeeId"`
	Note       string  `json:"note"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Note) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 500 characters",
		})
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employeeId"`
	Note       string  `json:"note"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Note) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 500 characters",
		})
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TeamMemberAttendance is one roster member's entry in the team rollup.
// A member whose fetch failed carries Status "Unknown" and a non-empty
// Error; it is never dropped from the list.
type TeamMemberAttendance struct {
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Position     string  `json:"position"`
	Status       string  `json:"status"` // Present, Absent, Unknown
	CheckInTime  string  `json:"checkInTime,omitempty"`
	CheckOutTime string  `json:"checkOutTime,omitempty"`
	TotalHours   float64 `json:"totalHours"`
	LateMinutes  int     `json:"lateMinutes"`
	IsLate       bool    `json:"isLate"`
	Error        string  `json:"error,omitempty"`
}

// TeamAttendanceSummary holds the rollup counters. presentCount +
// absentCount always equals totalMembers.
type TeamAttendanceSummary struct {
	TotalMembers int     `json:"totalMembers"`
	PresentCount int     `json:"presentCount"`
	AbsentCount  int     `json:"absentCount"`
	LateCount    int     `json:"lateCount"`
	PresenceRate float64 `json:"presenceRate"`
}

type TeamAttendanceResponse struct {
	TeamID  string                 `json:"teamId"`
	Date    string                 `json:"date"`
	Members []TeamMemberAttendance `json:"members"`
	Summary TeamAttendanceSummary  `json:"summary"`
}
