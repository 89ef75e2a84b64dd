package attendance

import (
	"context"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/timeclock"
)

// Service fronts the time & attendance backend. Single-record operations are
// pass-throughs; GetTeamAttendance aggregates across the team roster.
type Service interface {
	CheckIn(ctx context.Context, req CheckInRequest) (*timeclock.CheckInResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (*timeclock.CheckOutResponse, error)
	GetStatus(ctx context.Context, employeeID, date string) (*timeclock.AttendanceStatus, error)
	GetHistory(ctx context.Context, employeeID, startDate, endDate string, page, pageSize int) (*timeclock.AttendanceHistory, error)
	GetShifts(ctx context.Context, departmentID string) (*timeclock.ShiftList, error)
	GetEmployeeShift(ctx context.Context, employeeID, date string) (*timeclock.Shift, error)

	// GetTeamAttendance fetches the roster and every member's attendance for
	// the given day. Date defaults to today (UTC) when empty. A member whose
	// fetch fails is reported with status "Unknown" and counted absent;
	// other members are unaffected.
	GetTeamAttendance(ctx context.Context, teamID, date string) (*TeamAttendanceResponse, error)
}
