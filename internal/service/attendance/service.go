package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/directory"
	"github.com/dungnt9/hrm-ApiGateway/internal/client/timeclock"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/attendance"
	"golang.org/x/sync/errgroup"
)

const (
	statusPresent = "Present"
	statusAbsent  = "Absent"
	statusUnknown = "Unknown"

	// Upper bound on concurrent per-member fetches during a team rollup.
	memberFetchLimit = 8
)

type service struct {
	timeclock timeclock.Client
	directory directory.Client
}

// NewAttendanceService creates the attendance service.
func NewAttendanceService(timeclockClient timeclock.Client, directoryClient directory.Client) attendance.Service {
	return &service{
		timeclock: timeclockClient,
		directory: directoryClient,
	}
}

func (s *service) CheckIn(ctx context.Context, req attendance.CheckInRequest) (*timeclock.CheckInResponse, error) {
	return s.timeclock.CheckIn(ctx, timeclock.CheckInRequest{
		EmployeeID: req.EmployeeID,
		Note:       req.Note,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
}

func (s *service) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (*timeclock.CheckOutResponse, error) {
	return s.timeclock.CheckOut(ctx, timeclock.CheckOutRequest{
		EmployeeID: req.EmployeeID,
		Note:       req.Note,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
}

func (s *service) GetStatus(ctx context.Context, employeeID, date string) (*timeclock.AttendanceStatus, error) {
	return s.timeclock.GetAttendanceStatus(ctx, employeeID, date)
}

func (s *service) GetHistory(ctx context.Context, employeeID, startDate, endDate string, page, pageSize int) (*timeclock.AttendanceHistory, error) {
	return s.timeclock.GetAttendanceHistory(ctx, employeeID, startDate, endDate, page, pageSize)
}

func (s *service) GetShifts(ctx context.Context, departmentID string) (*timeclock.ShiftList, error) {
	return s.timeclock.GetShifts(ctx, departmentID)
}

func (s *service) GetEmployeeShift(ctx context.Context, employeeID, date string) (*timeclock.Shift, error) {
	resp, err := s.timeclock.GetEmployeeShift(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	if resp.Shift == nil || resp.Shift.ID == "" {
		return nil, attendance.ErrShiftNotFound
	}
	return resp.Shift, nil
}

// GetTeamAttendance builds the team rollup for one day. Member fetches run
// in parallel but each writes only its own roster slot, so the output keeps
// roster order. A member's failure is recorded in its entry and never aborts
// the other members; only the roster fetch itself can fail the request.
func (s *service) GetTeamAttendance(ctx context.Context, teamID, date string) (*attendance.TeamAttendanceResponse, error) {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	roster, err := s.directory.GetTeamMembers(ctx, teamID, "")
	if err != nil {
		return nil, fmt.Errorf("fetch team roster: %w", err)
	}

	resp := &attendance.TeamAttendanceResponse{
		TeamID:  teamID,
		Date:    date,
		Members: []attendance.TeamMemberAttendance{},
	}
	if roster == nil || len(roster.Employees) == 0 {
		return resp, nil
	}

	members := make([]attendance.TeamMemberAttendance, len(roster.Employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(memberFetchLimit)
	for i, emp := range roster.Employees {
		i, emp := i, emp
		g.Go(func() error {
			// Errors are captured in the member's slot; returning nil keeps
			// one member's failure from cancelling the rest of the group.
			members[i] = s.fetchMemberAttendance(gctx, emp, date)
			return nil
		})
	}
	_ = g.Wait()

	resp.Members = members
	resp.Summary = summarize(members)
	return resp, nil
}

func (s *service) fetchMemberAttendance(ctx context.Context, emp directory.Employee, date string) attendance.TeamMemberAttendance {
	entry := attendance.TeamMemberAttendance{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FirstName + " " + emp.LastName,
		Position:     emp.Position,
	}

	status, err := s.timeclock.GetAttendanceStatus(ctx, emp.ID, date)
	if err != nil {
		slog.Warn("Team attendance: status fetch failed", "employee_id", emp.ID, "error", err)
		entry.Status = statusUnknown
		entry.Error = "Failed to fetch attendance"
		return entry
	}

	history, err := s.timeclock.GetAttendanceHistory(ctx, emp.ID, date, date, 1, 1)
	if err != nil {
		slog.Warn("Team attendance: history fetch failed", "employee_id", emp.ID, "error", err)
		entry.Status = statusUnknown
		entry.Error = "Failed to fetch attendance"
		return entry
	}

	if status.IsCheckedIn {
		entry.Status = statusPresent
	} else {
		entry.Status = statusAbsent
	}

	if len(history.Records) > 0 {
		record := history.Records[0]
		entry.CheckInTime = record.CheckInTime
		entry.CheckOutTime = record.CheckOutTime
		entry.TotalHours = record.TotalHours
		entry.LateMinutes = record.LateMinutes
		entry.IsLate = record.LateMinutes > 0
	}

	return entry
}

// summarize computes the rollup counters after all members have been
// fetched. Unknown members count as absent, so present + absent always
// equals the roster size.
func summarize(members []attendance.TeamMemberAttendance) attendance.TeamAttendanceSummary {
	summary := attendance.TeamAttendanceSummary{
		TotalMembers: len(members),
	}

	for _, m := range members {
		if m.Status == statusPresent {
			summary.PresentCount++
		}
		if m.LateMinutes > 0 {
			summary.LateCount++
		}
	}
	summary.AbsentCount = summary.TotalMembers - summary.PresentCount

	if summary.TotalMembers > 0 {
		rate := float64(summary.PresentCount) / float64(summary.TotalMembers) * 100
		summary.PresenceRate = roundRate(rate)
	}
	return summary
}

// roundRate rounds to two decimal places, half away from zero.
func roundRate(rate float64) float64 {
	return math.Round(rate*100) / 100
}
