package attendance

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/directory"
	"github.com/dungnt9/hrm-ApiGateway/internal/client/timeclock"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	directory.Client
	teamMembers *directory.EmployeeList
	teamErr     error
}

func (f *fakeDirectory) GetTeamMembers(ctx context.Context, teamID, managerID string) (*directory.EmployeeList, error) {
	if f.teamErr != nil {
		return nil, f.teamErr
	}
	return f.teamMembers, nil
}

type fakeTimeclock struct {
	timeclock.Client

	statusByEmployee  map[string]*timeclock.AttendanceStatus
	historyByEmployee map[string]*timeclock.AttendanceHistory
	failStatusFor     map[string]bool
	failHistoryFor    map[string]bool
	employeeShift     *timeclock.EmployeeShift
	statusCalls       atomic.Int64
}

func (f *fakeTimeclock) GetAttendanceStatus(ctx context.Context, employeeID, date string) (*timeclock.AttendanceStatus, error) {
	f.statusCalls.Add(1)
	if f.failStatusFor[employeeID] {
		return nil, errors.New("connection refused")
	}
	if s, ok := f.statusByEmployee[employeeID]; ok {
		return s, nil
	}
	return &timeclock.AttendanceStatus{}, nil
}

func (f *fakeTimeclock) GetAttendanceHistory(ctx context.Context, employeeID, startDate, endDate string, page, pageSize int) (*timeclock.AttendanceHistory, error) {
	if f.failHistoryFor[employeeID] {
		return nil, errors.New("connection refused")
	}
	if h, ok := f.historyByEmployee[employeeID]; ok {
		return h, nil
	}
	return &timeclock.AttendanceHistory{}, nil
}

func (f *fakeTimeclock) GetEmployeeShift(ctx context.Context, employeeID, date string) (*timeclock.EmployeeShift, error) {
	return f.employeeShift, nil
}

func rosterOf(ids ...string) *directory.EmployeeList {
	employees := make([]directory.Employee, 0, len(ids))
	for _, id := range ids {
		employees = append(employees, directory.Employee{
			ID:        id,
			FirstName: "Emp",
			LastName:  id,
			Position:  "Engineer",
		})
	}
	return &directory.EmployeeList{Employees: employees, TotalCount: len(employees)}
}

func checkedIn() *timeclock.AttendanceStatus {
	return &timeclock.AttendanceStatus{IsCheckedIn: true}
}

func TestGetTeamAttendanceEmptyRoster(t *testing.T) {
	tc := &fakeTimeclock{}
	svc := NewAttendanceService(tc, &fakeDirectory{teamMembers: rosterOf()})

	resp, err := svc.GetTeamAttendance(context.Background(), "team-1", "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, "team-1", resp.TeamID)
	assert.Empty(t, resp.Members)
	assert.Equal(t, 0, resp.Summary.TotalMembers)
	assert.Equal(t, 0, resp.Summary.PresentCount)
	assert.Equal(t, 0, resp.Summary.AbsentCount)
	assert.Equal(t, float64(0), resp.Summary.PresenceRate)

	// No per-member fetches should happen for an empty roster
	assert.Equal(t, int64(0), tc.statusCalls.Load())
}

func TestGetTeamAttendanceRosterFetchFails(t *testing.T) {
	svc := NewAttendanceService(&fakeTimeclock{}, &fakeDirectory{teamErr: errors.New("directory down")})

	_, err := svc.GetTeamAttendance(context.Background(), "team-1", "2026-08-31")
	require.Error(t, err)
}

func TestGetTeamAttendancePartialFailure(t *testing.T) {
	tc := &fakeTimeclock{
		statusByEmployee: map[string]*timeclock.AttendanceStatus{
			"e1": checkedIn(),
			"e3": checkedIn(),
		},
		failStatusFor: map[string]bool{"e2": true},
	}
	svc := NewAttendanceService(tc, &fakeDirectory{teamMembers: rosterOf("e1", "e2", "e3")})

	resp, err := svc.GetTeamAttendance(context.Background(), "team-1", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, resp.Members, 3)

	// The failing member is reported, not dropped, and does not disturb
	// the others
	assert.Equal(t, "Present", resp.Members[0].Status)
	assert.Equal(t, "Unknown", resp.Members[1].Status)
	assert.Equal(t, "Failed to fetch attendance", resp.Members[1].Error)
	assert.Equal(t, "Present", resp.Members[2].Status)

	assert.Equal(t, 3, resp.Summary.TotalMembers)
	assert.Equal(t, 2, resp.Summary.PresentCount)
	assert.Equal(t, 1, resp.Summary.AbsentCount)
	assert.Equal(t, 66.67, resp.Summary.PresenceRate)
}

func TestGetTeamAttendancePresenceRateRounding(t *testing.T) {
	tc := &fakeTimeclock{
		statusByEmployee: map[string]*timeclock.AttendanceStatus{
			"e1": checkedIn(),
		},
	}
	svc := NewAttendanceService(tc, &fakeDirectory{teamMembers: rosterOf("e1", "e2", "e3")})

	resp, err := svc.GetTeamAttendance(context.Background(), "team-1", "2026-08-31")
	require.NoError(t, err)

	// 1/3 of the team present: 33.333... rounds to 33.33
	assert.Equal(t, 33.33, resp.Summary.PresenceRate)
}

func TestGetTeamAttendanceKeepsRosterOrder(t *testing.T) {
	ids := []string{"z9", "a1", "m5", "b2", "x7", "c3", "k4", "d8", "q6", "f0"}
	tc := &fakeTimeclock{}
	svc := NewAttendanceService(tc, &fakeDirectory{teamMembers: rosterOf(ids...)})

	resp, err := svc.GetTeamAttendance(context.Background(), "team-1", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, resp.Members, len(ids))

	for i, id := range ids {
		assert.Equal(t, id, resp.Members[i].EmployeeID)
	}
}

func TestGetTeamAttendanceSummaryInvariant(t *testing.T) {
	tc := &fakeTimeclock{
		statusByEmployee: map[string]*timeclock.AttendanceStatus{
			"e1": checkedIn(),
			"e2": checkedIn(),
		},
		failStatusFor: map[string]bool{"e3": true},
		historyByEmployee: map[string]*timeclock.AttendanceHistory{
			"e1": {Records: []timeclock.AttendanceRecord{{LateMinutes: 15}}},
		},
	}
	svc := NewAttendanceService(tc, &fakeDirectory{teamMembers: rosterOf("e1", "e2", "e3", "e4")})

	resp, err := svc.GetTeamAttendance(context.Background(), "team-1", "2026-08-31")
	require.NoError(t, err)

	s := resp.Summary
	assert.Equal(t, s.TotalMembers, s.PresentCount+s.AbsentCount)
	assert.Equal(t, 1, s.LateCount)
	assert.True(t, resp.Members[0].IsLate)
	assert.Equal(t, 15, resp.Members[0].LateMinutes)
}

func TestGetTeamAttendanceHistoryFailureIsIsolated(t *testing.T) {
	tc := &fakeTimeclock{
		statusByEmployee: map[string]*timeclock.AttendanceStatus{
			"e1": checkedIn(),
			"e2": checkedIn(),
		},
		failHistoryFor: map[string]bool{"e2": true},
	}
	svc := NewAttendanceService(tc, &fakeDirectory{teamMembers: rosterOf("e1", "e2")})

	resp, err := svc.GetTeamAttendance(context.Background(), "team-1", "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, "Present", resp.Members[0].Status)
	assert.Equal(t, "Unknown", resp.Members[1].Status)
	assert.Equal(t, 1, resp.Summary.PresentCount)
	assert.Equal(t, 1, resp.Summary.AbsentCount)
}

func TestGetEmployeeShiftNotAssigned(t *testing.T) {
	tc := &fakeTimeclock{employeeShift: &timeclock.EmployeeShift{}}
	svc := NewAttendanceService(tc, &fakeDirectory{})

	_, err := svc.GetEmployeeShift(context.Background(), "e1", "2026-08-31")
	assert.ErrorIs(t, err, attendance.ErrShiftNotFound)
}
