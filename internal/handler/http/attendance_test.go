package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/timeclock"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/attendance"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	attendance.Service
	gotCheckIn     attendance.CheckInRequest
	gotStatusEmpID string
	teamAttendance *attendance.TeamAttendanceResponse
	gotTeamID      string
	gotTeamDate    string
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (*timeclock.CheckInResponse, error) {
	f.gotCheckIn = req
	return &timeclock.CheckInResponse{EmployeeID: req.EmployeeID, Status: "on_time"}, nil
}

func (f *fakeAttendanceService) GetStatus(ctx context.Context, employeeID, date string) (*timeclock.AttendanceStatus, error) {
	f.gotStatusEmpID = employeeID
	return &timeclock.AttendanceStatus{IsCheckedIn: true}, nil
}

func (f *fakeAttendanceService) GetTeamAttendance(ctx context.Context, teamID, date string) (*attendance.TeamAttendanceResponse, error) {
	f.gotTeamID = teamID
	f.gotTeamDate = date
	return f.teamAttendance, nil
}

// requestWithSubject attaches a verified token context carrying the given
// subject claim, the way the Verifier middleware does in production.
func requestWithSubject(t *testing.T, r *http.Request, subject string) *http.Request {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"sub": subject})
	require.NoError(t, err)
	return r.WithContext(jwtauth.NewContext(r.Context(), token, nil))
}

func TestCheckInDefaultsToCallerIdentity(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc)

	body, _ := json.Marshal(attendance.CheckInRequest{Note: "morning"})
	r := httptest.NewRequest(http.MethodPost, "/api/attendance/check-in", bytes.NewReader(body))
	r = requestWithSubject(t, r, "emp-42")
	w := httptest.NewRecorder()

	handler.CheckIn(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emp-42", svc.gotCheckIn.EmployeeID)
}

func TestCheckInExplicitEmployeeIDWins(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc)

	body, _ := json.Marshal(attendance.CheckInRequest{EmployeeID: "emp-7"})
	r := httptest.NewRequest(http.MethodPost, "/api/attendance/check-in", bytes.NewReader(body))
	r = requestWithSubject(t, r, "emp-42")
	w := httptest.NewRecorder()

	handler.CheckIn(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emp-7", svc.gotCheckIn.EmployeeID)
}

func TestGetStatusDefaultsToCallerIdentity(t *testing.T) {
	svc := &fakeAttendanceService{}
	handler := NewAttendanceHandler(svc)

	r := httptest.NewRequest(http.MethodGet, "/api/attendance/status?date=2026-08-31", nil)
	r = requestWithSubject(t, r, "emp-42")
	w := httptest.NewRecorder()

	handler.GetStatus(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emp-42", svc.gotStatusEmpID)
}

func TestCheckInInvalidBody(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	r := httptest.NewRequest(http.MethodPost, "/api/attendance/check-in", bytes.NewReader([]byte("{broken")))
	r = requestWithSubject(t, r, "emp-42")
	w := httptest.NewRecorder()

	handler.CheckIn(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckInValidationError(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	// Latitude out of range
	body, _ := json.Marshal(attendance.CheckInRequest{EmployeeID: "emp-1", Latitude: 120.0})
	r := httptest.NewRequest(http.MethodPost, "/api/attendance/check-in", bytes.NewReader(body))
	r = requestWithSubject(t, r, "emp-42")
	w := httptest.NewRecorder()

	handler.CheckIn(w, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
