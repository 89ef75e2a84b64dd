package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dungnt9/hrm-ApiGateway/internal/domain/attendance"
	"github.com/dungnt9/hrm-ApiGateway/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetTeamAttendance(w http.ResponseWriter, r *http.Request)
	GetShifts(w http.ResponseWriter, r *http.Request)
	GetMyShift(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkInReq attendance.CheckInRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Default to the caller's own identity
	if checkInReq.EmployeeID == "" {
		checkInReq.EmployeeID = subjectFromRequest(r)
	}

	// Validate DTO
	if err := checkInReq.Validate(); err != nil {
		slog.Error("CheckIn validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := a.attendanceService.CheckIn(r.Context(), checkInReq)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var checkOutReq attendance.CheckOutRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&checkOutReq); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Default to the caller's own identity
	if checkOutReq.EmployeeID == "" {
		checkOutReq.EmployeeID = subjectFromRequest(r)
	}

	// Validate DTO
	if err := checkOutReq.Validate(); err != nil {
		slog.Error("CheckOut validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := a.attendanceService.CheckOut(r.Context(), checkOutReq)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetStatus implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		employeeID = subjectFromRequest(r)
	}
	date := r.URL.Query().Get("date")

	status, err := a.attendanceService.GetStatus(r.Context(), employeeID, date)
	if err != nil {
		slog.Error("GetStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// GetHistory implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		employeeID = subjectFromRequest(r)
	}
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 20)

	history, err := a.attendanceService.GetHistory(r.Context(), employeeID, startDate, endDate, page, pageSize)
	if err != nil {
		slog.Error("GetHistory service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// GetTeamAttendance implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetTeamAttendance(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	date := r.URL.Query().Get("date")

	rollup, err := a.attendanceService.GetTeamAttendance(r.Context(), teamID, date)
	if err != nil {
		slog.Error("GetTeamAttendance service error", "team_id", teamID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rollup)
}

// GetShifts implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetShifts(w http.ResponseWriter, r *http.Request) {
	departmentID := r.URL.Query().Get("departmentId")

	shifts, err := a.attendanceService.GetShifts(r.Context(), departmentID)
	if err != nil {
		slog.Error("GetShifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// GetMyShift implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetMyShift(w http.ResponseWriter, r *http.Request) {
	employeeID := subjectFromRequest(r)
	date := r.URL.Query().Get("date")

	shift, err := a.attendanceService.GetEmployeeShift(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shift)
}
