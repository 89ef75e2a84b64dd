package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/timeclock"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/leave"
	"github.com/dungnt9/hrm-ApiGateway/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (l *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Default to the caller's own identity
	if createReq.EmployeeID == "" {
		createReq.EmployeeID = subjectFromRequest(r)
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create leave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := l.leaveService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request created", "leave_request_id", result.ID)
	response.Created(w, "Leave request submitted", result)
}

// List implements LeaveHandler. Without an explicit employeeId the caller
// sees their own requests.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		employeeID = subjectFromRequest(r)
	}

	filter := timeclock.LeaveRequestFilter{
		EmployeeID: employeeID,
		Status:     r.URL.Query().Get("status"),
		LeaveType:  r.URL.Query().Get("leaveType"),
		StartDate:  r.URL.Query().Get("startDate"),
		EndDate:    r.URL.Query().Get("endDate"),
		Page:       queryInt(r, "page", 1),
		PageSize:   queryInt(r, "pageSize", 20),
	}

	list, err := l.leaveService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List leave requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// ListPending implements LeaveHandler. Lists requests waiting on the caller
// as approver.
func (l *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	approverID := subjectFromRequest(r)
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 20)

	list, err := l.leaveService.ListPending(r.Context(), approverID, page, pageSize)
	if err != nil {
		slog.Error("ListPending leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Get implements LeaveHandler.
func (l *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	leaveRequestID := chi.URLParam(r, "leaveRequestID")

	result, err := l.leaveService.Get(r.Context(), leaveRequestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements LeaveHandler.
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	leaveRequestID := chi.URLParam(r, "leaveRequestID")

	var approveReq leave.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&approveReq); err != nil {
		slog.Error("Approve leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := l.leaveService.Approve(r.Context(), leaveRequestID, subjectFromRequest(r), approveReq.Note)
	if err != nil {
		slog.Error("Approve leave service error", "leave_request_id", leaveRequestID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request approved", "leave_request_id", leaveRequestID)
	response.SuccessWithMessage(w, "Leave request approved", result)
}

// Reject implements LeaveHandler.
func (l *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	leaveRequestID := chi.URLParam(r, "leaveRequestID")

	var rejectReq leave.RejectRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("Reject leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := rejectReq.Validate(); err != nil {
		slog.Error("Reject leave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := l.leaveService.Reject(r.Context(), leaveRequestID, subjectFromRequest(r), rejectReq.Reason)
	if err != nil {
		slog.Error("Reject leave service error", "leave_request_id", leaveRequestID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request rejected", "leave_request_id", leaveRequestID)
	response.SuccessWithMessage(w, "Leave request rejected", result)
}

// GetBalance implements LeaveHandler.
func (l *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		employeeID = subjectFromRequest(r)
	}
	year := queryInt(r, "year", time.Now().UTC().Year())

	balance, err := l.leaveService.GetBalance(r.Context(), employeeID, year)
	if err != nil {
		slog.Error("GetBalance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}
