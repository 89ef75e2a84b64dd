package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/timeclock"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/overtime"
	"github.com/dungnt9/hrm-ApiGateway/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OvertimeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type OvertimeHandlerImpl struct {
	overtimeService overtime.Service
}

func NewOvertimeHandler(overtimeService overtime.Service) OvertimeHandler {
	return &OvertimeHandlerImpl{overtimeService: overtimeService}
}

// Create implements OvertimeHandler.
func (o *OvertimeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq overtime.CreateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Default to the caller's own identity
	if createReq.EmployeeID == "" {
		createReq.EmployeeID = subjectFromRequest(r)
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create overtime validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := o.overtimeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Overtime request created", "overtime_request_id", result.ID)
	response.Created(w, "Overtime request submitted", result)
}

// List implements OvertimeHandler. Without an explicit employeeId the caller
// sees their own requests.
func (o *OvertimeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		employeeID = subjectFromRequest(r)
	}

	filter := timeclock.OvertimeRequestFilter{
		EmployeeID: employeeID,
		Status:     r.URL.Query().Get("status"),
		StartDate:  r.URL.Query().Get("startDate"),
		EndDate:    r.URL.Query().Get("endDate"),
		Page:       queryInt(r, "page", 1),
		PageSize:   queryInt(r, "pageSize", 20),
	}

	list, err := o.overtimeService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List overtime requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// ListPending implements OvertimeHandler.
func (o *OvertimeHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 20)

	list, err := o.overtimeService.ListPending(r.Context(), page, pageSize)
	if err != nil {
		slog.Error("ListPending overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Get implements OvertimeHandler.
func (o *OvertimeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	overtimeRequestID := chi.URLParam(r, "overtimeRequestID")

	result, err := o.overtimeService.Get(r.Context(), overtimeRequestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements OvertimeHandler.
func (o *OvertimeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	overtimeRequestID := chi.URLParam(r, "overtimeRequestID")

	var approveReq overtime.ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&approveReq); err != nil {
		slog.Error("Approve overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := o.overtimeService.Approve(r.Context(), overtimeRequestID, subjectFromRequest(r), approveReq.Comment)
	if err != nil {
		slog.Error("Approve overtime service error", "overtime_request_id", overtimeRequestID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Overtime request approved", "overtime_request_id", overtimeRequestID)
	response.SuccessWithMessage(w, "Overtime request approved", result)
}

// Reject implements OvertimeHandler.
func (o *OvertimeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	overtimeRequestID := chi.URLParam(r, "overtimeRequestID")

	var rejectReq overtime.RejectRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("Reject overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := rejectReq.Validate(); err != nil {
		slog.Error("Reject overtime validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := o.overtimeService.Reject(r.Context(), overtimeRequestID, subjectFromRequest(r), rejectReq.Reason)
	if err != nil {
		slog.Error("Reject overtime service error", "overtime_request_id", overtimeRequestID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Overtime request rejected", "overtime_request_id", overtimeRequestID)
	response.SuccessWithMessage(w, "Overtime request rejected", result)
}
