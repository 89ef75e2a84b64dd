package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dungnt9/hrm-ApiGateway/internal/domain/employee"
	"github.com/dungnt9/hrm-ApiGateway/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	GetManager(w http.ResponseWriter, r *http.Request)
	GetTeamMembers(w http.ResponseWriter, r *http.Request)
	GetMyTeam(w http.ResponseWriter, r *http.Request)
	AssignRole(w http.ResponseWriter, r *http.Request)
	GetDepartments(w http.ResponseWriter, r *http.Request)
	GetTeams(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.Service
}

func NewEmployeeHandler(employeeService employee.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 20)
	departmentID := r.URL.Query().Get("departmentId")
	teamID := r.URL.Query().Get("teamId")
	search := r.URL.Query().Get("search")

	list, err := e.employeeService.List(r.Context(), page, pageSize, departmentID, teamID, search)
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Get implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	emp, err := e.employeeService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// GetMe implements EmployeeHandler. Returns the caller's own directory
// record, resolved from the token subject.
func (e *EmployeeHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	emp, err := e.employeeService.Get(r.Context(), subjectFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// Create implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create employee validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	emp, err := e.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "employee_id", emp.ID)
	response.Created(w, "Employee created successfully", emp)
}

// Update implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var updateReq employee.UpdateEmployeeRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update employee validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	emp, err := e.employeeService.Update(r.Context(), employeeID, updateReq)
	if err != nil {
		slog.Error("Update employee service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", emp)
}

// Delete implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := e.employeeService.Delete(r.Context(), employeeID)
	if err != nil {
		slog.Error("Delete employee service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee deleted", "employee_id", employeeID)
	response.SuccessWithMessage(w, "Employee deleted successfully", result)
}

// GetManager implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetManager(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		employeeID = subjectFromRequest(r)
	}

	manager, err := e.employeeService.GetManager(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, manager)
}

// GetTeamMembers implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetTeamMembers(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	members, err := e.employeeService.GetTeamMembers(r.Context(), teamID)
	if err != nil {
		slog.Error("GetTeamMembers service error", "team_id", teamID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// GetMyTeam implements EmployeeHandler. Lists the employees reporting to
// the caller.
func (e *EmployeeHandlerImpl) GetMyTeam(w http.ResponseWriter, r *http.Request) {
	members, err := e.employeeService.GetManagerTeam(r.Context(), subjectFromRequest(r))
	if err != nil {
		slog.Error("GetMyTeam service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// AssignRole implements EmployeeHandler.
func (e *EmployeeHandlerImpl) AssignRole(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var assignReq employee.AssignRoleRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&assignReq); err != nil {
		slog.Error("AssignRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := assignReq.Validate(); err != nil {
		slog.Error("AssignRole validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := e.employeeService.AssignRole(r.Context(), employeeID, assignReq.Role)
	if err != nil {
		slog.Error("AssignRole service error", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Role assigned", "employee_id", employeeID, "role", assignReq.Role)
	response.SuccessWithMessage(w, "Role assigned successfully", result)
}

// GetDepartments implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetDepartments(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("companyId")

	departments, err := e.employeeService.GetDepartments(r.Context(), companyID)
	if err != nil {
		slog.Error("GetDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// GetTeams implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetTeams(w http.ResponseWriter, r *http.Request) {
	departmentID := r.URL.Query().Get("departmentId")

	teams, err := e.employeeService.GetTeams(r.Context(), departmentID)
	if err != nil {
		slog.Error("GetTeams service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, teams)
}
