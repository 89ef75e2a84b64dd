package employee

import (
	"context"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/directory"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/employee"
)

type service struct {
	directory directory.Client
}

// NewEmployeeService creates the employee service.
func NewEmployeeService(directoryClient directory.Client) employee.Service {
	return &service{directory: directoryClient}
}

func (s *service) List(ctx context.Context, page, pageSize int, departmentID, teamID, search string) (*directory.EmployeeList, error) {
	return s.directory.ListEmployees(ctx, page, pageSize, departmentID, teamID, search)
}

func (s *service) Get(ctx context.Context, employeeID string) (*directory.Employee, error) {
	emp, err := s.directory.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.ID == "" {
		return nil, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (*directory.Employee, error) {
	return s.directory.CreateEmployee(ctx, directory.CreateEmployeeRequest{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		DepartmentID:   req.DepartmentID,
		TeamID:         req.TeamID,
		Position:       req.Position,
		ManagerID:      req.ManagerID,
		IdentityUserID: req.IdentityUserID,
		HireDate:       req.HireDate,
	})
}

func (s *service) Update(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (*directory.Employee, error) {
	return s.directory.UpdateEmployee(ctx, directory.UpdateEmployeeRequest{
		EmployeeID:   employeeID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
		TeamID:       req.TeamID,
		Position:     req.Position,
		ManagerID:    req.ManagerID,
		Status:       req.Status,
	})
}

func (s *service) Delete(ctx context.Context, employeeID string) (*directory.OperationResult, error) {
	return s.directory.DeleteEmployee(ctx, employeeID)
}

func (s *service) GetManager(ctx context.Context, employeeID string) (*directory.Employee, error) {
	manager, err := s.directory.GetEmployeeManager(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if manager.ID == "" {
		return nil, employee.ErrManagerNotFound
	}
	return manager, nil
}

func (s *service) GetTeamMembers(ctx context.Context, teamID string) ([]directory.Employee, error) {
	list, err := s.directory.GetTeamMembers(ctx, teamID, "")
	if err != nil {
		return nil, err
	}
	return list.Employees, nil
}

func (s *service) GetManagerTeam(ctx context.Context, managerID string) ([]directory.Employee, error) {
	list, err := s.directory.GetTeamMembers(ctx, "", managerID)
	if err != nil {
		return nil, err
	}
	return list.Employees, nil
}

func (s *service) AssignRole(ctx context.Context, employeeID, role string) (*directory.OperationResult, error) {
	return s.directory.AssignRole(ctx, employeeID, role)
}

func (s *service) GetDepartments(ctx context.Context, companyID string) ([]directory.Department, error) {
	list, err := s.directory.GetDepartments(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return list.Departments, nil
}

func (s *service) GetTeams(ctx context.Context, departmentID string) ([]directory.Team, error) {
	list, err := s.directory.GetTeams(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	return list.Teams, nil
}
