package employee

import (
	"context"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/directory"
)

// Service fronts the employee directory backend.
type Service interface {
	List(ctx context.Context, page, pageSize int, departmentID, teamID, search string) (*directory.EmployeeList, error)
	Get(ctx context.Context, employeeID string) (*directory.Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (*directory.Employee, error)
	Update(ctx context.Context, employeeID string, req UpdateEmployeeRequest) (*directory.Employee, error)
	Delete(ctx context.Context, employeeID string) (*directory.OperationResult, error)
	GetManager(ctx context.Context, employeeID string) (*directory.Employee, error)
	GetTeamMembers(ctx context.Context, teamID string) ([]directory.Employee, error)
	GetManagerTeam(ctx context.Context, managerID string) ([]directory.Employee, error)
	AssignRole(ctx context.Context, employeeID, role string) (*directory.OperationResult, error)
	GetDepartments(ctx context.Context, companyID string) ([]directory.Department, error)
	GetTeams(ctx context.Context, departmentID string) ([]directory.Team, error)
}
