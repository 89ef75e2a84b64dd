package directory

// Wire types for the employee directory service. Field names follow the
// service's JSON contract; absent entities come back with an empty id.

type Employee struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
	Position       string `json:"position"`
	ManagerID      string `json:"managerId"`
	ManagerName    string `json:"managerName"`
	IdentityUserID string `json:"identityUserId"`
	HireDate       string `json:"hireDate"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

type EmployeeList struct {
	Employees  []Employee `json:"employees"`
	TotalCount int        `json:"totalCount"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
}

type CreateEmployeeRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DepartmentID   string `json:"departmentId"`
	TeamID         string `json:"teamId"`
	Position       string `json:"position"`
	ManagerID      string `json:"managerId"`
	IdentityUserID string `json:"identityUserId"`
	HireDate       string `json:"hireDate"`
}

type UpdateEmployeeRequest struct {
	EmployeeID   string `json:"employeeId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	DepartmentID string `json:"departmentId"`
	TeamID       string `json:"teamId"`
	Position     string `json:"position"`
	ManagerID    string `json:"managerId"`
	Status       string `json:"status"`
}

// OperationResult is returned by delete and role-assignment calls.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OrgChartNode is one vertex of the hierarchy tree. The service truncates
// the tree to the requested depth before returning it.
type OrgChartNode struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"` // company, department, team, employee
	ParentID     string          `json:"parentId"`
	Children     []*OrgChartNode `json:"children"`
	EmployeeData *Employee       `json:"employeeData"`
}

type OrgChart struct {
	Root *OrgChartNode `json:"root"`
}

type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyID   string `json:"companyId"`
	ManagerID   string `json:"managerId"`
	ManagerName string `json:"managerName"`
	CreatedAt   string `json:"createdAt"`
}

type DepartmentList struct {
	Departments []Department `json:"departments"`
}

type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId"`
	ManagerID    string `json:"managerId"`
	ManagerName  string `json:"managerName"`
	CreatedAt    string `json:"createdAt"`
}

type TeamList struct {
	Teams []Team `json:"teams"`
}
