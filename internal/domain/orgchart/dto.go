package orgchart

// Node is one vertex of the assembled organization chart. Children keep the
// order the directory service returned them in. EmployeeData is nil unless
// the source node carried a non-empty employee id.
type Node struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"` // company, department, team, employee
	ParentID     string          `json:"parentId"`
	Children     []*Node         `json:"children"`
	EmployeeData *EmployeeDetail `json:"employeeData,omitempty"`
}

// EmployeeDetail is the employee sub-object attached to employee nodes.
type EmployeeDetail struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Position       string `json:"position"`
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
	ManagerID      string `json:"managerId"`
	ManagerName    string `json:"managerName"`
	Status         string `json:"status"`
}
