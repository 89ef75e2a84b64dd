package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is the typed binding to the employee directory service.
type Client interface {
	GetEmployee(ctx context.Context, employeeID string) (*Employee, error)
	ListEmployees(ctx context.Context, page, pageSize int, departmentID, teamID, search string) (*EmployeeList, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (*Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) (*OperationResult, error)
	GetEmployeeManager(ctx context.Context, employeeID string) (*Employee, error)
	GetTeamMembers(ctx context.Context, teamID, managerID string) (*EmployeeList, error)
	GetOrgChart(ctx context.Context, rootID string, depth int) (*OrgChart, error)
	AssignRole(ctx context.Context, employeeID, role string) (*OperationResult, error)
	GetDepartments(ctx context.Context, companyID string) (*DepartmentList, error)
	GetTeams(ctx context.Context, departmentID string) (*TeamList, error)
}

type clientImpl struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a directory service client. The timeout is the per-call
// transport deadline; callers carry their own contexts on top of it.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &clientImpl{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *clientImpl) GetEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	var out Employee
	if err := c.get(ctx, "/api/employees/"+url.PathEscape(employeeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) ListEmployees(ctx context.Context, page, pageSize int, departmentID, teamID, search string) (*EmployeeList, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	if departmentID != "" {
		q.Set("departmentId", departmentID)
	}
	if teamID != "" {
		q.Set("teamId", teamID)
	}
	if search != "" {
		q.Set("search", search)
	}

	var out EmployeeList
	if err := c.get(ctx, "/api/employees", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	var out Employee
	if err := c.do(ctx, http.MethodPost, "/api/employees", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (*Employee, error) {
	var out Employee
	if err := c.do(ctx, http.MethodPut, "/api/employees/"+url.PathEscape(req.EmployeeID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) DeleteEmployee(ctx context.Context, employeeID string) (*OperationResult, error) {
	var out OperationResult
	if err := c.do(ctx, http.MethodDelete, "/api/employees/"+url.PathEscape(employeeID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetEmployeeManager(ctx context.Context, employeeID string) (*Employee, error) {
	var out Employee
	if err := c.get(ctx, "/api/employees/"+url.PathEscape(employeeID)+"/manager", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetTeamMembers(ctx context.Context, teamID, managerID string) (*EmployeeList, error) {
	q := url.Values{}
	if teamID != "" {
		q.Set("teamId", teamID)
	}
	if managerID != "" {
		q.Set("managerId", managerID)
	}

	var out EmployeeList
	if err := c.get(ctx, "/api/team-members", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetOrgChart(ctx context.Context, rootID string, depth int) (*OrgChart, error) {
	q := url.Values{}
	if rootID != "" {
		q.Set("rootId", rootID)
	}
	q.Set("depth", strconv.Itoa(depth))

	var out OrgChart
	if err := c.get(ctx, "/api/org-chart", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) AssignRole(ctx context.Context, employeeID, role string) (*OperationResult, error) {
	body := map[string]string{"role": role}
	var out OperationResult
	if err := c.do(ctx, http.MethodPost, "/api/employees/"+url.PathEscape(employeeID)+"/role", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetDepartments(ctx context.Context, companyID string) (*DepartmentList, error) {
	q := url.Values{}
	if companyID != "" {
		q.Set("companyId", companyID)
	}

	var out DepartmentList
	if err := c.get(ctx, "/api/departments", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetTeams(ctx context.Context, departmentID string) (*TeamList, error) {
	q := url.Values{}
	if departmentID != "" {
		q.Set("departmentId", departmentID)
	}

	var out TeamList
	if err := c.get(ctx, "/api/teams", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return c.send(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *clientImpl) do(ctx context.Context, method, path string, body, out interface{}) error {
	return c.send(ctx, method, c.baseURL+path, body, out)
}

func (c *clientImpl) send(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("directory: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("directory: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("directory: call %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("directory: %s %s returned status %d", method, endpoint, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("directory: decode response: %w", err)
	}
	return nil
}
