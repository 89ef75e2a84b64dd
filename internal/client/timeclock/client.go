package timeclock

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

// Client is the typed binding to the time & attendance service.
type Client interface {
	CheckIn(ctx context.Context, req CheckInRequest) (*CheckInResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (*CheckOutResponse, error)
	GetAttendanceStatus(ctx context.Context, employeeID, date string) (*AttendanceStatus, error)
	GetAttendanceHistory(ctx context.Context, employeeID, startDate, endDate string, page, pageSize int) (*AttendanceHistory, error)
	GetShifts(ctx context.Context, departmentID string) (*ShiftList, error)
	GetEmployeeShift(ctx context.Context, employeeID, date string) (*EmployeeShift, error)

	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequest) (*LeaveRequest, error)
	GetLeaveRequests(ctx context.Context, filter LeaveRequestFilter) (*LeaveRequestList, error)
	GetLeaveRequestDetail(ctx context.Context, leaveRequestID string) (*LeaveRequest, error)
	ApproveLeaveRequest(ctx context.Context, leaveRequestID, approverID, note string) (*LeaveRequest, error)
	RejectLeaveRequest(ctx context.Context, leaveRequestID, approverID, reason string) (*LeaveRequest, error)
	GetLeaveBalance(ctx context.Context, employeeID string, year int) (*LeaveBalance, error)

	CreateOvertimeRequest(ctx context.Context, req CreateOvertimeRequest) (*OvertimeRequest, error)
	GetOvertimeRequests(ctx context.Context, filter OvertimeRequestFilter) (*OvertimeRequestList, error)
	GetOvertimeRequestDetail(ctx context.Context, overtimeRequestID string) (*OvertimeRequest, error)
	ApproveOvertimeRequest(ctx context.Context, overtimeRequestID, approverID, comment string) (*OvertimeRequest, error)
	RejectOvertimeRequest(ctx context.Context, overtimeRequestID, approverID, reason string) (*OvertimeRequest, error)
}

type clientImpl struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a time & attendance service client.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &clientImpl{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *clientImpl) CheckIn(ctx context.Context, req CheckInRequest) (*CheckInResponse, error) {
	var out CheckInResponse
	if err := c.post(ctx, "/api/attendance/check-in", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) CheckOut(ctx context.Context, req CheckOutRequest) (*CheckOutResponse, error) {
	var out CheckOutResponse
	if err := c.post(ctx, "/api/attendance/check-out", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetAttendanceStatus(ctx context.Context, employeeID, date string) (*AttendanceStatus, error) {
	q := url.Values{}
	q.Set("employeeId", employeeID)
	if date != "" {
		q.Set("date", date)
	}

	var out AttendanceStatus
	if err := c.get(ctx, "/api/attendance/status", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetAttendanceHistory(ctx context.Context, employeeID, startDate, endDate string, page, pageSize int) (*AttendanceHistory, error) {
	q := url.Values{}
	q.Set("employeeId", employeeID)
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var out AttendanceHistory
	if err := c.get(ctx, "/api/attendance/history", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetShifts(ctx context.Context, departmentID string) (*ShiftList, error) {
	q := url.Values{}
	if departmentID != "" {
		q.Set("departmentId", departmentID)
	}

	var out ShiftList
	if err := c.get(ctx, "/api/shifts", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetEmployeeShift(ctx context.Context, employeeID, date string) (*EmployeeShift, error) {
	q := url.Values{}
	q.Set("employeeId", employeeID)
	if date != "" {
		q.Set("date", date)
	}

	var out EmployeeShift
	if err := c.get(ctx, "/api/shifts/employee", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) CreateLeaveRequest(ctx context.Context, req CreateLeaveRequest) (*LeaveRequest, error) {
	var out LeaveRequest
	if err := c.post(ctx, "/api/leave/requests", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetLeaveRequests(ctx context.Context, filter LeaveRequestFilter) (*LeaveRequestList, error) {
	q := url.Values{}
	if filter.EmployeeID != "" {
		q.Set("employeeId", filter.EmployeeID)
	}
	if filter.ApproverID != "" {
		q.Set("approverId", filter.ApproverID)
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.LeaveType != "" {
		q.Set("leaveType", filter.LeaveType)
	}
	if filter.StartDate != "" {
		q.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		q.Set("endDate", filter.EndDate)
	}
	q.Set("page", strconv.Itoa(filter.Page))
	q.Set("pageSize", strconv.Itoa(filter.PageSize))

	var out LeaveRequestList
	if err := c.get(ctx, "/api/leave/requests", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetLeaveRequestDetail(ctx context.Context, leaveRequestID string) (*LeaveRequest, error) {
	var out LeaveRequest
	if err := c.get(ctx, "/api/leave/requests/"+url.PathEscape(leaveRequestID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) ApproveLeaveRequest(ctx context.Context, leaveRequestID, approverID, note string) (*LeaveRequest, error) {
	body := map[string]string{"approverId": approverID, "note": note}
	var out LeaveRequest
	if err := c.post(ctx, "/api/leave/requests/"+url.PathEscape(leaveRequestID)+"/approve", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) RejectLeaveRequest(ctx context.Context, leaveRequestID, approverID, reason string) (*LeaveRequest, error) {
	body := map[string]string{"approverId": approverID, "reason": reason}
	var out LeaveRequest
	if err := c.post(ctx, "/api/leave/requests/"+url.PathEscape(leaveRequestID)+"/reject", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetLeaveBalance(ctx context.Context, employeeID string, year int) (*LeaveBalance, error) {
	q := url.Values{}
	q.Set("employeeId", employeeID)
	q.Set("year", strconv.Itoa(year))

	var out LeaveBalance
	if err := c.get(ctx, "/api/leave/balance", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) CreateOvertimeRequest(ctx context.Context, req CreateOvertimeRequest) (*OvertimeRequest, error) {
	var out OvertimeRequest
	if err := c.post(ctx, "/api/overtime/requests", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetOvertimeRequests(ctx context.Context, filter OvertimeRequestFilter) (*OvertimeRequestList, error) {
	q := url.Values{}
	if filter.EmployeeID != "" {
		q.Set("employeeId", filter.EmployeeID)
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.StartDate != "" {
		q.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		q.Set("endDate", filter.EndDate)
	}
	q.Set("page", strconv.Itoa(filter.Page))
	q.Set("pageSize", strconv.Itoa(filter.PageSize))

	var out OvertimeRequestList
	if err := c.get(ctx, "/api/overtime/requests", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) GetOvertimeRequestDetail(ctx context.Context, overtimeRequestID string) (*OvertimeRequest, error) {
	var out OvertimeRequest
	if err := c.get(ctx, "/api/overtime/requests/"+url.PathEscape(overtimeRequestID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) ApproveOvertimeRequest(ctx context.Context, overtimeRequestID, approverID, comment string) (*OvertimeRequest, error) {
	body := map[string]string{"approverId": approverID, "comment": comment}
	var out OvertimeRequest
	if err := c.post(ctx, "/api/overtime/requests/"+url.PathEscape(overtimeRequestID)+"/approve", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *clientImpl) RejectOvertimeRequest(ctx context.Context, overtimeRequestID, approverID, reason string) (*OvertimeRequest, error) {
	body := map[string]string{"approverId": approverID, "reason": reason}
	var out OvertimeRequest
	if err := c.post(ctx, "/api/overtime/requests/"+url.PathEscape(overtimeRequestID)+"/reject", body, &out); err != nil {
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

func (c *clientImpl) post(ctx context.Context, path string, body, out interface{}) error {
	return c.send(ctx, http.MethodPost, c.baseURL+path, body, out)
}

func (c *clientImpl) send(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("timeclock: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("timeclock: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("timeclock: call %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("timeclock: %s %s returned status %d", method, endpoint, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("timeclock: decode response: %w", err)
	}
	return nil
}
