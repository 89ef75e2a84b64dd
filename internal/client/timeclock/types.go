package timeclock

// Wire types for the time & attendance service.

type CheckInRequest struct {
	EmployeeID string  `json:"employeeId"`
	Note       string  `json:"note"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type CheckInResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employeeId"`
	CheckInTime string `json:"checkInTime"`
	Status      string `json:"status"`
	LateMinutes int    `json:"lateMinutes"`
	Message     string `json:"message"`
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employeeId"`
	Note       string  `json:"note"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type CheckOutResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employeeId"`
	CheckInTime       string  `json:"checkInTime"`
	CheckOutTime      string  `json:"checkOutTime"`
	TotalHours        float64 `json:"totalHours"`
	Status            string  `json:"status"`
	EarlyLeaveMinutes int     `json:"earlyLeaveMinutes"`
	OvertimeMinutes   int     `json:"overtimeMinutes"`
	Message           string  `json:"message"`
}

// AttendanceStatus is the live snapshot for one employee on one day. Two
// consecutive reads may differ; nothing is cached.
type AttendanceStatus struct {
	IsCheckedIn  bool    `json:"isCheckedIn"`
	IsCheckedOut bool    `json:"isCheckedOut"`
	CheckInTime  string  `json:"checkInTime"`
	CheckOutTime string  `json:"checkOutTime"`
	CurrentHours float64 `json:"currentHours"`
}

type AttendanceRecord struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employeeId"`
	Date              string  `json:"date"`
	CheckInTime       string  `json:"checkInTime"`
	CheckOutTime      string  `json:"checkOutTime"`
	TotalHours        float64 `json:"totalHours"`
	CheckInStatus     string  `json:"checkInStatus"`
	CheckOutStatus    string  `json:"checkOutStatus"`
	LateMinutes       int     `json:"lateMinutes"`
	EarlyLeaveMinutes int     `json:"earlyLeaveMinutes"`
	OvertimeMinutes   int     `json:"overtimeMinutes"`
	Note              string  `json:"note"`
}

type AttendanceSummary struct {
	TotalDays          int     `json:"totalDays"`
	PresentDays        int     `json:"presentDays"`
	AbsentDays         int     `json:"absentDays"`
	LateCount          int     `json:"lateCount"`
	EarlyLeaveCount    int     `json:"earlyLeaveCount"`
	TotalHours         float64 `json:"totalHours"`
	AverageHoursPerDay float64 `json:"averageHoursPerDay"`
}

type AttendanceHistory struct {
	Records    []AttendanceRecord `json:"records"`
	TotalCount int                `json:"totalCount"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	Summary    *AttendanceSummary `json:"summary"`
}

type Shift struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	BreakMinutes int    `json:"breakMinutes"`
	IsDefault    bool   `json:"isDefault"`
}

type ShiftList struct {
	Shifts []Shift `json:"shifts"`
}

type EmployeeShift struct {
	Shift *Shift `json:"shift"`
}

type CreateLeaveRequest struct {
	EmployeeID   string `json:"employeeId"`
	LeaveType    string `json:"leaveType"` // annual, sick, unpaid
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
	ApproverID   string `json:"approverId"`
	ApproverType string `json:"approverType"` // manager, hr
}

type LeaveRequest struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employeeId"`
	EmployeeName    string  `json:"employeeName"`
	LeaveType       string  `json:"leaveType"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	TotalDays       float64 `json:"totalDays"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApproverID      string  `json:"approverId"`
	ApproverName    string  `json:"approverName"`
	ApproverType    string  `json:"approverType"`
	ApprovedAt      string  `json:"approvedAt"`
	RejectionReason string  `json:"rejectionReason"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

type LeaveRequestList struct {
	Requests   []LeaveRequest `json:"requests"`
	TotalCount int            `json:"totalCount"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
}

// LeaveRequestFilter narrows GetLeaveRequests. Empty fields are not sent.
type LeaveRequestFilter struct {
	EmployeeID string
	ApproverID string
	Status     string
	LeaveType  string
	StartDate  string
	EndDate    string
	Page       int
	PageSize   int
}

type LeaveBalance struct {
	EmployeeID      string  `json:"employeeId"`
	Year            int     `json:"year"`
	AnnualTotal     float64 `json:"annualTotal"`
	AnnualUsed      float64 `json:"annualUsed"`
	AnnualRemaining float64 `json:"annualRemaining"`
	SickTotal       float64 `json:"sickTotal"`
	SickUsed        float64 `json:"sickUsed"`
	SickRemaining   float64 `json:"sickRemaining"`
	UnpaidUsed      float64 `json:"unpaidUsed"`
}

type CreateOvertimeRequest struct {
	EmployeeID   string `json:"employeeId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	TotalMinutes int    `json:"totalMinutes"`
	Reason       string `json:"reason"`
}

type OvertimeRequest struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employeeId"`
	EmployeeName    string `json:"employeeName"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	TotalMinutes    int    `json:"totalMinutes"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
	ApproverID      string `json:"approverId"`
	ApproverName    string `json:"approverName"`
	ApproverComment string `json:"approverComment"`
	ApprovedAt      string `json:"approvedAt"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

type OvertimeRequestList struct {
	Requests   []OvertimeRequest `json:"requests"`
	TotalCount int               `json:"totalCount"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
}

type OvertimeRequestFilter struct {
	EmployeeID string
	Status     string
	StartDate  string
	EndDate    string
	Page       int
	PageSize   int
}
