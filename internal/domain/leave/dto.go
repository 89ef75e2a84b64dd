package leave

import "github.com/dungnt9/hrm-ApiGateway/internal/pkg/validator"

var leaveTypes = []string{"annual", "sick", "unpaid"}
var approverTypes = []string{"manager", "hr"}

// CreateRequest is the inbound body for POST /api/leave/request.
// EmployeeID defaults to the caller's subject claim when empty.
type CreateRequest struct {
	EmployeeID   string `json:"employeeId"`
	LeaveType    string `json:"leaveType"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Reason       string `json:"reason"`
	ApproverID   string `json:"approverId"`
	ApproverType string `json:"approverType"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "leaveType is required",
		})
	} else if !validator.IsInSlice(r.LeaveType, leaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "leaveType must be one of: annual, sick, unpaid",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate is required",
		})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate is required",
		})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{
			Field:   "approverId",
			Message: "approverId is required",
		})
	}
	if validator.IsEmpty(r.ApproverType) {
		errs = append(errs, validator.ValidationError{
			Field:   "approverType",
			Message: "approverType is required",
		})
	} else if !validator.IsInSlice(r.ApproverType, approverTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "approverType",
			Message: "approverType must be one of: manager, hr",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveRequest struct {
	Note string `json:"note"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
