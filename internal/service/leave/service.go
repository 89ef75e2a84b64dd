package leave

import (
	"context"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/timeclock"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/leave"
)

type service struct {
	timeclock timeclock.Client
}

// NewLeaveService creates the leave service.
func NewLeaveService(timeclockClient timeclock.Client) leave.Service {
	return &service{timeclock: timeclockClient}
}

func (s *service) Create(ctx context.Context, req leave.CreateRequest) (*timeclock.LeaveRequest, error) {
	return s.timeclock.CreateLeaveRequest(ctx, timeclock.CreateLeaveRequest{
		EmployeeID:   req.EmployeeID,
		LeaveType:    req.LeaveType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       req.Reason,
		ApproverID:   req.ApproverID,
		ApproverType: req.ApproverType,
	})
}

func (s *service) List(ctx context.Context, filter timeclock.LeaveRequestFilter) (*timeclock.LeaveRequestList, error) {
	return s.timeclock.GetLeaveRequests(ctx, filter)
}

func (s *service) ListPending(ctx context.Context, approverID string, page, pageSize int) (*timeclock.LeaveRequestList, error) {
	return s.timeclock.GetLeaveRequests(ctx, timeclock.LeaveRequestFilter{
		ApproverID: approverID,
		Status:     "pending",
		Page:       page,
		PageSize:   pageSize,
	})
}

func (s *service) Get(ctx context.Context, leaveRequestID string) (*timeclock.LeaveRequest, error) {
	req, err := s.timeclock.GetLeaveRequestDetail(ctx, leaveRequestID)
	if err != nil {
		return nil, err
	}
	if req.ID == "" {
		return nil, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (s *service) Approve(ctx context.Context, leaveRequestID, approverID, note string) (*timeclock.LeaveRequest, error) {
	return s.timeclock.ApproveLeaveRequest(ctx, leaveRequestID, approverID, note)
}

func (s *service) Reject(ctx context.Context, leaveRequestID, approverID, reason string) (*timeclock.LeaveRequest, error) {
	return s.timeclock.RejectLeaveRequest(ctx, leaveRequestID, approverID, reason)
}

func (s *service) GetBalance(ctx context.Context, employeeID string, year int) (*timeclock.LeaveBalance, error) {
	return s.timeclock.GetLeaveBalance(ctx, employeeID, year)
}
