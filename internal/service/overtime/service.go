package overtime

import (
	"context"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/timeclock"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/overtime"
)

type service struct {
	timeclock timeclock.Client
}

// NewOvertimeService creates the overtime service.
func NewOvertimeService(timeclockClient timeclock.Client) overtime.Service {
	return &service{timeclock: timeclockClient}
}

func (s *service) Create(ctx context.Context, req overtime.CreateRequest) (*timeclock.OvertimeRequest, error) {
	return s.timeclock.CreateOvertimeRequest(ctx, timeclock.CreateOvertimeRequest{
		EmployeeID:   req.EmployeeID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		TotalMinutes: req.TotalMinutes,
		Reason:       req.Reason,
	})
}

func (s *service) List(ctx context.Context, filter timeclock.OvertimeRequestFilter) (*timeclock.OvertimeRequestList, error) {
	return s.timeclock.GetOvertimeRequests(ctx, filter)
}

func (s *service) ListPending(ctx context.Context, page, pageSize int) (*timeclock.OvertimeRequestList, error) {
	return s.timeclock.GetOvertimeRequests(ctx, timeclock.OvertimeRequestFilter{
		Status:   "pending",
		Page:     page,
		PageSize: pageSize,
	})
}

func (s *service) Get(ctx context.Context, overtimeRequestID string) (*timeclock.OvertimeRequest, error) {
	req, err := s.timeclock.GetOvertimeRequestDetail(ctx, overtimeRequestID)
	if err != nil {
		return nil, err
	}
	if req.ID == "" {
		return nil, overtime.ErrOvertimeRequestNotFound
	}
	return req, nil
}

func (s *service) Approve(ctx context.Context, overtimeRequestID, approverID, comment string) (*timeclock.OvertimeRequest, error) {
	return s.timeclock.ApproveOvertimeRequest(ctx, overtimeRequestID, approverID, comment)
}

func (s *service) Reject(ctx context.Context, overtimeRequestID, approverID, reason string) (*timeclock.OvertimeRequest, error) {
	return s.timeclock.RejectOvertimeRequest(ctx, overtimeRequestID, approverID, reason)
}
