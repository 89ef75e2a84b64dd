package leave

import (
	"context"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/timeclock"
)

// Service fronts the leave operations of the time & attendance backend.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*timeclock.LeaveRequest, error)
	List(ctx context.Context, filter timeclock.LeaveRequestFilter) (*timeclock.LeaveRequestList, error)
	ListPending(ctx context.Context, approverID string, page, pageSize int) (*timeclock.LeaveRequestList, error)
	Get(ctx context.Context, leaveRequestID string) (*timeclock.LeaveRequest, error)
	Approve(ctx context.Context, leaveRequestID, approverID, note string) (*timeclock.LeaveRequest, error)
	Reject(ctx context.Context, leaveRequestID, approverID, reason string) (*timeclock.LeaveRequest, error)
	GetBalance(ctx context.Context, employeeID string, year int) (*timeclock.LeaveBalance, error)
}
