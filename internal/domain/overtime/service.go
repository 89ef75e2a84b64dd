package overtime

import (
	"context"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/timeclock"
)

// Service fronts the overtime operations of the time & attendance backend.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*timeclock.OvertimeRequest, error)
	List(ctx context.Context, filter timeclock.OvertimeRequestFilter) (*timeclock.OvertimeRequestList, error)
	ListPending(ctx context.Context, page, pageSize int) (*timeclock.OvertimeRequestList, error)
	Get(ctx context.Context, overtimeRequestID string) (*timeclock.OvertimeRequest, error)
	Approve(ctx context.Context, overtimeRequestID, approverID, comment string) (*timeclock.OvertimeRequest, error)
	Reject(ctx context.Context, overtimeRequestID, approverID, reason string) (*timeclock.OvertimeRequest, error)
}
