package notification

import (
	"context"
	"encoding/json"

	"github.com/dungnt9/hrm-ApiGateway/internal/pkg/sse"
)

// Service proxies stored-notification operations to the notification
// service and fans real-time events out to connected SSE subscribers.
type Service interface {
	List(ctx context.Context, token string, unreadOnly *bool, page, pageSize int) (json.RawMessage, error)
	MarkAsRead(ctx context.Context, token, notificationID string) error
	MarkAllAsRead(ctx context.Context, token string) error
	GetTemplates(ctx context.Context, token string, page, pageSize int) (json.RawMessage, error)
	GetPreferences(ctx context.Context, token string) (json.RawMessage, error)
	UpdatePreferences(ctx context.Context, token string, preferences json.RawMessage) error

	// PushToUser delivers a notification to one user's live connections.
	// Fire-and-forget: no delivery acknowledgment is tracked.
	PushToUser(req PushRequest) Payload
	// Broadcast delivers a notification to every connected user.
	Broadcast(req BroadcastRequest) Payload
	// Subscribe opens a live event channel for a user.
	Subscribe(userID string) (chan sse.Event, func())
}
