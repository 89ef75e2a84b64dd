package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dungnt9/hrm-ApiGateway/internal/client/notify"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/notification"
	"github.com/dungnt9/hrm-ApiGateway/internal/pkg/sse"
	"github.com/google/uuid"
)

const notificationEvent = "notification"

type service struct {
	notify notify.Client
	hub    *sse.Hub
}

// NewNotificationService creates the notification service.
func NewNotificationService(notifyClient notify.Client, hub *sse.Hub) notification.Service {
	return &service{
		notify: notifyClient,
		hub:    hub,
	}
}

func (s *service) List(ctx context.Context, token string, unreadOnly *bool, page, pageSize int) (json.RawMessage, error) {
	return s.notify.List(ctx, token, unreadOnly, page, pageSize)
}

func (s *service) MarkAsRead(ctx context.Context, token, notificationID string) error {
	return s.notify.MarkAsRead(ctx, token, notificationID)
}

func (s *service) MarkAllAsRead(ctx context.Context, token string) error {
	return s.notify.MarkAllAsRead(ctx, token)
}

func (s *service) GetTemplates(ctx context.Context, token string, page, pageSize int) (json.RawMessage, error) {
	return s.notify.GetTemplates(ctx, token, page, pageSize)
}

func (s *service) GetPreferences(ctx context.Context, token string) (json.RawMessage, error) {
	return s.notify.GetPreferences(ctx, token)
}

func (s *service) UpdatePreferences(ctx context.Context, token string, preferences json.RawMessage) error {
	return s.notify.UpdatePreferences(ctx, token, preferences)
}

func (s *service) PushToUser(req notification.PushRequest) notification.Payload {
	payload := newPayload(req.Title, req.Message, req.Type, req.Data)
	s.hub.Publish(req.UserID, sse.Event{
		UserID: req.UserID,
		Event:  notificationEvent,
		Data:   payload,
	})
	return payload
}

func (s *service) Broadcast(req notification.BroadcastRequest) notification.Payload {
	payload := newPayload(req.Title, req.Message, req.Type, req.Data)
	s.hub.Broadcast(sse.Event{
		Event: notificationEvent,
		Data:  payload,
	})
	return payload
}

func (s *service) Subscribe(userID string) (chan sse.Event, func()) {
	return s.hub.Subscribe(userID)
}

// newPayload stamps the event with a fresh id and UTC timestamp so clients
// can de-duplicate and order what they receive.
func newPayload(title, message, kind, data string) notification.Payload {
	return notification.Payload{
		ID:        uuid.New().String(),
		Title:     title,
		Message:   message,
		Type:      kind,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
