package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dungnt9/hrm-ApiGateway/internal/domain/notification"
	"github.com/dungnt9/hrm-ApiGateway/internal/handler/http/response"
	"github.com/dungnt9/hrm-ApiGateway/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

// NotificationHandler defines the notification handler interface
type NotificationHandler interface {
	// Stored notifications (proxied)
	List(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
	MarkAllAsRead(w http.ResponseWriter, r *http.Request)
	GetTemplates(w http.ResponseWriter, r *http.Request)
	GetPreferences(w http.ResponseWriter, r *http.Request)
	UpdatePreferences(w http.ResponseWriter, r *http.Request)

	// Real-time delivery
	Push(w http.ResponseWriter, r *http.Request)
	Broadcast(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notifService notification.Service
	verifier     jwt.Verifier
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifService notification.Service, verifier jwt.Verifier) NotificationHandler {
	return &notificationHandlerImpl{
		notifService: notifService,
		verifier:     verifier,
	}
}

// List proxies the caller's stored notifications
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	token := jwtauth.TokenFromHeader(r)
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 20)

	var unreadOnly *bool
	if raw := r.URL.Query().Get("unreadOnly"); raw != "" {
		v := raw == "true" || raw == "1"
		unreadOnly = &v
	}

	result, err := h.notifService.List(r.Context(), token, unreadOnly, page, pageSize)
	if err != nil {
		slog.Error("List notifications proxy error", "error", err)
		response.BadGateway(w, "Notification service unavailable")
		return
	}

	response.RawSuccess(w, result)
}

// MarkAsRead marks one notification as read
func (h *notificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	notificationID := chi.URLParam(r, "notificationID")

	if err := h.notifService.MarkAsRead(r.Context(), jwtauth.TokenFromHeader(r), notificationID); err != nil {
		slog.Error("MarkAsRead proxy error", "notification_id", notificationID, "error", err)
		response.BadGateway(w, "Notification service unavailable")
		return
	}

	response.SuccessWithMessage(w, "Notification marked as read", nil)
}

// MarkAllAsRead marks all of the caller's notifications as read
func (h *notificationHandlerImpl) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notifService.MarkAllAsRead(r.Context(), jwtauth.TokenFromHeader(r)); err != nil {
		slog.Error("MarkAllAsRead proxy error", "error", err)
		response.BadGateway(w, "Notification service unavailable")
		return
	}

	response.SuccessWithMessage(w, "All notifications marked as read", nil)
}

// GetTemplates proxies the notification template catalog
func (h *notificationHandlerImpl) GetTemplates(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 20)

	result, err := h.notifService.GetTemplates(r.Context(), jwtauth.TokenFromHeader(r), page, pageSize)
	if err != nil {
		slog.Error("GetTemplates proxy error", "error", err)
		response.BadGateway(w, "Notification service unavailable")
		return
	}

	response.RawSuccess(w, result)
}

// GetPreferences proxies the caller's notification preferences
func (h *notificationHandlerImpl) GetPreferences(w http.ResponseWriter, r *http.Request) {
	result, err := h.notifService.GetPreferences(r.Context(), jwtauth.TokenFromHeader(r))
	if err != nil {
		slog.Error("GetPreferences proxy error", "error", err)
		response.BadGateway(w, "Notification service unavailable")
		return
	}

	response.RawSuccess(w, result)
}

// UpdatePreferences proxies a preference update
func (h *notificationHandlerImpl) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.notifService.UpdatePreferences(r.Context(), jwtauth.TokenFromHeader(r), body); err != nil {
		slog.Error("UpdatePreferences proxy error", "error", err)
		response.BadGateway(w, "Notification service unavailable")
		return
	}

	response.SuccessWithMessage(w, "Preferences updated", nil)
}

// Push delivers a real-time notification to one user's open connections
func (h *notificationHandlerImpl) Push(w http.ResponseWriter, r *http.Request) {
	var pushReq notification.PushRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&pushReq); err != nil {
		slog.Error("Push decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := pushReq.Validate(); err != nil {
		slog.Error("Push validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	payload := h.notifService.PushToUser(pushReq)

	slog.Info("Notification pushed", "user_id", pushReq.UserID, "notification_id", payload.ID)
	response.SuccessWithMessage(w, "Notification delivered", payload)
}

// Broadcast delivers a real-time notification to every connected user
func (h *notificationHandlerImpl) Broadcast(w http.ResponseWriter, r *http.Request) {
	var broadcastReq notification.BroadcastRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&broadcastReq); err != nil {
		slog.Error("Broadcast decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := broadcastReq.Validate(); err != nil {
		slog.Error("Broadcast validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	payload := h.notifService.Broadcast(broadcastReq)

	slog.Info("Notification broadcast", "notification_id", payload.ID)
	response.SuccessWithMessage(w, "Notification broadcast", payload)
}

// Stream handles SSE connection for real-time notifications
func (h *notificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, err := h.verifier.Decode(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	// Check if streaming is supported
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	// Subscribe to notifications
	events, cleanup := h.notifService.Subscribe(userID)
	defer cleanup()

	// Send initial connection event
	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"userId\":\"%s\"}\n\n", userID)
	flusher.Flush()

	// Stream events
	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			// Send keepalive ping
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
