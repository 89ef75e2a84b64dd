package notify

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

// Client proxies requests to the notification service. Responses are relayed
// as raw JSON; the caller's bearer token is forwarded so the notification
// service applies its own authorization.
type Client interface {
	List(ctx context.Context, token string, unreadOnly *bool, page, pageSize int) (json.RawMessage, error)
	MarkAsRead(ctx context.Context, token, notificationID string) error
	MarkAllAsRead(ctx context.Context, token string) error
	GetTemplates(ctx context.Context, token string, page, pageSize int) (json.RawMessage, error)
	GetPreferences(ctx context.Context, token string) (json.RawMessage, error)
	UpdatePreferences(ctx context.Context, token string, preferences json.RawMessage) error
}

type clientImpl struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a notification service proxy client.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &clientImpl{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *clientImpl) List(ctx context.Context, token string, unreadOnly *bool, page, pageSize int) (json.RawMessage, error) {
	q := url.Values{}
	if unreadOnly != nil {
		q.Set("unreadOnly", strconv.FormatBool(*unreadOnly))
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	return c.send(ctx, http.MethodGet, "/api/notifications?"+q.Encode(), token, nil)
}

func (c *clientImpl) MarkAsRead(ctx context.Context, token, notificationID string) error {
	_, err := c.send(ctx, http.MethodPost, "/api/notifications/"+url.PathEscape(notificationID)+"/read", token, nil)
	return err
}

func (c *clientImpl) MarkAllAsRead(ctx context.Context, token string) error {
	_, err := c.send(ctx, http.MethodPost, "/api/notifications/read-all", token, nil)
	return err
}

func (c *clientImpl) GetTemplates(ctx context.Context, token string, page, pageSize int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	return c.send(ctx, http.MethodGet, "/api/templates?"+q.Encode(), token, nil)
}

func (c *clientImpl) GetPreferences(ctx context.Context, token string) (json.RawMessage, error) {
	return c.send(ctx, http.MethodGet, "/api/preferences", token, nil)
}

func (c *clientImpl) UpdatePreferences(ctx context.Context, token string, preferences json.RawMessage) error {
	_, err := c.send(ctx, http.MethodPut, "/api/preferences", token, preferences)
	return err
}

func (c *clientImpl) send(ctx context.Context, method, path, token string, body json.RawMessage) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("notify: call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("notify: %s %s returned status %d", method, path, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("notify: read response: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}
	return json.RawMessage(payload), nil
}
