package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dungnt9/hrm-ApiGateway/internal/config"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(issuer string) *config.Config {
	return &config.Config{
		OIDC: config.OIDCConfig{
			Issuer:       issuer,
			ClientID:     "hrm-frontend",
			ClientSecret: "test-secret",
		},
		Services: config.ServicesConfig{
			Timeout: 5 * time.Second,
		},
	}
}

func TestLoginSuccess(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/protocol/openid-connect/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.Form.Get("grant_type"))
		assert.Equal(t, "alice", r.Form.Get("username"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "access-123",
			"refresh_token": "refresh-456",
			"token_type": "Bearer",
			"expires_in": 300
		}`))
	}))
	defer provider.Close()

	svc := NewAuthService(testConfig(provider.URL))

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "access-123", tokens.AccessToken)
	assert.Equal(t, "refresh-456", tokens.RefreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.InDelta(t, 300, tokens.ExpiresIn, 5)
}

func TestLoginInvalidCredentials(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid user credentials"}`))
	}))
	defer provider.Close()

	svc := NewAuthService(testConfig(provider.URL))

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "alice", Password: "wrong"})

	// The provider's error body must not leak to the caller
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshFailed(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer provider.Close()

	svc := NewAuthService(testConfig(provider.URL))

	_, err := svc.Refresh(context.Background(), auth.RefreshTokenRequest{RefreshToken: "expired"})
	assert.ErrorIs(t, err, auth.ErrRefreshFailed)
}

func TestLogoutSwallowsProviderFailure(t *testing.T) {
	var calls atomic.Int64
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer provider.Close()

	svc := NewAuthService(testConfig(provider.URL))

	// Returns normally even though the provider rejected the revocation
	svc.Logout(context.Background(), auth.LogoutRequest{RefreshToken: "rt-1"})
	assert.Equal(t, int64(1), calls.Load())
}

func TestLogoutSendsRevocationForm(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/protocol/openid-connect/logout", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "hrm-frontend", r.Form.Get("client_id"))
		assert.Equal(t, "rt-1", r.Form.Get("refresh_token"))
		assert.Equal(t, "test-secret", r.Form.Get("client_secret"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer provider.Close()

	svc := NewAuthService(testConfig(provider.URL))
	svc.Logout(context.Background(), auth.LogoutRequest{RefreshToken: "rt-1"})
}
