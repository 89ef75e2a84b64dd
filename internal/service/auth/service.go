package auth

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dungnt9/hrm-ApiGateway/internal/config"
	"github.com/dungnt9/hrm-ApiGateway/internal/domain/auth"
	"golang.org/x/oauth2"
)

type service struct {
	oauth          *oauth2.Config
	logoutEndpoint string
	httpClient     *http.Client
}

// NewAuthService creates the auth service backed by the identity provider's
// OAuth2 token endpoints.
func NewAuthService(cfg *config.Config) auth.Service {
	return &service{
		oauth: &oauth2.Config{
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL: cfg.OIDC.TokenEndpoint(),
			},
			Scopes: []string{"openid", "profile", "email"},
		},
		logoutEndpoint: cfg.OIDC.LogoutEndpoint(),
		httpClient:     &http.Client{Timeout: cfg.Services.Timeout},
	}
}

func (s *service) Login(ctx context.Context, req auth.LoginRequest) (*auth.TokenResponse, error) {
	token, err := s.oauth.PasswordCredentialsToken(ctx, req.Username, req.Password)
	if err != nil {
		// The provider's error body can echo request details; log it here
		// and hand the caller the sentinel only.
		slog.Warn("Login failed", "username", req.Username, "error", err)
		return nil, auth.ErrInvalidCredentials
	}
	return tokenResponse(token), nil
}

func (s *service) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (*auth.TokenResponse, error) {
	source := s.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: req.RefreshToken})
	token, err := source.Token()
	if err != nil {
		slog.Warn("Token refresh failed", "error", err)
		return nil, auth.ErrRefreshFailed
	}
	return tokenResponse(token), nil
}

// Logout revokes the session at the identity provider. Revocation failures
// are logged and swallowed: the client has already discarded its tokens, so
// there is nothing useful it could do with an error.
func (s *service) Logout(ctx context.Context, req auth.LogoutRequest) {
	form := url.Values{}
	form.Set("client_id", s.oauth.ClientID)
	form.Set("refresh_token", req.RefreshToken)
	if s.oauth.ClientSecret != "" {
		form.Set("client_secret", s.oauth.ClientSecret)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.logoutEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		slog.Warn("Logout request build failed", "error", err)
		return
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		slog.Warn("Logout call failed", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		slog.Warn("Logout rejected by identity provider", "status", resp.StatusCode)
	}
}

func tokenResponse(token *oauth2.Token) *auth.TokenResponse {
	expiresIn := int64(0)
	if !token.Expiry.IsZero() {
		expiresIn = int64(time.Until(token.Expiry).Seconds())
	}

	tokenType := token.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return &auth.TokenResponse{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresIn,
		TokenType:    tokenType,
	}
}
