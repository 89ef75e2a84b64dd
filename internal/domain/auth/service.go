package auth

import "context"

// Service exchanges credentials and refresh tokens with the identity
// provider. The gateway keeps no session state of its own.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Refresh(ctx context.Context, req RefreshTokenRequest) (*TokenResponse, error)
	// Logout invalidates the refresh token upstream. It never fails from the
	// caller's perspective: the client must be able to drop its local tokens
	// even when the provider is unreachable.
	Logout(ctx context.Context, req LogoutRequest)
}
