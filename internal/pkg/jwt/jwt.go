package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Verifier wraps the jwtauth instance used to validate bearer tokens issued
// by the identity provider. The gateway never issues tokens itself.
type Verifier interface {
	JWTAuth() *jwtauth.JWTAuth
	// Decode validates a raw token string and returns the subject claim.
	// Used by the SSE endpoint, which receives the token as a query
	// parameter instead of an Authorization header.
	Decode(tokenString string) (subject string, err error)
}

type verifierImpl struct {
	tokenAuth *jwtauth.JWTAuth
}

// NewVerifier builds a Verifier from the provider's JWKS endpoint. The key
// set is fetched once at startup; token lifetimes are short enough that key
// rotation is handled by restarting the gateway.
func NewVerifier(ctx context.Context, jwksURL string) (Verifier, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	set, err := jwk.Fetch(fetchCtx, jwksURL)
	if err != nil {
		return nil, fmt.Errorf("fetch JWKS from %s: %w", jwksURL, err)
	}

	key, ok := set.Key(0)
	if !ok {
		return nil, fmt.Errorf("JWKS at %s contains no keys", jwksURL)
	}

	var rawKey interface{}
	if err := key.Raw(&rawKey); err != nil {
		return nil, fmt.Errorf("extract public key: %w", err)
	}

	return &verifierImpl{
		tokenAuth: jwtauth.New("RS256", nil, rawKey, jwt.WithAcceptableSkew(30*time.Second)),
	}, nil
}

// NewDevVerifier builds an HS256 Verifier from a shared secret. Local
// development only; production tokens are RS256-signed by the provider.
func NewDevVerifier(secret string) Verifier {
	return &verifierImpl{
		tokenAuth: jwtauth.New("HS256", []byte(secret), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (v *verifierImpl) JWTAuth() *jwtauth.JWTAuth {
	return v.tokenAuth
}

func (v *verifierImpl) Decode(tokenString string) (string, error) {
	token, err := v.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}
	if err := jwt.Validate(token); err != nil {
		return "", err
	}

	subject := token.Subject()
	if subject == "" {
		return "", fmt.Errorf("token has no subject claim")
	}
	return subject, nil
}
