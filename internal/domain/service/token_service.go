// Package service defines the domain service contracts consumed by the
// use cases. Concrete implementations live under internal/infra.
package service

import (
	"errors"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
)

// Token verification failures are classified so callers can branch on the
// cause (prompt re-login vs reject outright). The HTTP boundary collapses
// all of them to 401 to avoid acting as an oracle.
var (
	// ErrTokenExpired means the token was well-formed and correctly signed
	// but its embedded expiry has elapsed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid means the token was malformed or its signature did
	// not verify against the configured secret.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenVerification is the catch-all for any other verification
	// failure.
	ErrTokenVerification = errors.New("token verification failed")
)

// TokenPayload is the minimal claim set embedded in both access and refresh
// tokens. It is never trusted unless signature verification succeeds and the
// token has not expired.
type TokenPayload struct {
	UserID  uuid.UUID
	Email   string
	Profile entity.Profile
}

// TokenPair bundles a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues and verifies signed, time-limited tokens. Issuing and
// verifying are pure cryptographic functions over the configured secret;
// expiry is encoded inside the token, not tracked externally.
type TokenService interface {
	GenerateAccessToken(payload TokenPayload) (string, error)
	GenerateRefreshToken(payload TokenPayload) (string, error)
	GenerateTokenPair(payload TokenPayload) (*TokenPair, error)

	// VerifyAccessToken returns the decoded payload, or one of
	// ErrTokenExpired, ErrTokenInvalid, ErrTokenVerification.
	VerifyAccessToken(token string) (*TokenPayload, error)

	// VerifyRefreshToken behaves like VerifyAccessToken for refresh tokens.
	VerifyRefreshToken(token string) (*TokenPayload, error)
}

// TokenHasher produces a deterministic one-way digest of a token for
// at-rest storage and reuse comparison. It is used only for refresh tokens.
type TokenHasher interface {
	HashToken(token string) string
}
