package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gather/internal/domain/entity"
	"gather/internal/domain/service"
)

// LoginParams are the credentials for a password login.
type LoginParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUserDTO is the user shape returned by auth operations.
type AuthUserDTO struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Profile entity.Profile `json:"profile"`
}

// LoginResult bundles the issued token pair with the authenticated user.
type LoginResult struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         AuthUserDTO `json:"user"`
}

// StartOAuthParams begin an authorization flow for a provider.
type StartOAuthParams struct {
	Provider      string `json:"provider" validate:"required"`
	CodeChallenge string `json:"codeChallenge" validate:"required"`
	RedirectURI   string `json:"redirectUri"`
}

// StartOAuthResult carries the provider authorization URL and the opaque
// state the client must echo back on callback. ExpiresAt tells the client
// when the pending attempt lapses.
type StartOAuthResult struct {
	Provider         string    `json:"provider"`
	AuthorizationURL string    `json:"authorizationUrl"`
	State            string    `json:"state"`
	ExpiresAt        time.Time `json:"expiresAt"`
}

// OAuthCallbackParams complete an authorization flow.
type OAuthCallbackParams struct {
	Provider     string `json:"provider" validate:"required"`
	Code         string `json:"code" validate:"required"`
	State        string `json:"state" validate:"required"`
	CodeVerifier string `json:"codeVerifier" validate:"required"`
	RedirectURI  string `json:"redirectUri"`
}

// RefreshTokenParams rotate a refresh token.
type RefreshTokenParams struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RefreshTokenResult carries the rotated token pair.
type RefreshTokenResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ValidateTokenResult reports the outcome of an access token check. User is
// set only when the token is valid.
type ValidateTokenResult struct {
	Valid bool         `json:"valid"`
	User  *AuthUserDTO `json:"user,omitempty"`
}

// AuthUsecase is the authentication orchestration surface.
type AuthUsecase interface {
	// Login authenticates an email/password pair and issues a token pair.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)

	// StartOAuthAuthorization validates the PKCE challenge, records the
	// attempt in the state store and returns the provider authorization URL.
	StartOAuthAuthorization(ctx context.Context, params StartOAuthParams) (*StartOAuthResult, error)

	// OAuthCallback consumes the state, exchanges the code, provisions or
	// links the local user and issues a token pair.
	OAuthCallback(ctx context.Context, params OAuthCallbackParams) (*LoginResult, error)

	// RefreshToken rotates a refresh token, detecting reuse of stale tokens.
	RefreshToken(ctx context.Context, params RefreshTokenParams) (*RefreshTokenResult, error)

	// ValidateToken verifies an access token and resolves its user.
	ValidateToken(ctx context.Context, accessToken string) (*ValidateTokenResult, error)

	// ListOAuthProviders returns the enabled provider discovery listing.
	ListOAuthProviders(ctx context.Context) []service.OAuthProviderInfo
}
