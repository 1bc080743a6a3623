package service

import (
	"context"
	"time"
)

// OAuthProfile is the verified external identity returned by a provider
// after a successful code exchange.
type OAuthProfile struct {
	Subject       string // The provider's stable subject identifier.
	Email         string
	Name          string
	EmailVerified bool
}

// OAuthAuthorizationParams carries everything needed to build a provider
// authorization URL.
type OAuthAuthorizationParams struct {
	State         string
	CodeChallenge string
	RedirectURI   string
}

// OAuthCodeExchangeParams carries the callback inputs for the token
// exchange.
type OAuthCodeExchangeParams struct {
	Code         string
	CodeVerifier string
	RedirectURI  string
}

// OAuthProviderClient is implemented once per identity provider.
type OAuthProviderClient interface {
	// Provider returns the stable provider name, e.g. "google".
	Provider() string

	// DisplayName returns the human-readable provider name for discovery.
	DisplayName() string

	// DefaultRedirectURI returns the configured fallback redirect URI.
	DefaultRedirectURI() string

	// AuthorizationURL builds the provider's authorization endpoint URL
	// with response_type=code, the requested scopes, the PKCE challenge
	// (S256) and the opaque state.
	AuthorizationURL(params OAuthAuthorizationParams) string

	// ExchangeCodeForProfile exchanges the authorization code (plus PKCE
	// verifier) at the token endpoint, then resolves the user profile from
	// the user-info endpoint.
	ExchangeCodeForProfile(ctx context.Context, params OAuthCodeExchangeParams) (*OAuthProfile, error)
}

// OAuthProviderInfo is the discovery listing entry for an enabled provider.
type OAuthProviderInfo struct {
	Provider    string `json:"provider"`
	DisplayName string `json:"displayName"`
}

// OAuthProviderRegistry looks up enabled provider clients by name.
type OAuthProviderRegistry interface {
	// Get returns the client for the provider name, or a validation error
	// when the provider is not enabled.
	Get(provider string) (OAuthProviderClient, error)

	// ListEnabled returns the discovery listing for all enabled providers.
	ListEnabled() []OAuthProviderInfo
}

// OAuthStateContext binds a single authorization attempt: the opaque state,
// the provider it was started for, the PKCE challenge to check at callback
// time, the redirect URI and the expiry.
type OAuthStateContext struct {
	State         string
	Provider      string
	CodeChallenge string
	RedirectURI   string
	ExpiresAt     time.Time
}

// OAuthStateStore is the short-lived, single-use server-side record of
// in-flight authorization attempts. Entries live in process memory only; a
// restart invalidates every in-flight attempt.
type OAuthStateStore interface {
	// Create generates an unguessable state, stores the context under it
	// with the configured TTL and returns it.
	Create(provider, codeChallenge, redirectURI string) *OAuthStateContext

	// Consume looks up the context by state and removes the entry in the
	// same atomic step, regardless of outcome. It then validates presence,
	// provider and expiry; any failure is an unauthorized error. A given
	// state therefore resolves at most once.
	Consume(state, provider string) (*OAuthStateContext, error)
}
