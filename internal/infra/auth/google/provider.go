// Package google implements the Google identity provider client.
package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"gather/config"
	"gather/internal/domain/service"
)

const (
	// ProviderName is the stable registry key for this provider.
	ProviderName = "google"

	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

	defaultScopes = "openid email profile"
)

// Provider handles the Google OAuth authorization code flow with PKCE.
type Provider struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string
	httpClient   *http.Client

	// Endpoint overrides for tests.
	authURL     string
	tokenURL    string
	userInfoURL string
}

// NewProvider creates a new Google provider client, or nil when the provider
// is not configured.
func NewProvider(cfg *config.Config) service.OAuthProviderClient {
	if cfg.OAuth == nil || cfg.OAuth.Providers.Google == nil || cfg.OAuth.Providers.Google.ClientID == "" {
		return nil
	}

	providerCfg := cfg.OAuth.Providers.Google
	scopes := providerCfg.Scopes
	if scopes == "" {
		scopes = defaultScopes
	}

	return &Provider{
		clientID:     providerCfg.ClientID,
		clientSecret: providerCfg.ClientSecret,
		redirectURI:  providerCfg.RedirectURI,
		scopes:       scopes,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		authURL:      googleAuthURL,
		tokenURL:     googleTokenURL,
		userInfoURL:  googleUserInfoURL,
	}
}

// Provider returns the stable provider name.
func (p *Provider) Provider() string {
	return ProviderName
}

// DisplayName returns the human-readable provider name.
func (p *Provider) DisplayName() string {
	return "Google"
}

// DefaultRedirectURI returns the configured fallback redirect URI.
func (p *Provider) DefaultRedirectURI() string {
	return p.redirectURI
}

// AuthorizationURL constructs the Google authorization URL with the PKCE
// challenge and state. Offline access with forced consent keeps refresh
// behavior consistent across repeat sign-ins.
func (p *Provider) AuthorizationURL(params service.OAuthAuthorizationParams) string {
	values := url.Values{}
	values.Set("client_id", p.clientID)
	values.Set("redirect_uri", params.RedirectURI)
	values.Set("scope", p.scopes)
	values.Set("response_type", "code")
	values.Set("state", params.State)
	values.Set("code_challenge", params.CodeChallenge)
	values.Set("code_challenge_method", "S256")
	values.Set("access_type", "offline")
	values.Set("prompt", "consent")

	return p.authURL + "?" + values.Encode()
}

// ExchangeCodeForProfile exchanges an authorization code for an access token
// and resolves the user's profile from the user-info endpoint.
func (p *Provider) ExchangeCodeForProfile(ctx context.Context, params service.OAuthCodeExchangeParams) (*service.OAuthProfile, error) {
	accessToken, err := p.exchangeCode(ctx, params)
	if err != nil {
		return nil, err
	}

	return p.fetchUserInfo(ctx, accessToken)
}

func (p *Provider) exchangeCode(ctx context.Context, params service.OAuthCodeExchangeParams) (string, error) {
	data := url.Values{}
	data.Set("client_id", p.clientID)
	data.Set("client_secret", p.clientSecret)
	data.Set("code", params.Code)
	data.Set("code_verifier", params.CodeVerifier)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", params.RedirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}
	if tokenResponse.AccessToken == "" {
		return "", errors.New("token response missing access token")
	}

	return tokenResponse.AccessToken, nil
}

func (p *Provider) fetchUserInfo(ctx context.Context, accessToken string) (*service.OAuthProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var userInfo struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		EmailVerified bool   `json:"email_verified"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return &service.OAuthProfile{
		Subject:       userInfo.Sub,
		Email:         userInfo.Email,
		Name:          userInfo.Name,
		EmailVerified: userInfo.EmailVerified,
	}, nil
}
