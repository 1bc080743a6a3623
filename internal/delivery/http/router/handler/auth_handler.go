// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gather/internal/delivery/http/response"
	"gather/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// refreshTokenCookie is the HttpOnly cookie that mirrors the refresh token
// for browser clients. Scoped to /auth so it is only sent where needed.
const refreshTokenCookie = "refreshToken"

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the email/password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var params usecase.LoginParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Login(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, result.RefreshToken)

	return response.Success(c, http.StatusOK, result, "Login successful")
}

// ListProviders returns the enabled OAuth provider discovery listing.
func (h *AuthHandler) ListProviders(c echo.Context) error {
	providers := h.uc.ListOAuthProviders(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]any{"providers": providers}, "Providers listed")
}

// StartOAuth begins an OAuth authorization flow for a provider.
func (h *AuthHandler) StartOAuth(c echo.Context) error {
	var params usecase.StartOAuthParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid authorization input")
	}
	params.Provider = c.Param("provider")
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.StartOAuthAuthorization(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Authorization started")
}

// OAuthCallback completes an OAuth authorization flow. The provider
// redirects here with code and state in the query; the PKCE verifier comes
// from the client in the body (POST) or query (GET).
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	var params usecase.OAuthCallbackParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid callback input")
	}
	params.Provider = c.Param("provider")
	if params.Code == "" {
		params.Code = c.QueryParam("code")
	}
	if params.State == "" {
		params.State = c.QueryParam("state")
	}
	if params.CodeVerifier == "" {
		params.CodeVerifier = c.QueryParam("codeVerifier")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.OAuthCallback(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, result.RefreshToken)

	// The refresh token travels only in the cookie on the OAuth path.
	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken": result.AccessToken,
		"user":        result.User,
	}, "OAuth authentication successful")
}

// RefreshToken rotates a refresh token. The token is taken from the JSON
// body, falling back to the auth cookie for browser clients.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var params usecase.RefreshTokenParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	if params.RefreshToken == "" {
		if cookie, err := c.Cookie(refreshTokenCookie); err == nil {
			params.RefreshToken = cookie.Value
		}
	}
	if params.RefreshToken == "" {
		return response.BadRequest(c, "REFRESH_TOKEN_REQUIRED", "Refresh token is required")
	}

	result, err := h.uc.RefreshToken(c.Request().Context(), params)
	if err != nil {
		// A failed rotation invalidates whatever the cookie held.
		h.clearRefreshCookie(c)

		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, result.RefreshToken)

	return response.Success(c, http.StatusOK, result, "Token refreshed successfully")
}

// ValidateToken verifies the bearer access token and returns its user.
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenString := ""
	if after, ok := cutBearer(authHeader); ok {
		tokenString = after
	}
	if tokenString == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Bearer token is required")
	}

	result, err := h.uc.ValidateToken(c.Request().Context(), tokenString)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Token is valid")
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, refreshToken string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/auth",
		MaxAge:   int((7 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshTokenCookie,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func cutBearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):], true
	}

	return "", false
}
