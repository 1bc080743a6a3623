package middleware

import (
	"strings"

	"gather/internal/delivery/http/response"
	"gather/internal/domain/entity"
	"gather/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID  = "userID"
	ContextKeyEmail   = "email"
	ContextKeyProfile = "profile"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access
// token. All failure modes collapse to a generic 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		payload, err := m.tokenSvc.VerifyAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, payload.UserID)
		c.Set(ContextKeyEmail, payload.Email)
		c.Set(ContextKeyProfile, payload.Profile)

		return next(c)
	}
}

// RequireProfile is a middleware factory that checks the authenticated
// user's profile. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireProfile(required entity.Profile) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile, ok := c.Get(ContextKeyProfile).(entity.Profile)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: profile information missing")
			}

			if profile != required {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+string(required)+"' profile")
			}

			return next(c)
		}
	}
}

// RequireProfiles allows any of the listed profiles.
func (m *AuthMiddleware) RequireProfiles(allowed ...entity.Profile) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile, ok := c.Get(ContextKeyProfile).(entity.Profile)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: profile information missing")
			}

			for _, candidate := range allowed {
				if profile == candidate {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied")
		}
	}
}
