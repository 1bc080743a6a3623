// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gather/config"
	"gather/internal/domain/entity"
	"gather/internal/domain/service"
)

// tokenClaims is the signed claim set carried by both token kinds.
type tokenClaims struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard. Access and refresh tokens share one signing secret and
// differ only in lifetime.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.JWT.Secret),
		accessTTL:  cfg.JWT.AccessTokenExpiry,
		refreshTTL: cfg.JWT.RefreshTokenExpiry,
	}, nil
}

// GenerateAccessToken creates a short-lived access token.
func (s *jwtService) GenerateAccessToken(payload service.TokenPayload) (string, error) {
	return s.generateToken(payload, s.accessTTL)
}

// GenerateRefreshToken creates a long-lived refresh token.
func (s *jwtService) GenerateRefreshToken(payload service.TokenPayload) (string, error) {
	return s.generateToken(payload, s.refreshTTL)
}

// GenerateTokenPair creates a matched access/refresh token pair.
func (s *jwtService) GenerateTokenPair(payload service.TokenPayload) (*service.TokenPair, error) {
	accessToken, err := s.GenerateAccessToken(payload)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.GenerateRefreshToken(payload)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// VerifyAccessToken checks the signature and expiry and returns the payload.
func (s *jwtService) VerifyAccessToken(token string) (*service.TokenPayload, error) {
	return s.verifyToken(token)
}

// VerifyRefreshToken behaves like VerifyAccessToken for refresh tokens.
func (s *jwtService) VerifyRefreshToken(token string) (*service.TokenPayload, error) {
	return s.verifyToken(token)
}

func (s *jwtService) generateToken(payload service.TokenPayload, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:  payload.UserID.String(),
		Email:   payload.Email,
		Profile: string(payload.Profile),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) verifyToken(tokenString string) (*service.TokenPayload, error) {
	claims := &tokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, classifyVerificationError(err)
	}

	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	return claimsToPayload(claims)
}

// classifyVerificationError maps jwt library failures onto the domain's
// typed verification errors.
func classifyVerificationError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrSignatureInvalid):
		return service.ErrTokenInvalid
	default:
		return service.ErrTokenVerification
	}
}

func claimsToPayload(claims *tokenClaims) (*service.TokenPayload, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, service.ErrTokenInvalid
	}

	return &service.TokenPayload{
		UserID:  userID,
		Email:   claims.Email,
		Profile: entity.Profile(claims.Profile),
	}, nil
}
