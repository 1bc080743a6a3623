package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/pkg/errors"

	"gather/config"
	"gather/internal/domain/service"
)

// hmacTokenHasher digests refresh tokens with HMAC-SHA256 so the raw token
// never touches persistent storage. The digest is keyed to make offline
// brute-forcing of leaked hashes useless without the secret.
type hmacTokenHasher struct {
	secret []byte
}

// NewTokenHasher is the constructor for hmacTokenHasher. It keys the HMAC
// with the shared JWT secret.
func NewTokenHasher(cfg *config.Config) (service.TokenHasher, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &hmacTokenHasher{secret: []byte(cfg.JWT.Secret)}, nil
}

// HashToken returns the lowercase hex HMAC-SHA256 digest of the token.
func (h *hmacTokenHasher) HashToken(token string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(token))

	return hex.EncodeToString(mac.Sum(nil))
}
