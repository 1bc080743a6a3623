// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"strings"
	"time"

	domainerrors "gather/internal/domain/errors"

	"github.com/google/uuid"
)

// Profile is the flat role string attached to every user account.
type Profile string

const (
	ProfileAdmin Profile = "admin"
	ProfileUser  Profile = "user"
	ProfileGuest Profile = "guest"
)

// IsValid reports whether the profile is one of the known role strings.
func (p Profile) IsValid() bool {
	switch p {
	case ProfileAdmin, ProfileUser, ProfileGuest:
		return true
	}

	return false
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User is the core principal of the system. A user is resolvable either by
// email+password or by a linked OAuth identity; both may coexist after
// account linking.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's display name.
	Email        string    // The user's email, used as the login identifier.
	PasswordHash string    // bcrypt hash of the password; empty for OAuth-only accounts.
	Profile      Profile   // Flat role string: "admin", "user" or "guest".

	// OAuth identity binding. Both fields are empty until an external
	// identity is linked to the account.
	OAuthProvider string // Provider name, e.g. "google".
	OAuthSubject  string // The provider's stable subject identifier.

	// RefreshTokenHash holds the HMAC digest of the currently valid refresh
	// token. Presenting a refresh token whose digest differs means the token
	// was already rotated away (or stolen).
	RefreshTokenHash string

	LastLoginAt *time.Time // Set on every successful login or token rotation.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUser builds a user with a fresh ID and timestamps. The profile defaults
// to "user" when empty.
func NewUser(name, email string, profile Profile) (*User, error) {
	if profile == "" {
		profile = ProfileUser
	}

	now := time.Now()
	user := &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Profile:   profile,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate enforces the entity invariants.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("user name is required")
	}
	if !emailPattern.MatchString(u.Email) {
		return domainerrors.ErrValidationFailed.WrapMessage("user email is invalid")
	}
	if !u.Profile.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("user profile is invalid")
	}

	return nil
}

// HasPassword reports whether the account can authenticate with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// LinkOAuthIdentity binds an external identity to the account.
func (u *User) LinkOAuthIdentity(provider, subject string) {
	u.OAuthProvider = provider
	u.OAuthSubject = subject
	u.UpdatedAt = time.Now()
}

// Touch marks the entity as modified.
func (u *User) Touch() {
	u.UpdatedAt = time.Now()
}

// RecordLogin stamps the last-login time.
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
	u.UpdatedAt = at
}

// DefaultNameFromEmail derives a display name from the email local-part,
// used when an OAuth profile carries no display name.
func DefaultNameFromEmail(email string) string {
	localPart, _, _ := strings.Cut(email, "@")
	if localPart == "" {
		return "OAuth User"
	}

	return localPart
}
