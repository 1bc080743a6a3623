// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindAll retrieves every user row.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// The match is exact and case-sensitive, as stored.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByOAuthIdentity retrieves the user linked to the external
	// (provider, subject) identity.
	FindByOAuthIdentity(ctx context.Context, provider, subject string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user row.
	Delete(ctx context.Context, id uuid.UUID) error
}
