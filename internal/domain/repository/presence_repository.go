package repository

import (
	"context"
	"errors"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPresenceNotFound is returned when no presence matches the lookup.
var ErrPresenceNotFound = errors.New("presence not found")

// PresenceRepository defines the standard operations for presence
// persistence.
type PresenceRepository interface {
	FindAll(ctx context.Context) ([]*entity.Presence, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Presence, error)

	// FindByEventAndUser retrieves the presence for the (event, user) pair,
	// used to keep check-in idempotent.
	FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entity.Presence, error)

	Create(ctx context.Context, presence *entity.Presence) error
	Delete(ctx context.Context, id uuid.UUID) error
}
