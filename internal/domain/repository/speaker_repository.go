package repository

import (
	"context"
	"errors"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSpeakerNotFound is returned when no speaker matches the lookup.
var ErrSpeakerNotFound = errors.New("speaker not found")

// SpeakerRepository defines the standard operations for speaker persistence.
type SpeakerRepository interface {
	FindAll(ctx context.Context) ([]*entity.Speaker, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Speaker, error)

	// FindByEmail retrieves a speaker by exact email match, used to reject
	// duplicate registrations.
	FindByEmail(ctx context.Context, email string) (*entity.Speaker, error)

	Create(ctx context.Context, speaker *entity.Speaker) error
	Update(ctx context.Context, speaker *entity.Speaker) error
	Delete(ctx context.Context, id uuid.UUID) error
}
