package repository

import (
	"context"
	"errors"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when no event matches the lookup.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the standard operations for event persistence.
type EventRepository interface {
	FindAll(ctx context.Context) ([]*entity.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	Create(ctx context.Context, event *entity.Event) error
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}
