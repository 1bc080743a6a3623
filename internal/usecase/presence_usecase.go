package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RegisterPresenceParams record attendance of a user at an event.
type RegisterPresenceParams struct {
	EventID uuid.UUID `json:"eventId" validate:"required"`
	UserID  uuid.UUID `json:"userId" validate:"required"`
}

// PresenceDTO is the outward presence shape.
type PresenceDTO struct {
	ID          uuid.UUID `json:"id"`
	EventID     uuid.UUID `json:"eventId"`
	UserID      uuid.UUID `json:"userId"`
	CheckedInAt time.Time `json:"checkedInAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PresenceListResult is one page of presences.
type PresenceListResult struct {
	Items []PresenceDTO `json:"items"`
	Meta  PageMeta      `json:"meta"`
}

// PresenceUsecase manages event attendance records.
type PresenceUsecase interface {
	// Register records a check-in. Registering the same user twice for the
	// same event returns the existing record.
	Register(ctx context.Context, params RegisterPresenceParams) (*PresenceDTO, error)

	GetByID(ctx context.Context, id uuid.UUID) (*PresenceDTO, error)
	List(ctx context.Context, page PageParams) (*PresenceListResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
