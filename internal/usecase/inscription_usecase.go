package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gather/internal/domain/entity"
)

// CreateInscriptionParams enroll a user into an event.
type CreateInscriptionParams struct {
	EventID    uuid.UUID `json:"eventId" validate:"required"`
	UserID     uuid.UUID `json:"userId" validate:"required"`
	ActivityID string    `json:"activityId"`
}

// UpdateInscriptionStatusParams change an inscription's status.
type UpdateInscriptionStatusParams struct {
	Status entity.InscriptionStatus `json:"status" validate:"required"`
}

// InscriptionDTO is the outward inscription shape.
type InscriptionDTO struct {
	ID         uuid.UUID                `json:"id"`
	EventID    uuid.UUID                `json:"eventId"`
	UserID     uuid.UUID                `json:"userId"`
	ActivityID string                   `json:"activityId,omitempty"`
	Status     entity.InscriptionStatus `json:"status"`
	CreatedAt  time.Time                `json:"createdAt"`
	UpdatedAt  time.Time                `json:"updatedAt"`
}

// InscriptionListResult is one page of inscriptions.
type InscriptionListResult struct {
	Items []InscriptionDTO `json:"items"`
	Meta  PageMeta         `json:"meta"`
}

// InscriptionUsecase manages event inscriptions.
type InscriptionUsecase interface {
	// Create enrolls the user, rejecting duplicates per event, and sends a
	// confirmation email with the check-in QR code attached inline.
	Create(ctx context.Context, params CreateInscriptionParams) (*InscriptionDTO, error)

	GetByID(ctx context.Context, id uuid.UUID) (*InscriptionDTO, error)
	List(ctx context.Context, page PageParams) (*InscriptionListResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, params UpdateInscriptionStatusParams) (*InscriptionDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// CheckInQR renders the PNG check-in QR code for an inscription.
	CheckInQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
