package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateEventParams create a new event.
type CreateEventParams struct {
	Title                     string    `json:"title" validate:"required"`
	Description               string    `json:"description"`
	DateInit                  time.Time `json:"dateInit" validate:"required"`
	DateFinal                 time.Time `json:"dateFinal" validate:"required"`
	InscriptionInit           time.Time `json:"inscriptionInit" validate:"required"`
	InscriptionFinal          time.Time `json:"inscriptionFinal" validate:"required"`
	Location                  string    `json:"location" validate:"required"`
	AppHeaderImageURL         string    `json:"appHeaderImageUrl"`
	CertificateHeaderImageURL string    `json:"certificateHeaderImageUrl"`
}

// UpdateEventParams modify an existing event. Nil fields are left unchanged.
type UpdateEventParams struct {
	Title                     *string    `json:"title"`
	Description               *string    `json:"description"`
	DateInit                  *time.Time `json:"dateInit"`
	DateFinal                 *time.Time `json:"dateFinal"`
	InscriptionInit           *time.Time `json:"inscriptionInit"`
	InscriptionFinal          *time.Time `json:"inscriptionFinal"`
	Location                  *string    `json:"location"`
	AppHeaderImageURL         *string    `json:"appHeaderImageUrl"`
	CertificateHeaderImageURL *string    `json:"certificateHeaderImageUrl"`
}

// EventDTO is the outward event shape.
type EventDTO struct {
	ID                        uuid.UUID `json:"id"`
	Title                     string    `json:"title"`
	Description               string    `json:"description"`
	DateInit                  time.Time `json:"dateInit"`
	DateFinal                 time.Time `json:"dateFinal"`
	InscriptionInit           time.Time `json:"inscriptionInit"`
	InscriptionFinal          time.Time `json:"inscriptionFinal"`
	Location                  string    `json:"location"`
	AppHeaderImageURL         string    `json:"appHeaderImageUrl,omitempty"`
	CertificateHeaderImageURL string    `json:"certificateHeaderImageUrl,omitempty"`
	InscriptionOpen           bool      `json:"inscriptionOpen"`
	CreatedAt                 time.Time `json:"createdAt"`
	UpdatedAt                 time.Time `json:"updatedAt"`
}

// EventListResult is one page of events.
type EventListResult struct {
	Items []EventDTO `json:"items"`
	Meta  PageMeta   `json:"meta"`
}

// EventUsecase manages events.
type EventUsecase interface {
	Create(ctx context.Context, params CreateEventParams) (*EventDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*EventDTO, error)
	List(ctx context.Context, page PageParams) (*EventListResult, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateEventParams) (*EventDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
