package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateSpeakerParams register a new speaker.
type CreateSpeakerParams struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Bio         string   `json:"bio"`
	SocialLinks []string `json:"socialLinks" validate:"omitempty,dive,url"`
}

// UpdateSpeakerParams modify an existing speaker. Nil fields are left
// unchanged.
type UpdateSpeakerParams struct {
	Name        *string   `json:"name"`
	Email       *string   `json:"email" validate:"omitempty,email"`
	Bio         *string   `json:"bio"`
	SocialLinks *[]string `json:"socialLinks" validate:"omitempty,dive,url"`
}

// SpeakerDTO is the outward speaker shape.
type SpeakerDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Bio         string    `json:"bio,omitempty"`
	SocialLinks []string  `json:"socialLinks,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SpeakerListResult is one page of speakers.
type SpeakerListResult struct {
	Items []SpeakerDTO `json:"items"`
	Meta  PageMeta     `json:"meta"`
}

// SpeakerUsecase manages event speakers.
type SpeakerUsecase interface {
	Create(ctx context.Context, params CreateSpeakerParams) (*SpeakerDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SpeakerDTO, error)
	List(ctx context.Context, page PageParams) (*SpeakerListResult, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateSpeakerParams) (*SpeakerDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
