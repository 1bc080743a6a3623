package entity

import (
	"strings"
	"time"

	domainerrors "gather/internal/domain/errors"

	"github.com/google/uuid"
)

// Speaker is a person presenting at events. Speakers are managed
// independently of user accounts; the email only identifies the speaker, it
// is not a login.
type Speaker struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Bio         string
	SocialLinks []string // Profile URLs, free-form.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewSpeaker builds a speaker with a fresh ID and timestamps.
func NewSpeaker(name, email string) (*Speaker, error) {
	now := time.Now()
	speaker := &Speaker{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := speaker.Validate(); err != nil {
		return nil, err
	}

	return speaker, nil
}

// Validate enforces the entity invariants.
func (s *Speaker) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("speaker name is required")
	}
	if !emailPattern.MatchString(s.Email) {
		return domainerrors.ErrValidationFailed.WrapMessage("speaker email is invalid")
	}

	return nil
}

// Touch marks the entity as modified.
func (s *Speaker) Touch() {
	s.UpdatedAt = time.Now()
}
