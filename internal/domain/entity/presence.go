package entity

import (
	"time"

	domainerrors "gather/internal/domain/errors"

	"github.com/google/uuid"
)

// Presence records that a user checked in at an event. At most one presence
// exists per (event, user) pair.
type Presence struct {
	ID          uuid.UUID
	EventID     uuid.UUID
	UserID      uuid.UUID
	CheckedInAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPresence builds a presence record with a fresh ID and timestamps.
func NewPresence(eventID, userID uuid.UUID, checkedInAt time.Time) (*Presence, error) {
	now := time.Now()
	if checkedInAt.IsZero() {
		checkedInAt = now
	}

	presence := &Presence{
		ID:          uuid.New(),
		EventID:     eventID,
		UserID:      userID,
		CheckedInAt: checkedInAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := presence.Validate(); err != nil {
		return nil, err
	}

	return presence, nil
}

// Validate enforces the entity invariants.
func (p *Presence) Validate() error {
	if p.EventID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("presence event id is required")
	}
	if p.UserID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("presence user id is required")
	}

	return nil
}
