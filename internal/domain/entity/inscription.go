package entity

import (
	"time"

	domainerrors "gather/internal/domain/errors"

	"github.com/google/uuid"
)

// InscriptionStatus tracks the lifecycle of an event registration.
type InscriptionStatus string

const (
	InscriptionPending   InscriptionStatus = "pending"
	InscriptionConfirmed InscriptionStatus = "confirmed"
	InscriptionCancelled InscriptionStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values.
func (s InscriptionStatus) IsValid() bool {
	switch s {
	case InscriptionPending, InscriptionConfirmed, InscriptionCancelled:
		return true
	}

	return false
}

// Inscription registers a user for an event, optionally for a specific
// activity within it.
type Inscription struct {
	ID         uuid.UUID
	EventID    uuid.UUID
	UserID     uuid.UUID
	ActivityID string // Free-form activity identifier; empty for whole-event inscriptions.
	Status     InscriptionStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewInscription builds an inscription with a fresh ID and timestamps. The
// status defaults to "pending" when empty.
func NewInscription(eventID, userID uuid.UUID, activityID string, status InscriptionStatus) (*Inscription, error) {
	if status == "" {
		status = InscriptionPending
	}

	now := time.Now()
	inscription := &Inscription{
		ID:         uuid.New(),
		EventID:    eventID,
		UserID:     userID,
		ActivityID: activityID,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := inscription.Validate(); err != nil {
		return nil, err
	}

	return inscription, nil
}

// Validate enforces the entity invariants.
func (i *Inscription) Validate() error {
	if i.EventID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("inscription event id is required")
	}
	if i.UserID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("inscription user id is required")
	}
	if !i.Status.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("inscription status is invalid")
	}

	return nil
}

// Touch marks the entity as modified.
func (i *Inscription) Touch() {
	i.UpdatedAt = time.Now()
}
