package repository

import (
	"context"
	"errors"

	"gather/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInscriptionNotFound is returned when no inscription matches the lookup.
var ErrInscriptionNotFound = errors.New("inscription not found")

// InscriptionRepository defines the standard operations for inscription
// persistence.
type InscriptionRepository interface {
	FindAll(ctx context.Context) ([]*entity.Inscription, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inscription, error)

	// FindByEventAndUser retrieves the inscription for the (event, user)
	// pair, used to reject duplicate registrations.
	FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entity.Inscription, error)

	Create(ctx context.Context, inscription *entity.Inscription) error
	Update(ctx context.Context, inscription *entity.Inscription) error
	Delete(ctx context.Context, id uuid.UUID) error
}
