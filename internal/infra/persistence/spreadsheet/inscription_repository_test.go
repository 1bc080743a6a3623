package spreadsheet

import (
	"context"
	"testing"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInscriptionRepository_RoundTrip(t *testing.T) {
	repo := NewInscriptionRepository(&fakeValues{})

	inscription, err := entity.NewInscription(uuid.New(), uuid.New(), "workshop-1", entity.InscriptionPending)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), inscription))

	got, err := repo.FindByID(context.Background(), inscription.ID)
	require.NoError(t, err)
	assert.Equal(t, inscription.EventID, got.EventID)
	assert.Equal(t, inscription.UserID, got.UserID)
	assert.Equal(t, "workshop-1", got.ActivityID)
	assert.Equal(t, entity.InscriptionPending, got.Status)
}

func TestInscriptionRepository_FindByEventAndUser(t *testing.T) {
	repo := NewInscriptionRepository(&fakeValues{})

	inscription, err := entity.NewInscription(uuid.New(), uuid.New(), "", entity.InscriptionConfirmed)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), inscription))

	got, err := repo.FindByEventAndUser(context.Background(), inscription.EventID, inscription.UserID)
	require.NoError(t, err)
	assert.Equal(t, inscription.ID, got.ID)

	_, err = repo.FindByEventAndUser(context.Background(), inscription.EventID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrInscriptionNotFound)
}

func TestInscriptionRepository_UpdateStatus(t *testing.T) {
	repo := NewInscriptionRepository(&fakeValues{})

	inscription, err := entity.NewInscription(uuid.New(), uuid.New(), "", entity.InscriptionPending)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), inscription))

	inscription.Status = entity.InscriptionConfirmed
	inscription.Touch()
	require.NoError(t, repo.Update(context.Background(), inscription))

	got, err := repo.FindByID(context.Background(), inscription.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InscriptionConfirmed, got.Status)
}

func TestInscriptionRepository_Delete(t *testing.T) {
	repo := NewInscriptionRepository(&fakeValues{})

	inscription, err := entity.NewInscription(uuid.New(), uuid.New(), "", entity.InscriptionPending)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), inscription))

	require.NoError(t, repo.Delete(context.Background(), inscription.ID))

	_, err = repo.FindByID(context.Background(), inscription.ID)
	assert.ErrorIs(t, err, repository.ErrInscriptionNotFound)
}
