package spreadsheet

import (
	"context"
	"testing"
	"time"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceRepository_RoundTrip(t *testing.T) {
	repo := NewPresenceRepository(&fakeValues{})

	checkedInAt := time.Now().Truncate(time.Second)
	presence, err := entity.NewPresence(uuid.New(), uuid.New(), checkedInAt)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), presence))

	got, err := repo.FindByID(context.Background(), presence.ID)
	require.NoError(t, err)
	assert.Equal(t, presence.EventID, got.EventID)
	assert.Equal(t, presence.UserID, got.UserID)
	assert.True(t, got.CheckedInAt.Equal(checkedInAt))
}

func TestPresenceRepository_FindByEventAndUser(t *testing.T) {
	repo := NewPresenceRepository(&fakeValues{})

	presence, err := entity.NewPresence(uuid.New(), uuid.New(), time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), presence))

	got, err := repo.FindByEventAndUser(context.Background(), presence.EventID, presence.UserID)
	require.NoError(t, err)
	assert.Equal(t, presence.ID, got.ID)

	_, err = repo.FindByEventAndUser(context.Background(), uuid.New(), presence.UserID)
	assert.ErrorIs(t, err, repository.ErrPresenceNotFound)
}

func TestPresenceRepository_Delete(t *testing.T) {
	repo := NewPresenceRepository(&fakeValues{})

	presence, err := entity.NewPresence(uuid.New(), uuid.New(), time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), presence))

	require.NoError(t, repo.Delete(context.Background(), presence.ID))

	_, err = repo.FindByID(context.Background(), presence.ID)
	assert.ErrorIs(t, err, repository.ErrPresenceNotFound)

	records, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
