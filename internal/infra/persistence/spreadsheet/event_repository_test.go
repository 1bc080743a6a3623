package spreadsheet

import (
	"context"
	"testing"
	"time"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredEvent(t *testing.T, repo repository.EventRepository) *entity.Event {
	t.Helper()

	now := time.Now().Truncate(time.Second)
	event, err := entity.NewEvent(
		"Go Conference",
		"A conference about Go",
		now.Add(30*24*time.Hour),
		now.Add(31*24*time.Hour),
		now,
		now.Add(20*24*time.Hour),
		"Lisbon",
	)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), event))

	return event
}

func TestEventRepository_CreateAndFind(t *testing.T) {
	repo := NewEventRepository(&fakeValues{})
	event := newStoredEvent(t, repo)

	got, err := repo.FindByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.Title, got.Title)
	assert.Equal(t, event.Location, got.Location)
	assert.True(t, got.DateInit.Equal(event.DateInit))
	assert.True(t, got.InscriptionFinal.Equal(event.InscriptionFinal))
}

func TestEventRepository_Update(t *testing.T) {
	repo := NewEventRepository(&fakeValues{})
	event := newStoredEvent(t, repo)

	event.Title = "Go Conference 2027"
	event.AppHeaderImageURL = "https://cdn.example/header.png"
	event.Touch()
	require.NoError(t, repo.Update(context.Background(), event))

	got, err := repo.FindByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Conference 2027", got.Title)
	assert.Equal(t, "https://cdn.example/header.png", got.AppHeaderImageURL)
}

func TestEventRepository_Delete(t *testing.T) {
	repo := NewEventRepository(&fakeValues{})
	event := newStoredEvent(t, repo)

	require.NoError(t, repo.Delete(context.Background(), event.ID))

	_, err := repo.FindByID(context.Background(), event.ID)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)

	events, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}
