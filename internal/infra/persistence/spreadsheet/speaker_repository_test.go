package spreadsheet

import (
	"context"
	"testing"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredSpeaker(t *testing.T, repo repository.SpeakerRepository) *entity.Speaker {
	t.Helper()

	speaker, err := entity.NewSpeaker("Ada Lovelace", "ada@example.com")
	require.NoError(t, err)
	speaker.Bio = "Analytical engines"
	speaker.SocialLinks = []string{"https://example.com/ada", "https://example.org/notes"}
	require.NoError(t, repo.Create(context.Background(), speaker))

	return speaker
}

func TestSpeakerRepository_RoundTrip(t *testing.T) {
	repo := NewSpeakerRepository(&fakeValues{})
	speaker := newStoredSpeaker(t, repo)

	got, err := repo.FindByID(context.Background(), speaker.ID)
	require.NoError(t, err)
	assert.Equal(t, speaker.Name, got.Name)
	assert.Equal(t, speaker.Email, got.Email)
	assert.Equal(t, speaker.Bio, got.Bio)
	// Social links survive the single-cell encoding.
	assert.Equal(t, speaker.SocialLinks, got.SocialLinks)
}

func TestSpeakerRepository_FindByEmail(t *testing.T) {
	repo := NewSpeakerRepository(&fakeValues{})
	speaker := newStoredSpeaker(t, repo)

	got, err := repo.FindByEmail(context.Background(), speaker.Email)
	require.NoError(t, err)
	assert.Equal(t, speaker.ID, got.ID)

	_, err = repo.FindByEmail(context.Background(), "grace@example.com")
	assert.ErrorIs(t, err, repository.ErrSpeakerNotFound)
}

func TestSpeakerRepository_Update(t *testing.T) {
	repo := NewSpeakerRepository(&fakeValues{})
	speaker := newStoredSpeaker(t, repo)

	speaker.Bio = "Wrote the first program"
	speaker.SocialLinks = nil
	require.NoError(t, repo.Update(context.Background(), speaker))

	got, err := repo.FindByID(context.Background(), speaker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wrote the first program", got.Bio)
	assert.Empty(t, got.SocialLinks)
}

func TestSpeakerRepository_Delete(t *testing.T) {
	repo := NewSpeakerRepository(&fakeValues{})
	speaker := newStoredSpeaker(t, repo)

	require.NoError(t, repo.Delete(context.Background(), speaker.ID))

	_, err := repo.FindByID(context.Background(), speaker.ID)
	assert.ErrorIs(t, err, repository.ErrSpeakerNotFound)

	err = repo.Update(context.Background(), speaker)
	assert.ErrorIs(t, err, repository.ErrSpeakerNotFound)

	speakers, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, speakers)
}
