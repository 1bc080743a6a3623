package spreadsheet

import (
	"context"
	"testing"
	"time"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredUser(t *testing.T, repo repository.UserRepository) *entity.User {
	t.Helper()

	user, err := entity.NewUser("Jane Doe", "jane@example.com", entity.ProfileUser)
	require.NoError(t, err)
	user.PasswordHash = "bcrypt-hash"
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	values := &fakeValues{}
	repo := NewUserRepository(values)
	user := newStoredUser(t, repo)

	got, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
	assert.Equal(t, user.Profile, got.Profile)
	// Never logged in: the cell is empty, the field stays nil.
	assert.Nil(t, got.LastLoginAt)

	got, err = repo.FindByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserRepository_FindByOAuthIdentity(t *testing.T) {
	values := &fakeValues{}
	repo := NewUserRepository(values)

	user := newStoredUser(t, repo)
	user.LinkOAuthIdentity("google", "sub-123")
	require.NoError(t, repo.Update(context.Background(), user))

	got, err := repo.FindByOAuthIdentity(context.Background(), "google", "sub-123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.FindByOAuthIdentity(context.Background(), "google", "someone-else")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UpdatePersistsSessionState(t *testing.T) {
	values := &fakeValues{}
	repo := NewUserRepository(values)

	user := newStoredUser(t, repo)
	user.RefreshTokenHash = "digest"
	user.RecordLogin(time.Now().Truncate(time.Second))
	require.NoError(t, repo.Update(context.Background(), user))

	got, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "digest", got.RefreshTokenHash)
	require.NotNil(t, got.LastLoginAt)
	assert.True(t, got.LastLoginAt.Equal(*user.LastLoginAt))
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	repo := NewUserRepository(&fakeValues{})

	user, err := entity.NewUser("Ghost", "ghost@example.com", entity.ProfileUser)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Update(context.Background(), user), repository.ErrUserNotFound)
}

func TestUserRepository_DeleteClearsRow(t *testing.T) {
	values := &fakeValues{}
	repo := NewUserRepository(values)

	first := newStoredUser(t, repo)
	second, err := entity.NewUser("Second", "second@example.com", entity.ProfileUser)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), second))

	require.NoError(t, repo.Delete(context.Background(), first.ID))

	// The cleared row stays in the sheet but is skipped on reads.
	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, second.ID, users[0].ID)

	_, err = repo.FindByID(context.Background(), first.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), first.ID), repository.ErrUserNotFound)
}

func TestUserRepository_BackendFailure(t *testing.T) {
	repo := NewUserRepository(&fakeValues{getErr: errors.New("quota exceeded")})

	_, err := repo.FindByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrUserNotFound)
}
