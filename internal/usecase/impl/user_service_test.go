package impl

import (
	"context"
	"testing"

	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(params UserServiceParams) *userService {
	if params.Logger == nil {
		params.Logger = testLogger()
	}

	return NewUserService(params).(*userService)
}

func TestUserCreate_Success(t *testing.T) {
	var created *entity.User
	srv := newUserService(UserServiceParams{
		UserRepo: &fakeUserRepo{
			create: func(_ context.Context, u *entity.User) error {
				created = u

				return nil
			},
		},
		Hasher: &fakePasswordHasher{},
	})

	dto, err := srv.Create(context.Background(), usecase.CreateUserParams{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
		Profile:  entity.ProfileAdmin,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "hashed:secret123", created.PasswordHash)
	assert.Equal(t, entity.ProfileAdmin, dto.Profile)
	assert.Equal(t, created.ID, dto.ID)
	assert.Nil(t, dto.LastLoginAt)
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	existing := newTestUser(t)

	srv := newUserService(UserServiceParams{
		UserRepo: &fakeUserRepo{
			findByEmail: func(context.Context, string) (*entity.User, error) {
				return existing, nil
			},
		},
		Hasher: &fakePasswordHasher{},
	})

	dto, err := srv.Create(context.Background(), usecase.CreateUserParams{
		Name:     "Other Jane",
		Email:    existing.Email,
		Password: "secret123",
	})

	assert.Nil(t, dto)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserCreate_InvalidEntity(t *testing.T) {
	srv := newUserService(UserServiceParams{
		UserRepo: &fakeUserRepo{},
		Hasher:   &fakePasswordHasher{},
	})

	dto, err := srv.Create(context.Background(), usecase.CreateUserParams{
		Name:     "",
		Email:    "jane@example.com",
		Password: "secret123",
	})

	assert.Nil(t, dto)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserGetByID_NotFound(t *testing.T) {
	srv := newUserService(UserServiceParams{
		UserRepo: &fakeUserRepo{},
		Hasher:   &fakePasswordHasher{},
	})

	dto, err := srv.GetByID(context.Background(), uuid.New())

	assert.Nil(t, dto)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserList_Paginates(t *testing.T) {
	users := make([]*entity.User, 0, 5)
	for range 5 {
		users = append(users, newTestUser(t))
	}

	srv := newUserService(UserServiceParams{
		UserRepo: &fakeUserRepo{
			findAll: func(context.Context) ([]*entity.User, error) {
				return users, nil
			},
		},
		Hasher: &fakePasswordHasher{},
	})

	result, err := srv.List(context.Background(), usecase.PageParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 5, result.Meta.Total)
	assert.Equal(t, 3, result.Meta.TotalPages)
	assert.Equal(t, users[2].ID, result.Items[0].ID)
}

func TestUserUpdate_PartialFields(t *testing.T) {
	user := newTestUser(t)
	user.PasswordHash = "hashed:old"

	var updated *entity.User
	srv := newUserService(UserServiceParams{
		UserRepo: &fakeUserRepo{
			findByID: func(context.Context, uuid.UUID) (*entity.User, error) {
				return user, nil
			},
			update: func(_ context.Context, u *entity.User) error {
				updated = u

				return nil
			},
		},
		Hasher: &fakePasswordHasher{},
	})

	newName := "Jane Updated"
	dto, err := srv.Update(context.Background(), user.ID, usecase.UpdateUserParams{Name: &newName})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Jane Updated", dto.Name)
	// Untouched fields survive a partial update.
	assert.Equal(t, "jane@example.com", updated.Email)
	assert.Equal(t, "hashed:old", updated.PasswordHash)
}

func TestUserUpdate_EmailTaken(t *testing.T) {
	user := newTestUser(t)
	other, err := entity.NewUser("Other", "other@example.com", entity.ProfileUser)
	require.NoError(t, err)

	srv := newUserService(UserServiceParams{
		UserRepo: &fakeUserRepo{
			findByID: func(context.Context, uuid.UUID) (*entity.User, error) {
				return user, nil
			},
			findByEmail: func(context.Context, string) (*entity.User, error) {
				return other, nil
			},
		},
		Hasher: &fakePasswordHasher{},
	})

	dto, err := srv.Update(context.Background(), user.ID, usecase.UpdateUserParams{Email: &other.Email})

	assert.Nil(t, dto)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserDelete_NotFound(t *testing.T) {
	srv := newUserService(UserServiceParams{
		UserRepo: &fakeUserRepo{
			delete: func(context.Context, uuid.UUID) error {
				return repository.ErrUserNotFound
			},
		},
		Hasher: &fakePasswordHasher{},
	})

	err := srv.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
