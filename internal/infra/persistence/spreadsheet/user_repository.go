package spreadsheet

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/infra/sheets"
)

const (
	userSheet      = "Users"
	userLastColumn = "K"
)

// User row layout: id, name, email, passwordHash, profile, oauthProvider,
// oauthSubject, refreshTokenHash, lastLoginAt, createdAt, updatedAt.
const (
	userColID = iota
	userColName
	userColEmail
	userColPasswordHash
	userColProfile
	userColOAuthProvider
	userColOAuthSubject
	userColRefreshTokenHash
	userColLastLoginAt
	userColCreatedAt
	userColUpdatedAt
)

// userRepository implements the domain UserRepository interface on top of a
// Google Sheets values API.
type userRepository struct {
	values sheets.ValuesAPI
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(values sheets.ValuesAPI) repository.UserRepository {
	return &userRepository{values: values}
}

// FindAll retrieves every user, skipping cleared rows.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := repo.values.Get(ctx, dataRange(userSheet, userLastColumn))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read user rows")
	}

	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		if cellString(row, userColID) == "" {
			continue
		}

		user, err := rowToUser(row)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	_, row, err := findRowByID(ctx, repo.values, userSheet, userLastColumn, id.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}
	if row == nil {
		return nil, repository.ErrUserNotFound
	}

	return rowToUser(row)
}

// FindByEmail retrieves a single user by exact email match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	rows, err := repo.values.Get(ctx, dataRange(userSheet, userLastColumn))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	for _, row := range rows {
		if cellString(row, userColID) == "" {
			continue
		}
		if cellString(row, userColEmail) == email {
			return rowToUser(row)
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByOAuthIdentity retrieves the user linked to the provider identity.
func (repo *userRepository) FindByOAuthIdentity(ctx context.Context, provider, subject string) (*entity.User, error) {
	rows, err := repo.values.Get(ctx, dataRange(userSheet, userLastColumn))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by oauth identity")
	}

	for _, row := range rows {
		if cellString(row, userColID) == "" {
			continue
		}
		if cellString(row, userColOAuthProvider) == provider && cellString(row, userColOAuthSubject) == subject {
			return rowToUser(row)
		}
	}

	return nil, repository.ErrUserNotFound
}

// Create appends a new user row.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := repo.values.Append(ctx, dataRange(userSheet, userLastColumn), [][]any{userToRow(user)}); err != nil {
		return errors.Wrap(err, "failed to create user row")
	}

	return nil
}

// Update overwrites the user's row in place.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	rowNumber, row, err := findRowByID(ctx, repo.values, userSheet, userLastColumn, user.ID.String())
	if err != nil {
		return errors.Wrap(err, "failed to find user for update")
	}
	if row == nil {
		return repository.ErrUserNotFound
	}

	if err := repo.values.Update(ctx, rowRange(userSheet, userLastColumn, rowNumber), [][]any{userToRow(user)}); err != nil {
		return errors.Wrap(err, "failed to update user row")
	}

	return nil
}

// Delete clears the user's row.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rowNumber, row, err := findRowByID(ctx, repo.values, userSheet, userLastColumn, id.String())
	if err != nil {
		return errors.Wrap(err, "failed to find user for delete")
	}
	if row == nil {
		return repository.ErrUserNotFound
	}

	if err := repo.values.Clear(ctx, rowRange(userSheet, userLastColumn, rowNumber)); err != nil {
		return errors.Wrap(err, "failed to clear user row")
	}

	return nil
}

func userToRow(user *entity.User) []any {
	lastLoginAt := ""
	if user.LastLoginAt != nil {
		lastLoginAt = formatTime(*user.LastLoginAt)
	}

	return []any{
		user.ID.String(),
		user.Name,
		user.Email,
		user.PasswordHash,
		string(user.Profile),
		user.OAuthProvider,
		user.OAuthSubject,
		user.RefreshTokenHash,
		lastLoginAt,
		formatTime(user.CreatedAt),
		formatTime(user.UpdatedAt),
	}
}

func rowToUser(row []any) (*entity.User, error) {
	id, err := uuid.Parse(cellString(row, userColID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse user id")
	}

	createdAt, err := cellTime(row, userColCreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse user createdAt")
	}
	updatedAt, err := cellTime(row, userColUpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse user updatedAt")
	}

	user := &entity.User{
		ID:               id,
		Name:             cellString(row, userColName),
		Email:            cellString(row, userColEmail),
		PasswordHash:     cellString(row, userColPasswordHash),
		Profile:          entity.Profile(cellString(row, userColProfile)),
		OAuthProvider:    cellString(row, userColOAuthProvider),
		OAuthSubject:     cellString(row, userColOAuthSubject),
		RefreshTokenHash: cellString(row, userColRefreshTokenHash),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}

	lastLoginAt, err := cellTime(row, userColLastLoginAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse user lastLoginAt")
	}
	if !lastLoginAt.IsZero() {
		user.LastLoginAt = &lastLoginAt
	}

	return user, nil
}
