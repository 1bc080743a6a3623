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
	presenceSheet      = "Presences"
	presenceLastColumn = "F"
)

// Presence row layout: id, eventId, userId, checkedInAt, createdAt,
// updatedAt.
const (
	presenceColID = iota
	presenceColEventID
	presenceColUserID
	presenceColCheckedInAt
	presenceColCreatedAt
	presenceColUpdatedAt
)

// presenceRepository implements the domain PresenceRepository interface on
// top of a Google Sheets values API.
type presenceRepository struct {
	values sheets.ValuesAPI
}

// NewPresenceRepository is the constructor for presenceRepository.
func NewPresenceRepository(values sheets.ValuesAPI) repository.PresenceRepository {
	return &presenceRepository{values: values}
}

// FindAll retrieves every presence record, skipping cleared rows.
func (repo *presenceRepository) FindAll(ctx context.Context) ([]*entity.Presence, error) {
	rows, err := repo.values.Get(ctx, dataRange(presenceSheet, presenceLastColumn))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read presence rows")
	}

	presences := make([]*entity.Presence, 0, len(rows))
	for _, row := range rows {
		if cellString(row, presenceColID) == "" {
			continue
		}

		presence, err := rowToPresence(row)
		if err != nil {
			return nil, err
		}
		presences = append(presences, presence)
	}

	return presences, nil
}

// FindByID retrieves a single presence record by its unique ID.
func (repo *presenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Presence, error) {
	_, row, err := findRowByID(ctx, repo.values, presenceSheet, presenceLastColumn, id.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find presence by id")
	}
	if row == nil {
		return nil, repository.ErrPresenceNotFound
	}

	return rowToPresence(row)
}

// FindByEventAndUser retrieves the presence for an (event, user) pair.
func (repo *presenceRepository) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entity.Presence, error) {
	rows, err := repo.values.Get(ctx, dataRange(presenceSheet, presenceLastColumn))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find presence by event and user")
	}

	for _, row := range rows {
		if cellString(row, presenceColID) == "" {
			continue
		}
		if cellString(row, presenceColEventID) == eventID.String() &&
			cellString(row, presenceColUserID) == userID.String() {
			return rowToPresence(row)
		}
	}

	return nil, repository.ErrPresenceNotFound
}

// Create appends a new presence row.
func (repo *presenceRepository) Create(ctx context.Context, presence *entity.Presence) error {
	if err := repo.values.Append(ctx, dataRange(presenceSheet, presenceLastColumn), [][]any{presenceToRow(presence)}); err != nil {
		return errors.Wrap(err, "failed to create presence row")
	}

	return nil
}

// Delete clears the presence's row.
func (repo *presenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rowNumber, row, err := findRowByID(ctx, repo.values, presenceSheet, presenceLastColumn, id.String())
	if err != nil {
		return errors.Wrap(err, "failed to find presence for delete")
	}
	if row == nil {
		return repository.ErrPresenceNotFound
	}

	if err := repo.values.Clear(ctx, rowRange(presenceSheet, presenceLastColumn, rowNumber)); err != nil {
		return errors.Wrap(err, "failed to clear presence row")
	}

	return nil
}

func presenceToRow(presence *entity.Presence) []any {
	return []any{
		presence.ID.String(),
		presence.EventID.String(),
		presence.UserID.String(),
		formatTime(presence.CheckedInAt),
		formatTime(presence.CreatedAt),
		formatTime(presence.UpdatedAt),
	}
}

func rowToPresence(row []any) (*entity.Presence, error) {
	id, err := uuid.Parse(cellString(row, presenceColID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse presence id")
	}
	eventID, err := uuid.Parse(cellString(row, presenceColEventID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse presence eventId")
	}
	userID, err := uuid.Parse(cellString(row, presenceColUserID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse presence userId")
	}

	presence := &entity.Presence{
		ID:      id,
		EventID: eventID,
		UserID:  userID,
	}

	if presence.CheckedInAt, err = cellTime(row, presenceColCheckedInAt); err != nil {
		return nil, errors.Wrap(err, "failed to parse presence checkedInAt")
	}
	if presence.CreatedAt, err = cellTime(row, presenceColCreatedAt); err != nil {
		return nil, errors.Wrap(err, "failed to parse presence createdAt")
	}
	if presence.UpdatedAt, err = cellTime(row, presenceColUpdatedAt); err != nil {
		return nil, errors.Wrap(err, "failed to parse presence updatedAt")
	}

	return presence, nil
}
