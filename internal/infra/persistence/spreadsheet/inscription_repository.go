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
	inscriptionSheet      = "Inscriptions"
	inscriptionLastColumn = "G"
)

// Inscription row layout: id, eventId, userId, activityId, status,
// createdAt, updatedAt.
const (
	inscriptionColID = iota
	inscriptionColEventID
	inscriptionColUserID
	inscriptionColActivityID
	inscriptionColStatus
	inscriptionColCreatedAt
	inscriptionColUpdatedAt
)

// inscriptionRepository implements the domain InscriptionRepository
// interface on top of a Google Sheets values API.
type inscriptionRepository struct {
	values sheets.ValuesAPI
}

// NewInscriptionRepository is the constructor for inscriptionRepository.
func NewInscriptionRepository(values sheets.ValuesAPI) repository.InscriptionRepository {
	return &inscriptionRepository{values: values}
}

// FindAll retrieves every inscription, skipping cleared rows.
func (repo *inscriptionRepository) FindAll(ctx context.Context) ([]*entity.Inscription, error) {
	rows, err := repo.values.Get(ctx, dataRange(inscriptionSheet, inscriptionLastColumn))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read inscription rows")
	}

	inscriptions := make([]*entity.Inscription, 0, len(rows))
	for _, row := range rows {
		if cellString(row, inscriptionColID) == "" {
			continue
		}

		inscription, err := rowToInscription(row)
		if err != nil {
			return nil, err
		}
		inscriptions = append(inscriptions, inscription)
	}

	return inscriptions, nil
}

// FindByID retrieves a single inscription by its unique ID.
func (repo *inscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inscription, error) {
	_, row, err := findRowByID(ctx, repo.values, inscriptionSheet, inscriptionLastColumn, id.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find inscription by id")
	}
	if row == nil {
		return nil, repository.ErrInscriptionNotFound
	}

	return rowToInscription(row)
}

// FindByEventAndUser retrieves the inscription for an (event, user) pair.
func (repo *inscriptionRepository) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entity.Inscription, error) {
	rows, err := repo.values.Get(ctx, dataRange(inscriptionSheet, inscriptionLastColumn))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find inscription by event and user")
	}

	for _, row := range rows {
		if cellString(row, inscriptionColID) == "" {
			continue
		}
		if cellString(row, inscriptionColEventID) == eventID.String() &&
			cellString(row, inscriptionColUserID) == userID.String() {
			return rowToInscription(row)
		}
	}

	return nil, repository.ErrInscriptionNotFound
}

// Create appends a new inscription row.
func (repo *inscriptionRepository) Create(ctx context.Context, inscription *entity.Inscription) error {
	if err := repo.values.Append(ctx, dataRange(inscriptionSheet, inscriptionLastColumn), [][]any{inscriptionToRow(inscription)}); err != nil {
		return errors.Wrap(err, "failed to create inscription row")
	}

	return nil
}

// Update overwrites the inscription's row in place.
func (repo *inscriptionRepository) Update(ctx context.Context, inscription *entity.Inscription) error {
	rowNumber, row, err := findRowByID(ctx, repo.values, inscriptionSheet, inscriptionLastColumn, inscription.ID.String())
	if err != nil {
		return errors.Wrap(err, "failed to find inscription for update")
	}
	if row == nil {
		return repository.ErrInscriptionNotFound
	}

	if err := repo.values.Update(ctx, rowRange(inscriptionSheet, inscriptionLastColumn, rowNumber), [][]any{inscriptionToRow(inscription)}); err != nil {
		return errors.Wrap(err, "failed to update inscription row")
	}

	return nil
}

// Delete clears the inscription's row.
func (repo *inscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rowNumber, row, err := findRowByID(ctx, repo.values, inscriptionSheet, inscriptionLastColumn, id.String())
	if err != nil {
		return errors.Wrap(err, "failed to find inscription for delete")
	}
	if row == nil {
		return repository.ErrInscriptionNotFound
	}

	if err := repo.values.Clear(ctx, rowRange(inscriptionSheet, inscriptionLastColumn, rowNumber)); err != nil {
		return errors.Wrap(err, "failed to clear inscription row")
	}

	return nil
}

func inscriptionToRow(inscription *entity.Inscription) []any {
	return []any{
		inscription.ID.String(),
		inscription.EventID.String(),
		inscription.UserID.String(),
		inscription.ActivityID,
		string(inscription.Status),
		formatTime(inscription.CreatedAt),
		formatTime(inscription.UpdatedAt),
	}
}

func rowToInscription(row []any) (*entity.Inscription, error) {
	id, err := uuid.Parse(cellString(row, inscriptionColID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse inscription id")
	}
	eventID, err := uuid.Parse(cellString(row, inscriptionColEventID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse inscription eventId")
	}
	userID, err := uuid.Parse(cellString(row, inscriptionColUserID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse inscription userId")
	}

	inscription := &entity.Inscription{
		ID:         id,
		EventID:    eventID,
		UserID:     userID,
		ActivityID: cellString(row, inscriptionColActivityID),
		Status:     entity.InscriptionStatus(cellString(row, inscriptionColStatus)),
	}

	if inscription.CreatedAt, err = cellTime(row, inscriptionColCreatedAt); err != nil {
		return nil, errors.Wrap(err, "failed to parse inscription createdAt")
	}
	if inscription.UpdatedAt, err = cellTime(row, inscriptionColUpdatedAt); err != nil {
		return nil, errors.Wrap(err, "failed to parse inscription updatedAt")
	}

	return inscription, nil
}
