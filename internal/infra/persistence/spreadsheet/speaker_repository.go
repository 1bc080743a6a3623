package spreadsheet

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/infra/sheets"
)

const (
	speakerSheet      = "Speakers"
	speakerLastColumn = "G"
)

// Speaker row layout: id, name, email, bio, socialLinks, createdAt,
// updatedAt. Social links are newline-separated inside their cell.
const (
	speakerColID = iota
	speakerColName
	speakerColEmail
	speakerColBio
	speakerColSocialLinks
	speakerColCreatedAt
	speakerColUpdatedAt
)

// speakerRepository implements the domain SpeakerRepository interface on top
// of a Google Sheets values API.
type speakerRepository struct {
	values sheets.ValuesAPI
}

// NewSpeakerRepository is the constructor for speakerRepository.
func NewSpeakerRepository(values sheets.ValuesAPI) repository.SpeakerRepository {
	return &speakerRepository{values: values}
}

// FindAll retrieves every speaker, skipping cleared rows.
func (repo *speakerRepository) FindAll(ctx context.Context) ([]*entity.Speaker, error) {
	rows, err := repo.values.Get(ctx, dataRange(speakerSheet, speakerLastColumn))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read speaker rows")
	}

	speakers := make([]*entity.Speaker, 0, len(rows))
	for _, row := range rows {
		if cellString(row, speakerColID) == "" {
			continue
		}

		speaker, err := rowToSpeaker(row)
		if err != nil {
			return nil, err
		}
		speakers = append(speakers, speaker)
	}

	return speakers, nil
}

// FindByID retrieves a single speaker by their unique ID.
func (repo *speakerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Speaker, error) {
	_, row, err := findRowByID(ctx, repo.values, speakerSheet, speakerLastColumn, id.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find speaker by id")
	}
	if row == nil {
		return nil, repository.ErrSpeakerNotFound
	}

	return rowToSpeaker(row)
}

// FindByEmail retrieves a single speaker by exact email match.
func (repo *speakerRepository) FindByEmail(ctx context.Context, email string) (*entity.Speaker, error) {
	rows, err := repo.values.Get(ctx, dataRange(speakerSheet, speakerLastColumn))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find speaker by email")
	}

	for _, row := range rows {
		if cellString(row, speakerColID) == "" {
			continue
		}
		if cellString(row, speakerColEmail) == email {
			return rowToSpeaker(row)
		}
	}

	return nil, repository.ErrSpeakerNotFound
}

// Create appends a new speaker row.
func (repo *speakerRepository) Create(ctx context.Context, speaker *entity.Speaker) error {
	if err := repo.values.Append(ctx, dataRange(speakerSheet, speakerLastColumn), [][]any{speakerToRow(speaker)}); err != nil {
		return errors.Wrap(err, "failed to create speaker row")
	}

	return nil
}

// Update overwrites the speaker's row in place.
func (repo *speakerRepository) Update(ctx context.Context, speaker *entity.Speaker) error {
	rowNumber, row, err := findRowByID(ctx, repo.values, speakerSheet, speakerLastColumn, speaker.ID.String())
	if err != nil {
		return errors.Wrap(err, "failed to find speaker for update")
	}
	if row == nil {
		return repository.ErrSpeakerNotFound
	}

	if err := repo.values.Update(ctx, rowRange(speakerSheet, speakerLastColumn, rowNumber), [][]any{speakerToRow(speaker)}); err != nil {
		return errors.Wrap(err, "failed to update speaker row")
	}

	return nil
}

// Delete clears the speaker's row.
func (repo *speakerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rowNumber, row, err := findRowByID(ctx, repo.values, speakerSheet, speakerLastColumn, id.String())
	if err != nil {
		return errors.Wrap(err, "failed to find speaker for delete")
	}
	if row == nil {
		return repository.ErrSpeakerNotFound
	}

	if err := repo.values.Clear(ctx, rowRange(speakerSheet, speakerLastColumn, rowNumber)); err != nil {
		return errors.Wrap(err, "failed to clear speaker row")
	}

	return nil
}

func speakerToRow(speaker *entity.Speaker) []any {
	return []any{
		speaker.ID.String(),
		speaker.Name,
		speaker.Email,
		speaker.Bio,
		strings.Join(speaker.SocialLinks, "\n"),
		formatTime(speaker.CreatedAt),
		formatTime(speaker.UpdatedAt),
	}
}

func rowToSpeaker(row []any) (*entity.Speaker, error) {
	id, err := uuid.Parse(cellString(row, speakerColID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse speaker id")
	}

	createdAt, err := cellTime(row, speakerColCreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse speaker createdAt")
	}
	updatedAt, err := cellTime(row, speakerColUpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse speaker updatedAt")
	}

	var links []string
	if raw := cellString(row, speakerColSocialLinks); raw != "" {
		links = strings.Split(raw, "\n")
	}

	return &entity.Speaker{
		ID:          id,
		Name:        cellString(row, speakerColName),
		Email:       cellString(row, speakerColEmail),
		Bio:         cellString(row, speakerColBio),
		SocialLinks: links,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
