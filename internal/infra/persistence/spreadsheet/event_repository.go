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
	eventSheet      = "Events"
	eventLastColumn = "L"
)

// Event row layout: id, title, description, dateInit, dateFinal,
// inscriptionInit, inscriptionFinal, location, appHeaderImageUrl,
// certificateHeaderImageUrl, createdAt, updatedAt.
const (
	eventColID = iota
	eventColTitle
	eventColDescription
	eventColDateInit
	eventColDateFinal
	eventColInscriptionInit
	eventColInscriptionFinal
	eventColLocation
	eventColAppHeaderImageURL
	eventColCertificateHeaderImageURL
	eventColCreatedAt
	eventColUpdatedAt
)

// eventRepository implements the domain EventRepository interface on top of
// a Google Sheets values API.
type eventRepository struct {
	values sheets.ValuesAPI
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(values sheets.ValuesAPI) repository.EventRepository {
	return &eventRepository{values: values}
}

// FindAll retrieves every event, skipping cleared rows.
func (repo *eventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	rows, err := repo.values.Get(ctx, dataRange(eventSheet, eventLastColumn))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read event rows")
	}

	events := make([]*entity.Event, 0, len(rows))
	for _, row := range rows {
		if cellString(row, eventColID) == "" {
			continue
		}

		event, err := rowToEvent(row)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// FindByID retrieves a single event by its unique ID.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	_, row, err := findRowByID(ctx, repo.values, eventSheet, eventLastColumn, id.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find event by id")
	}
	if row == nil {
		return nil, repository.ErrEventNotFound
	}

	return rowToEvent(row)
}

// Create appends a new event row.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	if err := repo.values.Append(ctx, dataRange(eventSheet, eventLastColumn), [][]any{eventToRow(event)}); err != nil {
		return errors.Wrap(err, "failed to create event row")
	}

	return nil
}

// Update overwrites the event's row in place.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	rowNumber, row, err := findRowByID(ctx, repo.values, eventSheet, eventLastColumn, event.ID.String())
	if err != nil {
		return errors.Wrap(err, "failed to find event for update")
	}
	if row == nil {
		return repository.ErrEventNotFound
	}

	if err := repo.values.Update(ctx, rowRange(eventSheet, eventLastColumn, rowNumber), [][]any{eventToRow(event)}); err != nil {
		return errors.Wrap(err, "failed to update event row")
	}

	return nil
}

// Delete clears the event's row.
func (repo *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rowNumber, row, err := findRowByID(ctx, repo.values, eventSheet, eventLastColumn, id.String())
	if err != nil {
		return errors.Wrap(err, "failed to find event for delete")
	}
	if row == nil {
		return repository.ErrEventNotFound
	}

	if err := repo.values.Clear(ctx, rowRange(eventSheet, eventLastColumn, rowNumber)); err != nil {
		return errors.Wrap(err, "failed to clear event row")
	}

	return nil
}

func eventToRow(event *entity.Event) []any {
	return []any{
		event.ID.String(),
		event.Title,
		event.Description,
		formatTime(event.DateInit),
		formatTime(event.DateFinal),
		formatTime(event.InscriptionInit),
		formatTime(event.InscriptionFinal),
		event.Location,
		event.AppHeaderImageURL,
		event.CertificateHeaderImageURL,
		formatTime(event.CreatedAt),
		formatTime(event.UpdatedAt),
	}
}

func rowToEvent(row []any) (*entity.Event, error) {
	id, err := uuid.Parse(cellString(row, eventColID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse event id")
	}

	event := &entity.Event{
		ID:                        id,
		Title:                     cellString(row, eventColTitle),
		Description:               cellString(row, eventColDescription),
		Location:                  cellString(row, eventColLocation),
		AppHeaderImageURL:         cellString(row, eventColAppHeaderImageURL),
		CertificateHeaderImageURL: cellString(row, eventColCertificateHeaderImageURL),
	}

	if event.DateInit, err = cellTime(row, eventColDateInit); err != nil {
		return nil, errors.Wrap(err, "failed to parse event dateInit")
	}
	if event.DateFinal, err = cellTime(row, eventColDateFinal); err != nil {
		return nil, errors.Wrap(err, "failed to parse event dateFinal")
	}
	if event.InscriptionInit, err = cellTime(row, eventColInscriptionInit); err != nil {
		return nil, errors.Wrap(err, "failed to parse event inscriptionInit")
	}
	if event.InscriptionFinal, err = cellTime(row, eventColInscriptionFinal); err != nil {
		return nil, errors.Wrap(err, "failed to parse event inscriptionFinal")
	}
	if event.CreatedAt, err = cellTime(row, eventColCreatedAt); err != nil {
		return nil, errors.Wrap(err, "failed to parse event createdAt")
	}
	if event.UpdatedAt, err = cellTime(row, eventColUpdatedAt); err != nil {
		return nil, errors.Wrap(err, "failed to parse event updatedAt")
	}

	return event, nil
}
