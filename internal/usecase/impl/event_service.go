package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	eventRepo repository.EventRepository
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for eventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		logger:    params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new event.
func (srv *eventService) Create(ctx context.Context, params usecase.CreateEventParams) (*usecase.EventDTO, error) {
	srv.log(ctx).Debug("Creating event", slog.String("title", params.Title))

	event, err := entity.NewEvent(
		params.Title,
		params.Description,
		params.DateInit,
		params.DateFinal,
		params.InscriptionInit,
		params.InscriptionFinal,
		params.Location,
	)
	if err != nil {
		return nil, errors.Wrap(err, "event validation failed")
	}

	event.AppHeaderImageURL = params.AppHeaderImageURL
	event.CertificateHeaderImageURL = params.CertificateHeaderImageURL
	if err := event.Validate(); err != nil {
		return nil, errors.Wrap(err, "event validation failed")
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("Event created", slog.Any("eventID", event.ID))

	return toEventDTO(event), nil
}

// GetByID fetches a single event.
func (srv *eventService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.EventDTO, error) {
	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound.WrapMessage("event lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find event by id")
	}

	return toEventDTO(event), nil
}

// List returns one page of events.
func (srv *eventService) List(ctx context.Context, page usecase.PageParams) (*usecase.EventListResult, error) {
	page = page.Normalize()

	events, err := srv.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	items := make([]usecase.EventDTO, 0, page.Limit)
	for _, event := range usecase.Paginate(events, page) {
		items = append(items, *toEventDTO(event))
	}

	return &usecase.EventListResult{
		Items: items,
		Meta:  usecase.NewPageMeta(page, len(events)),
	}, nil
}

// Update applies the non-nil fields to an existing event.
func (srv *eventService) Update(ctx context.Context, id uuid.UUID, params usecase.UpdateEventParams) (*usecase.EventDTO, error) {
	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound.WrapMessage("event lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find event for update")
	}

	applyEventUpdate(event, params)

	if err := event.Validate(); err != nil {
		return nil, errors.Wrap(err, "event validation failed")
	}
	event.Touch()

	if err := srv.eventRepo.Update(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to update event")
	}

	srv.log(ctx).Info("Event updated", slog.Any("eventID", event.ID))

	return toEventDTO(event), nil
}

// Delete removes an event.
func (srv *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound.WrapMessage("event lookup failed")
		}

		return errors.Wrap(err, "failed to delete event")
	}

	srv.log(ctx).Info("Event deleted", slog.Any("eventID", id))

	return nil
}

func applyEventUpdate(event *entity.Event, params usecase.UpdateEventParams) {
	if params.Title != nil {
		event.Title = *params.Title
	}
	if params.Description != nil {
		event.Description = *params.Description
	}
	if params.DateInit != nil {
		event.DateInit = *params.DateInit
	}
	if params.DateFinal != nil {
		event.DateFinal = *params.DateFinal
	}
	if params.InscriptionInit != nil {
		event.InscriptionInit = *params.InscriptionInit
	}
	if params.InscriptionFinal != nil {
		event.InscriptionFinal = *params.InscriptionFinal
	}
	if params.Location != nil {
		event.Location = *params.Location
	}
	if params.AppHeaderImageURL != nil {
		event.AppHeaderImageURL = *params.AppHeaderImageURL
	}
	if params.CertificateHeaderImageURL != nil {
		event.CertificateHeaderImageURL = *params.CertificateHeaderImageURL
	}
}

func toEventDTO(event *entity.Event) *usecase.EventDTO {
	return &usecase.EventDTO{
		ID:                        event.ID,
		Title:                     event.Title,
		Description:               event.Description,
		DateInit:                  event.DateInit,
		DateFinal:                 event.DateFinal,
		InscriptionInit:           event.InscriptionInit,
		InscriptionFinal:          event.InscriptionFinal,
		Location:                  event.Location,
		AppHeaderImageURL:         event.AppHeaderImageURL,
		CertificateHeaderImageURL: event.CertificateHeaderImageURL,
		InscriptionOpen:           event.InscriptionOpenAt(time.Now()),
		CreatedAt:                 event.CreatedAt,
		UpdatedAt:                 event.UpdatedAt,
	}
}
