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

// presenceService implements the PresenceUsecase interface.
type presenceService struct {
	presenceRepo repository.PresenceRepository
	eventRepo    repository.EventRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// PresenceServiceParams holds dependencies for presenceService, injected by Fx.
type PresenceServiceParams struct {
	fx.In

	PresenceRepo repository.PresenceRepository
	EventRepo    repository.EventRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewPresenceService is the constructor for presenceService.
func NewPresenceService(params PresenceServiceParams) usecase.PresenceUsecase {
	return &presenceService{
		presenceRepo: params.PresenceRepo,
		eventRepo:    params.EventRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

func (srv *presenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register records a check-in. Checking in twice for the same event returns
// the existing record instead of failing.
func (srv *presenceService) Register(ctx context.Context, params usecase.RegisterPresenceParams) (*usecase.PresenceDTO, error) {
	srv.log(ctx).Debug("Registering presence", slog.Any("eventID", params.EventID), slog.Any("userID", params.UserID))

	if _, err := srv.eventRepo.FindByID(ctx, params.EventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound.WrapMessage("event lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find event for presence")
	}

	if _, err := srv.userRepo.FindByID(ctx, params.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user for presence")
	}

	existing, err := srv.presenceRepo.FindByEventAndUser(ctx, params.EventID, params.UserID)
	if err == nil {
		srv.log(ctx).Debug("Presence already registered", slog.Any("presenceID", existing.ID))

		return toPresenceDTO(existing), nil
	}
	if !errors.Is(err, repository.ErrPresenceNotFound) {
		return nil, errors.Wrap(err, "failed to check existing presence")
	}

	presence, err := entity.NewPresence(params.EventID, params.UserID, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "presence validation failed")
	}

	if err := srv.presenceRepo.Create(ctx, presence); err != nil {
		return nil, errors.Wrap(err, "failed to create presence")
	}

	srv.log(ctx).Info("Presence registered", slog.Any("presenceID", presence.ID))

	return toPresenceDTO(presence), nil
}

// GetByID fetches a single presence record.
func (srv *presenceService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.PresenceDTO, error) {
	presence, err := srv.presenceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPresenceNotFound) {
			return nil, domainerrors.ErrPresenceNotFound.WrapMessage("presence lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find presence by id")
	}

	return toPresenceDTO(presence), nil
}

// List returns one page of presence records.
func (srv *presenceService) List(ctx context.Context, page usecase.PageParams) (*usecase.PresenceListResult, error) {
	page = page.Normalize()

	presences, err := srv.presenceRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list presences")
	}

	items := make([]usecase.PresenceDTO, 0, page.Limit)
	for _, presence := range usecase.Paginate(presences, page) {
		items = append(items, *toPresenceDTO(presence))
	}

	return &usecase.PresenceListResult{
		Items: items,
		Meta:  usecase.NewPageMeta(page, len(presences)),
	}, nil
}

// Delete removes a presence record.
func (srv *presenceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.presenceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPresenceNotFound) {
			return domainerrors.ErrPresenceNotFound.WrapMessage("presence lookup failed")
		}

		return errors.Wrap(err, "failed to delete presence")
	}

	srv.log(ctx).Info("Presence deleted", slog.Any("presenceID", id))

	return nil
}

func toPresenceDTO(presence *entity.Presence) *usecase.PresenceDTO {
	return &usecase.PresenceDTO{
		ID:          presence.ID,
		EventID:     presence.EventID,
		UserID:      presence.UserID,
		CheckedInAt: presence.CheckedInAt,
		CreatedAt:   presence.CreatedAt,
	}
}
