package impl

import (
	"context"
	"log/slog"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// speakerService implements the SpeakerUsecase interface.
type speakerService struct {
	speakerRepo repository.SpeakerRepository
	logger      *slog.Logger
}

// SpeakerServiceParams holds dependencies for speakerService, injected by Fx.
type SpeakerServiceParams struct {
	fx.In

	SpeakerRepo repository.SpeakerRepository
	Logger      *slog.Logger
}

// NewSpeakerService is the constructor for speakerService.
func NewSpeakerService(params SpeakerServiceParams) usecase.SpeakerUsecase {
	return &speakerService{
		speakerRepo: params.SpeakerRepo,
		logger:      params.Logger,
	}
}

func (srv *speakerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new speaker. The email must not be taken by any
// existing speaker.
func (srv *speakerService) Create(ctx context.Context, params usecase.CreateSpeakerParams) (*usecase.SpeakerDTO, error) {
	srv.log(ctx).Debug("Creating speaker", slog.String("email", params.Email))

	_, err := srv.speakerRepo.FindByEmail(ctx, params.Email)
	if err == nil {
		return nil, domainerrors.ErrSpeakerAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrSpeakerNotFound) {
		return nil, errors.Wrap(err, "failed to check speaker email uniqueness")
	}

	speaker, err := entity.NewSpeaker(params.Name, params.Email)
	if err != nil {
		return nil, errors.Wrap(err, "speaker validation failed")
	}
	speaker.Bio = params.Bio
	speaker.SocialLinks = params.SocialLinks

	if err := srv.speakerRepo.Create(ctx, speaker); err != nil {
		return nil, errors.Wrap(err, "failed to create speaker")
	}

	srv.log(ctx).Info("Speaker created", slog.Any("speakerID", speaker.ID))

	return toSpeakerDTO(speaker), nil
}

// GetByID fetches a single speaker.
func (srv *speakerService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.SpeakerDTO, error) {
	speaker, err := srv.speakerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSpeakerNotFound) {
			return nil, domainerrors.ErrSpeakerNotFound.WrapMessage("speaker lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find speaker by id")
	}

	return toSpeakerDTO(speaker), nil
}

// List returns one page of speakers.
func (srv *speakerService) List(ctx context.Context, page usecase.PageParams) (*usecase.SpeakerListResult, error) {
	page = page.Normalize()

	speakers, err := srv.speakerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list speakers")
	}

	items := make([]usecase.SpeakerDTO, 0, page.Limit)
	for _, speaker := range usecase.Paginate(speakers, page) {
		items = append(items, *toSpeakerDTO(speaker))
	}

	return &usecase.SpeakerListResult{
		Items: items,
		Meta:  usecase.NewPageMeta(page, len(speakers)),
	}, nil
}

// Update applies the non-nil fields to an existing speaker.
func (srv *speakerService) Update(ctx context.Context, id uuid.UUID, params usecase.UpdateSpeakerParams) (*usecase.SpeakerDTO, error) {
	speaker, err := srv.speakerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSpeakerNotFound) {
			return nil, domainerrors.ErrSpeakerNotFound.WrapMessage("speaker lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find speaker for update")
	}

	if params.Name != nil {
		speaker.Name = *params.Name
	}
	if params.Email != nil && *params.Email != speaker.Email {
		if _, err := srv.speakerRepo.FindByEmail(ctx, *params.Email); err == nil {
			return nil, domainerrors.ErrSpeakerAlreadyExists.WrapMessage("email already registered")
		} else if !errors.Is(err, repository.ErrSpeakerNotFound) {
			return nil, errors.Wrap(err, "failed to check speaker email uniqueness")
		}
		speaker.Email = *params.Email
	}
	if params.Bio != nil {
		speaker.Bio = *params.Bio
	}
	if params.SocialLinks != nil {
		speaker.SocialLinks = *params.SocialLinks
	}

	if err := speaker.Validate(); err != nil {
		return nil, errors.Wrap(err, "speaker validation failed")
	}
	speaker.Touch()

	if err := srv.speakerRepo.Update(ctx, speaker); err != nil {
		return nil, errors.Wrap(err, "failed to update speaker")
	}

	srv.log(ctx).Info("Speaker updated", slog.Any("speakerID", speaker.ID))

	return toSpeakerDTO(speaker), nil
}

// Delete removes a speaker.
func (srv *speakerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.speakerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSpeakerNotFound) {
			return domainerrors.ErrSpeakerNotFound.WrapMessage("speaker lookup failed")
		}

		return errors.Wrap(err, "failed to delete speaker")
	}

	srv.log(ctx).Info("Speaker deleted", slog.Any("speakerID", id))

	return nil
}

func toSpeakerDTO(speaker *entity.Speaker) *usecase.SpeakerDTO {
	return &usecase.SpeakerDTO{
		ID:          speaker.ID,
		Name:        speaker.Name,
		Email:       speaker.Email,
		Bio:         speaker.Bio,
		SocialLinks: speaker.SocialLinks,
		CreatedAt:   speaker.CreatedAt,
		UpdatedAt:   speaker.UpdatedAt,
	}
}
