package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/domain/service"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inscriptionService implements the InscriptionUsecase interface.
type inscriptionService struct {
	inscriptionRepo repository.InscriptionRepository
	eventRepo       repository.EventRepository
	userRepo        repository.UserRepository
	mailClient      service.MailClient
	qrService       service.QRCodeService
	logger          *slog.Logger
}

// InscriptionServiceParams holds dependencies for inscriptionService, injected by Fx.
type InscriptionServiceParams struct {
	fx.In

	InscriptionRepo repository.InscriptionRepository
	EventRepo       repository.EventRepository
	UserRepo        repository.UserRepository
	MailClient      service.MailClient
	QRService       service.QRCodeService
	Logger          *slog.Logger
}

// NewInscriptionService is the constructor for inscriptionService.
func NewInscriptionService(params InscriptionServiceParams) usecase.InscriptionUsecase {
	return &inscriptionService{
		inscriptionRepo: params.InscriptionRepo,
		eventRepo:       params.EventRepo,
		userRepo:        params.UserRepo,
		mailClient:      params.MailClient,
		qrService:       params.QRService,
		logger:          params.Logger,
	}
}

func (srv *inscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create enrolls a user into an event. The inscription window must be open
// and the user must not already be inscribed. A confirmation email is sent
// best-effort after the record is stored.
func (srv *inscriptionService) Create(ctx context.Context, params usecase.CreateInscriptionParams) (*usecase.InscriptionDTO, error) {
	srv.log(ctx).Debug("Creating inscription", slog.Any("eventID", params.EventID), slog.Any("userID", params.UserID))

	event, err := srv.eventRepo.FindByID(ctx, params.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound.WrapMessage("event lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find event for inscription")
	}

	if !event.InscriptionOpenAt(time.Now()) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("inscription window is closed")
	}

	user, err := srv.userRepo.FindByID(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user for inscription")
	}

	_, err = srv.inscriptionRepo.FindByEventAndUser(ctx, params.EventID, params.UserID)
	if err == nil {
		return nil, domainerrors.ErrAlreadyInscribed.WrapMessage("user already inscribed for event")
	}
	if !errors.Is(err, repository.ErrInscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to check existing inscription")
	}

	inscription, err := entity.NewInscription(params.EventID, params.UserID, params.ActivityID, entity.InscriptionPending)
	if err != nil {
		return nil, errors.Wrap(err, "inscription validation failed")
	}

	if err := srv.inscriptionRepo.Create(ctx, inscription); err != nil {
		return nil, errors.Wrap(err, "failed to create inscription")
	}

	srv.log(ctx).Info("Inscription created", slog.Any("inscriptionID", inscription.ID))

	// Delivery failures must not undo the inscription itself.
	if err := srv.sendConfirmationMail(ctx, event, user, inscription); err != nil {
		srv.log(ctx).Warn("Failed to send inscription confirmation", slog.Any("inscriptionID", inscription.ID), slog.Any("error", err))
	}

	return toInscriptionDTO(inscription), nil
}

func (srv *inscriptionService) sendConfirmationMail(ctx context.Context, event *entity.Event, user *entity.User, inscription *entity.Inscription) error {
	mail := &service.Mail{
		To:      []string{user.Email},
		Subject: fmt.Sprintf("Inscription confirmed: %s", event.Title),
		Text: fmt.Sprintf(
			"Hi %s,\n\nYour inscription for %s was received.\nLocation: %s\nStarts: %s\n\nPresent the attached QR code at check-in.\nInscription ID: %s\n",
			user.Name,
			event.Title,
			event.Location,
			event.DateInit.Format(time.RFC1123),
			inscription.ID,
		),
	}

	if err := srv.mailClient.Send(ctx, mail); err != nil {
		return errors.Wrap(err, "failed to send confirmation mail")
	}

	return nil
}

// GetByID fetches a single inscription.
func (srv *inscriptionService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.InscriptionDTO, error) {
	inscription, err := srv.inscriptionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInscriptionNotFound) {
			return nil, domainerrors.ErrInscriptionNotFound.WrapMessage("inscription lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find inscription by id")
	}

	return toInscriptionDTO(inscription), nil
}

// List returns one page of inscriptions.
func (srv *inscriptionService) List(ctx context.Context, page usecase.PageParams) (*usecase.InscriptionListResult, error) {
	page = page.Normalize()

	inscriptions, err := srv.inscriptionRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inscriptions")
	}

	items := make([]usecase.InscriptionDTO, 0, page.Limit)
	for _, inscription := range usecase.Paginate(inscriptions, page) {
		items = append(items, *toInscriptionDTO(inscription))
	}

	return &usecase.InscriptionListResult{
		Items: items,
		Meta:  usecase.NewPageMeta(page, len(inscriptions)),
	}, nil
}

// UpdateStatus moves an inscription through its lifecycle.
func (srv *inscriptionService) UpdateStatus(ctx context.Context, id uuid.UUID, params usecase.UpdateInscriptionStatusParams) (*usecase.InscriptionDTO, error) {
	if !params.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("inscription status is invalid")
	}

	inscription, err := srv.inscriptionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInscriptionNotFound) {
			return nil, domainerrors.ErrInscriptionNotFound.WrapMessage("inscription lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find inscription for update")
	}

	inscription.Status = params.Status
	inscription.Touch()

	if err := srv.inscriptionRepo.Update(ctx, inscription); err != nil {
		return nil, errors.Wrap(err, "failed to update inscription")
	}

	srv.log(ctx).Info("Inscription status updated", slog.Any("inscriptionID", inscription.ID), slog.Any("status", inscription.Status))

	return toInscriptionDTO(inscription), nil
}

// Delete removes an inscription.
func (srv *inscriptionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.inscriptionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInscriptionNotFound) {
			return domainerrors.ErrInscriptionNotFound.WrapMessage("inscription lookup failed")
		}

		return errors.Wrap(err, "failed to delete inscription")
	}

	srv.log(ctx).Info("Inscription deleted", slog.Any("inscriptionID", id))

	return nil
}

// CheckInQR renders the PNG check-in QR code for an existing inscription.
func (srv *inscriptionService) CheckInQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	inscription, err := srv.inscriptionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInscriptionNotFound) {
			return nil, domainerrors.ErrInscriptionNotFound.WrapMessage("inscription lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find inscription for qr generation")
	}

	png, err := srv.qrService.GenerateCheckInQR(inscription.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate check-in qr code")
	}

	return png, nil
}

func toInscriptionDTO(inscription *entity.Inscription) *usecase.InscriptionDTO {
	return &usecase.InscriptionDTO{
		ID:         inscription.ID,
		EventID:    inscription.EventID,
		UserID:     inscription.UserID,
		ActivityID: inscription.ActivityID,
		Status:     inscription.Status,
		CreatedAt:  inscription.CreatedAt,
		UpdatedAt:  inscription.UpdatedAt,
	}
}
