package impl

import (
	"context"
	"log/slog"

	deliverycontext "gather/internal/delivery/context"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/service"
	"gather/internal/usecase"

	"go.uber.org/fx"
)

// mailService implements the MailUsecase interface.
type mailService struct {
	mailClient service.MailClient
	logger     *slog.Logger
}

// MailServiceParams holds dependencies for mailService, injected by Fx.
type MailServiceParams struct {
	fx.In

	MailClient service.MailClient
	Logger     *slog.Logger
}

// NewMailService is the constructor for mailService.
func NewMailService(params MailServiceParams) usecase.MailUsecase {
	return &mailService{
		mailClient: params.MailClient,
		logger:     params.Logger,
	}
}

func (srv *mailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send delivers an arbitrary email through the configured transport.
func (srv *mailService) Send(ctx context.Context, params usecase.SendMailParams) error {
	srv.log(ctx).Debug("Sending email", slog.Int("recipients", len(params.To)))

	mail := &service.Mail{
		To:      params.To,
		Cc:      params.Cc,
		Bcc:     params.Bcc,
		Subject: params.Subject,
		Text:    params.Text,
		HTML:    params.HTML,
	}

	if err := srv.mailClient.Send(ctx, mail); err != nil {
		srv.log(ctx).Error("Email delivery failed", slog.Any("error", err))

		return domainerrors.ErrMailDeliveryFailed.WrapMessage("email delivery failed")
	}

	srv.log(ctx).Info("Email sent", slog.Int("recipients", len(params.To)))

	return nil
}
