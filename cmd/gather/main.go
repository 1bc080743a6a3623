package main

import (
	"context"
	"log/slog"
	"os"

	"gather/config"
	"gather/internal/delivery"
	"gather/internal/delivery/http"
	"gather/internal/delivery/http/middleware"
	"gather/internal/delivery/http/router/handler"
	"gather/internal/domain/service"
	"gather/internal/infra/auth"
	"gather/internal/infra/auth/google"
	logs "gather/internal/infra/log"
	"gather/internal/infra/mail"
	"gather/internal/infra/persistence/spreadsheet"
	"gather/internal/infra/qrcode"
	"gather/internal/infra/sheets"
	"gather/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			initializeSheets,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newSheetsValues,
	)
}

// newSheetsValues exposes the Sheets client under the values interface the
// repositories depend on.
func newSheetsValues(ctx context.Context, cfg *config.Config) (sheets.ValuesAPI, error) {
	return sheets.NewClient(ctx, cfg)
}

// initializeSheets makes sure every entity sheet carries its header row
// before the server starts accepting requests.
func initializeSheets(lc fx.Lifecycle, values sheets.ValuesAPI) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return spreadsheet.EnsureHeaders(ctx, values)
		},
	})
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			spreadsheet.NewUserRepository,
			spreadsheet.NewEventRepository,
			spreadsheet.NewSpeakerRepository,
			spreadsheet.NewInscriptionRepository,
			spreadsheet.NewPresenceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewTokenHasher,
			auth.NewStateStore,
			auth.NewProviderRegistry,
			fx.Annotate(
				google.NewProvider,
				fx.ResultTags(`group:"oauth_providers"`),
			),
			mail.NewSMTPClient,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewEventService,
			impl.NewSpeakerService,
			impl.NewInscriptionService,
			impl.NewPresenceService,
			impl.NewCertificateService,
			impl.NewMailService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestContextMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewEventHandler,
			handler.NewSpeakerHandler,
			handler.NewInscriptionHandler,
			handler.NewPresenceHandler,
			handler.NewCertificateHandler,
			handler.NewMailHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
