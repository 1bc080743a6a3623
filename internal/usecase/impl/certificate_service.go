package impl

import (
	"context"
	"log/slog"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// certificateService implements the CertificateUsecase interface. A user is
// eligible for a certificate when they hold a non-cancelled inscription for
// the event and a recorded presence.
type certificateService struct {
	inscriptionRepo repository.InscriptionRepository
	presenceRepo    repository.PresenceRepository
	logger          *slog.Logger
}

// CertificateServiceParams holds dependencies for certificateService,
// injected by Fx.
type CertificateServiceParams struct {
	fx.In

	InscriptionRepo repository.InscriptionRepository
	PresenceRepo    repository.PresenceRepository
	Logger          *slog.Logger
}

// NewCertificateService is the constructor for certificateService.
func NewCertificateService(params CertificateServiceParams) usecase.CertificateUsecase {
	return &certificateService{
		inscriptionRepo: params.InscriptionRepo,
		presenceRepo:    params.PresenceRepo,
		logger:          params.Logger,
	}
}

func (srv *certificateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EvaluateEligibility checks one user against one event. Missing records
// make the user ineligible; only infrastructure failures propagate as
// errors.
func (srv *certificateService) EvaluateEligibility(ctx context.Context, params usecase.EvaluateEligibilityParams) (*usecase.EligibilityResult, error) {
	inscription, err := srv.inscriptionRepo.FindByEventAndUser(ctx, params.EventID, params.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrInscriptionNotFound) {
			return &usecase.EligibilityResult{Reason: "Inscription not found"}, nil
		}

		return nil, errors.Wrap(err, "failed to find inscription for eligibility")
	}

	if inscription.Status == entity.InscriptionCancelled {
		return &usecase.EligibilityResult{Reason: "Inscription cancelled"}, nil
	}

	if _, err := srv.presenceRepo.FindByEventAndUser(ctx, params.EventID, params.UserID); err != nil {
		if errors.Is(err, repository.ErrPresenceNotFound) {
			return &usecase.EligibilityResult{Reason: "Presence not found"}, nil
		}

		return nil, errors.Wrap(err, "failed to find presence for eligibility")
	}

	if params.ActivityID != "" && inscription.ActivityID != "" && inscription.ActivityID != params.ActivityID {
		return &usecase.EligibilityResult{Reason: "Inscription is not valid for requested activity"}, nil
	}

	return &usecase.EligibilityResult{Eligible: true}, nil
}

// EvaluateBatch evaluates every user in the list against the event,
// splitting them into eligible and ineligible sets.
func (srv *certificateService) EvaluateBatch(ctx context.Context, params usecase.EvaluateBatchParams) (*usecase.BatchEligibilityResult, error) {
	result := &usecase.BatchEligibilityResult{
		EligibleUserIDs: []uuid.UUID{},
		Ineligible:      []usecase.IneligibleUser{},
	}

	for _, userID := range params.UserIDs {
		eligibility, err := srv.EvaluateEligibility(ctx, usecase.EvaluateEligibilityParams{
			EventID:    params.EventID,
			UserID:     userID,
			ActivityID: params.ActivityID,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to evaluate batch entry")
		}

		if eligibility.Eligible {
			result.EligibleUserIDs = append(result.EligibleUserIDs, userID)
		} else {
			result.Ineligible = append(result.Ineligible, usecase.IneligibleUser{
				UserID: userID,
				Reason: eligibility.Reason,
			})
		}
	}

	srv.log(ctx).Debug("Certificate batch evaluated",
		slog.Any("eventID", params.EventID),
		slog.Int("eligible", len(result.EligibleUserIDs)),
		slog.Int("ineligible", len(result.Ineligible)))

	return result, nil
}
