package impl

import (
	"context"
	"testing"
	"time"

	"gather/internal/domain/entity"
	"gather/internal/domain/repository"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCertificateService(inscriptions *fakeInscriptionRepo, presences *fakePresenceRepo) usecase.CertificateUsecase {
	return NewCertificateService(CertificateServiceParams{
		InscriptionRepo: inscriptions,
		PresenceRepo:    presences,
		Logger:          testLogger(),
	})
}

func eligibilityFixture(t *testing.T, status entity.InscriptionStatus, activityID string) (*entity.Inscription, *entity.Presence) {
	t.Helper()

	eventID := uuid.New()
	userID := uuid.New()

	inscription, err := entity.NewInscription(eventID, userID, activityID, status)
	require.NoError(t, err)

	presence, err := entity.NewPresence(eventID, userID, time.Now())
	require.NoError(t, err)

	return inscription, presence
}

func TestEvaluateEligibility_Eligible(t *testing.T) {
	inscription, presence := eligibilityFixture(t, entity.InscriptionConfirmed, "")

	srv := newCertificateService(
		&fakeInscriptionRepo{
			findByEventAndUser: func(_ context.Context, eventID, userID uuid.UUID) (*entity.Inscription, error) {
				assert.Equal(t, inscription.EventID, eventID)
				assert.Equal(t, inscription.UserID, userID)

				return inscription, nil
			},
		},
		&fakePresenceRepo{
			findByEventAndUser: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Presence, error) {
				return presence, nil
			},
		},
	)

	result, err := srv.EvaluateEligibility(context.Background(), usecase.EvaluateEligibilityParams{
		EventID: inscription.EventID,
		UserID:  inscription.UserID,
	})

	require.NoError(t, err)
	assert.True(t, result.Eligible)
	assert.Empty(t, result.Reason)
}

func TestEvaluateEligibility_NoInscription(t *testing.T) {
	srv := newCertificateService(&fakeInscriptionRepo{}, &fakePresenceRepo{})

	result, err := srv.EvaluateEligibility(context.Background(), usecase.EvaluateEligibilityParams{
		EventID: uuid.New(),
		UserID:  uuid.New(),
	})

	require.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Equal(t, "Inscription not found", result.Reason)
}

func TestEvaluateEligibility_CancelledInscription(t *testing.T) {
	inscription, _ := eligibilityFixture(t, entity.InscriptionCancelled, "")

	srv := newCertificateService(
		&fakeInscriptionRepo{
			findByEventAndUser: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Inscription, error) {
				return inscription, nil
			},
		},
		&fakePresenceRepo{},
	)

	result, err := srv.EvaluateEligibility(context.Background(), usecase.EvaluateEligibilityParams{
		EventID: inscription.EventID,
		UserID:  inscription.UserID,
	})

	require.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Equal(t, "Inscription cancelled", result.Reason)
}

func TestEvaluateEligibility_NoPresence(t *testing.T) {
	inscription, _ := eligibilityFixture(t, entity.InscriptionConfirmed, "")

	srv := newCertificateService(
		&fakeInscriptionRepo{
			findByEventAndUser: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Inscription, error) {
				return inscription, nil
			},
		},
		&fakePresenceRepo{},
	)

	result, err := srv.EvaluateEligibility(context.Background(), usecase.EvaluateEligibilityParams{
		EventID: inscription.EventID,
		UserID:  inscription.UserID,
	})

	require.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Equal(t, "Presence not found", result.Reason)
}

func TestEvaluateEligibility_ActivityMismatch(t *testing.T) {
	inscription, presence := eligibilityFixture(t, entity.InscriptionConfirmed, "workshop-go")

	srv := newCertificateService(
		&fakeInscriptionRepo{
			findByEventAndUser: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Inscription, error) {
				return inscription, nil
			},
		},
		&fakePresenceRepo{
			findByEventAndUser: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Presence, error) {
				return presence, nil
			},
		},
	)

	result, err := srv.EvaluateEligibility(context.Background(), usecase.EvaluateEligibilityParams{
		EventID:    inscription.EventID,
		UserID:     inscription.UserID,
		ActivityID: "workshop-rust",
	})

	require.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Equal(t, "Inscription is not valid for requested activity", result.Reason)
}

func TestEvaluateEligibility_WholeEventInscriptionCoversActivity(t *testing.T) {
	// An inscription without an activity is valid for any requested one.
	inscription, presence := eligibilityFixture(t, entity.InscriptionConfirmed, "")

	srv := newCertificateService(
		&fakeInscriptionRepo{
			findByEventAndUser: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Inscription, error) {
				return inscription, nil
			},
		},
		&fakePresenceRepo{
			findByEventAndUser: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Presence, error) {
				return presence, nil
			},
		},
	)

	result, err := srv.EvaluateEligibility(context.Background(), usecase.EvaluateEligibilityParams{
		EventID:    inscription.EventID,
		UserID:     inscription.UserID,
		ActivityID: "workshop-go",
	})

	require.NoError(t, err)
	assert.True(t, result.Eligible)
}

func TestEvaluateBatch_SplitsUsers(t *testing.T) {
	inscription, presence := eligibilityFixture(t, entity.InscriptionConfirmed, "")
	strangerID := uuid.New()

	srv := newCertificateService(
		&fakeInscriptionRepo{
			findByEventAndUser: func(_ context.Context, _, userID uuid.UUID) (*entity.Inscription, error) {
				if userID == inscription.UserID {
					return inscription, nil
				}

				return nil, repository.ErrInscriptionNotFound
			},
		},
		&fakePresenceRepo{
			findByEventAndUser: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Presence, error) {
				return presence, nil
			},
		},
	)

	result, err := srv.EvaluateBatch(context.Background(), usecase.EvaluateBatchParams{
		EventID: inscription.EventID,
		UserIDs: []uuid.UUID{inscription.UserID, strangerID},
	})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{inscription.UserID}, result.EligibleUserIDs)
	require.Len(t, result.Ineligible, 1)
	assert.Equal(t, strangerID, result.Ineligible[0].UserID)
	assert.Equal(t, "Inscription not found", result.Ineligible[0].Reason)
}
