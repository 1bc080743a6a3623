package impl

import (
	"context"
	"testing"
	"time"

	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPresenceService(params PresenceServiceParams) *presenceService {
	if params.Logger == nil {
		params.Logger = testLogger()
	}

	return NewPresenceService(params).(*presenceService)
}

func TestPresenceRegister_Success(t *testing.T) {
	event := newTestEvent(t, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	user := newTestUser(t)

	var created *entity.Presence
	srv := newPresenceService(PresenceServiceParams{
		PresenceRepo: &fakePresenceRepo{
			create: func(_ context.Context, p *entity.Presence) error {
				created = p

				return nil
			},
		},
		EventRepo: &fakeEventRepo{
			findByID: func(context.Context, uuid.UUID) (*entity.Event, error) {
				return event, nil
			},
		},
		UserRepo: &fakeUserRepo{
			findByID: func(context.Context, uuid.UUID) (*entity.User, error) {
				return user, nil
			},
		},
	})

	dto, err := srv.Register(context.Background(), usecase.RegisterPresenceParams{
		EventID: event.ID,
		UserID:  user.ID,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, dto.ID)
	assert.False(t, dto.CheckedInAt.IsZero())
}

func TestPresenceRegister_Idempotent(t *testing.T) {
	event := newTestEvent(t, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	user := newTestUser(t)

	existing, err := entity.NewPresence(event.ID, user.ID, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	srv := newPresenceService(PresenceServiceParams{
		PresenceRepo: &fakePresenceRepo{
			findByEventAndUser: func(context.Context, uuid.UUID, uuid.UUID) (*entity.Presence, error) {
				return existing, nil
			},
			create: func(context.Context, *entity.Presence) error {
				t.Fatal("create must not be called for an existing presence")

				return nil
			},
		},
		EventRepo: &fakeEventRepo{
			findByID: func(context.Context, uuid.UUID) (*entity.Event, error) {
				return event, nil
			},
		},
		UserRepo: &fakeUserRepo{
			findByID: func(context.Context, uuid.UUID) (*entity.User, error) {
				return user, nil
			},
		},
	})

	// Checking in twice returns the original record instead of failing.
	dto, err := srv.Register(context.Background(), usecase.RegisterPresenceParams{
		EventID: event.ID,
		UserID:  user.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, dto.ID)
}

func TestPresenceRegister_EventMissing(t *testing.T) {
	srv := newPresenceService(PresenceServiceParams{
		PresenceRepo: &fakePresenceRepo{},
		EventRepo:    &fakeEventRepo{},
		UserRepo:     &fakeUserRepo{},
	})

	dto, err := srv.Register(context.Background(), usecase.RegisterPresenceParams{
		EventID: uuid.New(),
		UserID:  uuid.New(),
	})

	assert.Nil(t, dto)
	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestPresenceGetByID_NotFound(t *testing.T) {
	srv := newPresenceService(PresenceServiceParams{
		PresenceRepo: &fakePresenceRepo{},
		EventRepo:    &fakeEventRepo{},
		UserRepo:     &fakeUserRepo{},
	})

	dto, err := srv.GetByID(context.Background(), uuid.New())

	assert.Nil(t, dto)
	assert.ErrorIs(t, err, domainerrors.ErrPresenceNotFound)
}

func TestPresenceList_Paginates(t *testing.T) {
	presences := make([]*entity.Presence, 0, 3)
	for range 3 {
		presence, err := entity.NewPresence(uuid.New(), uuid.New(), time.Now())
		require.NoError(t, err)
		presences = append(presences, presence)
	}

	srv := newPresenceService(PresenceServiceParams{
		PresenceRepo: &fakePresenceRepo{
			findAll: func(context.Context) ([]*entity.Presence, error) {
				return presences, nil
			},
		},
		EventRepo: &fakeEventRepo{},
		UserRepo:  &fakeUserRepo{},
	})

	result, err := srv.List(context.Background(), usecase.PageParams{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 3, result.Meta.Total)
	assert.True(t, result.Meta.HasNextPage)
}
