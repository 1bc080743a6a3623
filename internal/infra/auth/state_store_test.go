package auth

import (
	"testing"
	"time"

	"gather/config"
	domainerrors "gather/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStateStore(ttl time.Duration) *memoryStateStore {
	cfg := &config.Config{OAuth: &config.OAuthConfig{StateTTL: ttl}}

	return NewStateStore(cfg).(*memoryStateStore)
}

func TestStateStore_CreateAndConsume(t *testing.T) {
	store := newTestStateStore(10 * time.Minute)

	created := store.Create("google", "the-challenge", "https://app.example/callback")
	require.NotEmpty(t, created.State)

	got, err := store.Consume(created.State, "google")

	require.NoError(t, err)
	assert.Equal(t, "the-challenge", got.CodeChallenge)
	assert.Equal(t, "https://app.example/callback", got.RedirectURI)
}

func TestStateStore_SingleUse(t *testing.T) {
	store := newTestStateStore(10 * time.Minute)

	created := store.Create("google", "the-challenge", "https://app.example/callback")

	_, err := store.Consume(created.State, "google")
	require.NoError(t, err)

	// Second use of the same state must fail.
	got, err := store.Consume(created.State, "google")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestStateStore_UnknownState(t *testing.T) {
	store := newTestStateStore(10 * time.Minute)

	got, err := store.Consume("never-issued", "google")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestStateStore_ProviderMismatch(t *testing.T) {
	store := newTestStateStore(10 * time.Minute)

	created := store.Create("google", "the-challenge", "https://app.example/callback")

	got, err := store.Consume(created.State, "github")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthProviderMismatch)

	// The mismatch attempt already burned the state.
	_, err = store.Consume(created.State, "google")
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestStateStore_Expiry(t *testing.T) {
	store := newTestStateStore(10 * time.Minute)

	now := time.Now()
	store.now = func() time.Time { return now }

	created := store.Create("google", "the-challenge", "https://app.example/callback")

	store.now = func() time.Time { return now.Add(11 * time.Minute) }

	got, err := store.Consume(created.State, "google")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateExpired)
}

func TestStateStore_PrunesExpiredOnCreate(t *testing.T) {
	store := newTestStateStore(10 * time.Minute)

	now := time.Now()
	store.now = func() time.Time { return now }

	stale := store.Create("google", "c1", "https://app.example/callback")

	store.now = func() time.Time { return now.Add(11 * time.Minute) }
	store.Create("google", "c2", "https://app.example/callback")

	store.mu.Lock()
	_, staleKept := store.entries[stale.State]
	count := len(store.entries)
	store.mu.Unlock()

	assert.False(t, staleKept)
	assert.Equal(t, 1, count)
}

func TestStateStore_DefaultTTL(t *testing.T) {
	store := NewStateStore(&config.Config{}).(*memoryStateStore)

	assert.Equal(t, 10*time.Minute, store.ttl)

	created := store.Create("google", "c", "https://app.example/callback")
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), created.ExpiresAt, time.Minute)
}
