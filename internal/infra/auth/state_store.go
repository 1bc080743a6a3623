package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"gather/config"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/service"
)

// memoryStateStore keeps in-flight OAuth authorization attempts in process
// memory. Entries are single-use and expire after the configured TTL; a
// process restart drops every pending attempt, which only forces the user to
// restart the flow.
type memoryStateStore struct {
	mu      sync.Mutex
	entries map[string]*service.OAuthStateContext
	ttl     time.Duration
	now     func() time.Time
}

// NewStateStore is the constructor for memoryStateStore.
func NewStateStore(cfg *config.Config) service.OAuthStateStore {
	ttl := 10 * time.Minute
	if cfg.OAuth != nil && cfg.OAuth.StateTTL > 0 {
		ttl = cfg.OAuth.StateTTL
	}

	return &memoryStateStore{
		entries: make(map[string]*service.OAuthStateContext),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create generates an unguessable state and stores the attempt under it.
func (s *memoryStateStore) Create(provider, codeChallenge, redirectURI string) *service.OAuthStateContext {
	stateCtx := &service.OAuthStateContext{
		State:         uuid.NewString(),
		Provider:      provider,
		CodeChallenge: codeChallenge,
		RedirectURI:   redirectURI,
		ExpiresAt:     s.now().Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()
	s.entries[stateCtx.State] = stateCtx

	return stateCtx
}

// Consume removes the entry before validating it, so a state resolves at
// most once no matter the outcome.
func (s *memoryStateStore) Consume(state, provider string) (*service.OAuthStateContext, error) {
	s.mu.Lock()
	stateCtx, ok := s.entries[state]
	delete(s.entries, state)
	s.mu.Unlock()

	if !ok {
		return nil, domainerrors.ErrOAuthStateInvalid.WrapMessage("state not found or already used")
	}
	if stateCtx.Provider != provider {
		return nil, domainerrors.ErrOAuthProviderMismatch.WrapMessage("state was issued for a different provider")
	}
	if s.now().After(stateCtx.ExpiresAt) {
		return nil, domainerrors.ErrOAuthStateExpired.WrapMessage("state expired")
	}

	return stateCtx, nil
}

// pruneLocked drops expired entries. Called opportunistically under the lock
// so abandoned flows do not accumulate.
func (s *memoryStateStore) pruneLocked() {
	now := s.now()
	for state, stateCtx := range s.entries {
		if now.After(stateCtx.ExpiresAt) {
			delete(s.entries, state)
		}
	}
}
