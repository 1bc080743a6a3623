package impl

import (
	"context"
	"io"
	"log/slog"

	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/domain/service"

	"github.com/google/uuid"
)

// Hand-rolled fakes with function fields. Nil fields fall back to not-found
// or zero behavior so each test only wires what it asserts on.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	findAll             func(ctx context.Context) ([]*entity.User, error)
	findByID            func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmail         func(ctx context.Context, email string) (*entity.User, error)
	findByOAuthIdentity func(ctx context.Context, provider, subject string) (*entity.User, error)
	create              func(ctx context.Context, user *entity.User) error
	update              func(ctx context.Context, user *entity.User) error
	delete              func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	if f.findAll == nil {
		return nil, nil
	}

	return f.findAll(ctx)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.findByID == nil {
		return nil, repository.ErrUserNotFound
	}

	return f.findByID(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findByEmail == nil {
		return nil, repository.ErrUserNotFound
	}

	return f.findByEmail(ctx, email)
}

func (f *fakeUserRepo) FindByOAuthIdentity(ctx context.Context, provider, subject string) (*entity.User, error) {
	if f.findByOAuthIdentity == nil {
		return nil, repository.ErrUserNotFound
	}

	return f.findByOAuthIdentity(ctx, provider, subject)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.create == nil {
		return nil
	}

	return f.create(ctx, user)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if f.update == nil {
		return nil
	}

	return f.update(ctx, user)
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.delete == nil {
		return nil
	}

	return f.delete(ctx, id)
}

type fakeEventRepo struct {
	findAll  func(ctx context.Context) ([]*entity.Event, error)
	findByID func(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	create   func(ctx context.Context, event *entity.Event) error
	update   func(ctx context.Context, event *entity.Event) error
	delete   func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeEventRepo) FindAll(ctx context.Context) ([]*entity.Event, error) {
	if f.findAll == nil {
		return nil, nil
	}

	return f.findAll(ctx)
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	if f.findByID == nil {
		return nil, repository.ErrEventNotFound
	}

	return f.findByID(ctx, id)
}

func (f *fakeEventRepo) Create(ctx context.Context, event *entity.Event) error {
	if f.create == nil {
		return nil
	}

	return f.create(ctx, event)
}

func (f *fakeEventRepo) Update(ctx context.Context, event *entity.Event) error {
	if f.update == nil {
		return nil
	}

	return f.update(ctx, event)
}

func (f *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.delete == nil {
		return nil
	}

	return f.delete(ctx, id)
}

type fakeInscriptionRepo struct {
	findAll            func(ctx context.Context) ([]*entity.Inscription, error)
	findByID           func(ctx context.Context, id uuid.UUID) (*entity.Inscription, error)
	findByEventAndUser func(ctx context.Context, eventID, userID uuid.UUID) (*entity.Inscription, error)
	create             func(ctx context.Context, inscription *entity.Inscription) error
	update             func(ctx context.Context, inscription *entity.Inscription) error
	delete             func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeInscriptionRepo) FindAll(ctx context.Context) ([]*entity.Inscription, error) {
	if f.findAll == nil {
		return nil, nil
	}

	return f.findAll(ctx)
}

func (f *fakeInscriptionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inscription, error) {
	if f.findByID == nil {
		return nil, repository.ErrInscriptionNotFound
	}

	return f.findByID(ctx, id)
}

func (f *fakeInscriptionRepo) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entity.Inscription, error) {
	if f.findByEventAndUser == nil {
		return nil, repository.ErrInscriptionNotFound
	}

	return f.findByEventAndUser(ctx, eventID, userID)
}

func (f *fakeInscriptionRepo) Create(ctx context.Context, inscription *entity.Inscription) error {
	if f.create == nil {
		return nil
	}

	return f.create(ctx, inscription)
}

func (f *fakeInscriptionRepo) Update(ctx context.Context, inscription *entity.Inscription) error {
	if f.update == nil {
		return nil
	}

	return f.update(ctx, inscription)
}

func (f *fakeInscriptionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.delete == nil {
		return nil
	}

	return f.delete(ctx, id)
}

type fakeSpeakerRepo struct {
	findAll     func(ctx context.Context) ([]*entity.Speaker, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.Speaker, error)
	findByEmail func(ctx context.Context, email string) (*entity.Speaker, error)
	create      func(ctx context.Context, speaker *entity.Speaker) error
	update      func(ctx context.Context, speaker *entity.Speaker) error
	delete      func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeSpeakerRepo) FindAll(ctx context.Context) ([]*entity.Speaker, error) {
	if f.findAll == nil {
		return nil, nil
	}

	return f.findAll(ctx)
}

func (f *fakeSpeakerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Speaker, error) {
	if f.findByID == nil {
		return nil, repository.ErrSpeakerNotFound
	}

	return f.findByID(ctx, id)
}

func (f *fakeSpeakerRepo) FindByEmail(ctx context.Context, email string) (*entity.Speaker, error) {
	if f.findByEmail == nil {
		return nil, repository.ErrSpeakerNotFound
	}

	return f.findByEmail(ctx, email)
}

func (f *fakeSpeakerRepo) Create(ctx context.Context, speaker *entity.Speaker) error {
	if f.create == nil {
		return nil
	}

	return f.create(ctx, speaker)
}

func (f *fakeSpeakerRepo) Update(ctx context.Context, speaker *entity.Speaker) error {
	if f.update == nil {
		return nil
	}

	return f.update(ctx, speaker)
}

func (f *fakeSpeakerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.delete == nil {
		return nil
	}

	return f.delete(ctx, id)
}

type fakePresenceRepo struct {
	findAll            func(ctx context.Context) ([]*entity.Presence, error)
	findByID           func(ctx context.Context, id uuid.UUID) (*entity.Presence, error)
	findByEventAndUser func(ctx context.Context, eventID, userID uuid.UUID) (*entity.Presence, error)
	create             func(ctx context.Context, presence *entity.Presence) error
	delete             func(ctx context.Context, id uuid.UUID) error
}

func (f *fakePresenceRepo) FindAll(ctx context.Context) ([]*entity.Presence, error) {
	if f.findAll == nil {
		return nil, nil
	}

	return f.findAll(ctx)
}

func (f *fakePresenceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Presence, error) {
	if f.findByID == nil {
		return nil, repository.ErrPresenceNotFound
	}

	return f.findByID(ctx, id)
}

func (f *fakePresenceRepo) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*entity.Presence, error) {
	if f.findByEventAndUser == nil {
		return nil, repository.ErrPresenceNotFound
	}

	return f.findByEventAndUser(ctx, eventID, userID)
}

func (f *fakePresenceRepo) Create(ctx context.Context, presence *entity.Presence) error {
	if f.create == nil {
		return nil
	}

	return f.create(ctx, presence)
}

func (f *fakePresenceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.delete == nil {
		return nil
	}

	return f.delete(ctx, id)
}

type fakeTokenService struct {
	generateAccess  func(payload service.TokenPayload) (string, error)
	generateRefresh func(payload service.TokenPayload) (string, error)
	verifyAccess    func(token string) (*service.TokenPayload, error)
	verifyRefresh   func(token string) (*service.TokenPayload, error)
}

func (f *fakeTokenService) GenerateAccessToken(payload service.TokenPayload) (string, error) {
	if f.generateAccess == nil {
		return "access-token", nil
	}

	return f.generateAccess(payload)
}

func (f *fakeTokenService) GenerateRefreshToken(payload service.TokenPayload) (string, error) {
	if f.generateRefresh == nil {
		return "refresh-token", nil
	}

	return f.generateRefresh(payload)
}

func (f *fakeTokenService) GenerateTokenPair(payload service.TokenPayload) (*service.TokenPair, error) {
	access, err := f.GenerateAccessToken(payload)
	if err != nil {
		return nil, err
	}
	refresh, err := f.GenerateRefreshToken(payload)
	if err != nil {
		return nil, err
	}

	return &service.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (f *fakeTokenService) VerifyAccessToken(token string) (*service.TokenPayload, error) {
	if f.verifyAccess == nil {
		return nil, service.ErrTokenInvalid
	}

	return f.verifyAccess(token)
}

func (f *fakeTokenService) VerifyRefreshToken(token string) (*service.TokenPayload, error) {
	if f.verifyRefresh == nil {
		return nil, service.ErrTokenInvalid
	}

	return f.verifyRefresh(token)
}

// fakeTokenHasher prefixes instead of digesting so expectations stay legible.
type fakeTokenHasher struct{}

func (fakeTokenHasher) HashToken(token string) string {
	return "hash:" + token
}

type fakePasswordHasher struct {
	hash  func(password string) (string, error)
	check func(password, hash string) bool
}

func (f *fakePasswordHasher) Hash(password string) (string, error) {
	if f.hash == nil {
		return "hashed:" + password, nil
	}

	return f.hash(password)
}

func (f *fakePasswordHasher) Check(password, hash string) bool {
	if f.check == nil {
		return "hashed:"+password == hash
	}

	return f.check(password, hash)
}

type fakeProviderClient struct {
	name        string
	redirectURI string
	authURL     func(params service.OAuthAuthorizationParams) string
	exchange    func(ctx context.Context, params service.OAuthCodeExchangeParams) (*service.OAuthProfile, error)
}

func (f *fakeProviderClient) Provider() string { return f.name }

func (f *fakeProviderClient) DisplayName() string { return f.name }

func (f *fakeProviderClient) DefaultRedirectURI() string { return f.redirectURI }

func (f *fakeProviderClient) AuthorizationURL(params service.OAuthAuthorizationParams) string {
	if f.authURL == nil {
		return "https://provider.example/authorize?state=" + params.State
	}

	return f.authURL(params)
}

func (f *fakeProviderClient) ExchangeCodeForProfile(ctx context.Context, params service.OAuthCodeExchangeParams) (*service.OAuthProfile, error) {
	if f.exchange == nil {
		return nil, service.ErrTokenInvalid
	}

	return f.exchange(ctx, params)
}

type fakeRegistry struct {
	clients map[string]service.OAuthProviderClient
}

func (f *fakeRegistry) Get(provider string) (service.OAuthProviderClient, error) {
	client, ok := f.clients[provider]
	if !ok {
		return nil, domainerrors.ErrOAuthProviderNotEnabled
	}

	return client, nil
}

func (f *fakeRegistry) ListEnabled() []service.OAuthProviderInfo {
	infos := make([]service.OAuthProviderInfo, 0, len(f.clients))
	for name := range f.clients {
		infos = append(infos, service.OAuthProviderInfo{Provider: name, DisplayName: name})
	}

	return infos
}

type fakeStateStore struct {
	create  func(provider, codeChallenge, redirectURI string) *service.OAuthStateContext
	consume func(state, provider string) (*service.OAuthStateContext, error)
}

func (f *fakeStateStore) Create(provider, codeChallenge, redirectURI string) *service.OAuthStateContext {
	if f.create == nil {
		return &service.OAuthStateContext{
			State:         "test-state",
			Provider:      provider,
			CodeChallenge: codeChallenge,
			RedirectURI:   redirectURI,
		}
	}

	return f.create(provider, codeChallenge, redirectURI)
}

func (f *fakeStateStore) Consume(state, provider string) (*service.OAuthStateContext, error) {
	if f.consume == nil {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	return f.consume(state, provider)
}

type fakeMailClient struct {
	send func(ctx context.Context, mail *service.Mail) error
	sent []*service.Mail
}

func (f *fakeMailClient) Send(ctx context.Context, mail *service.Mail) error {
	f.sent = append(f.sent, mail)
	if f.send == nil {
		return nil
	}

	return f.send(ctx, mail)
}

type fakeQRService struct {
	generate func(inscriptionID uuid.UUID) ([]byte, error)
}

func (f *fakeQRService) GenerateCheckInQR(inscriptionID uuid.UUID) ([]byte, error) {
	if f.generate == nil {
		return []byte("png"), nil
	}

	return f.generate(inscriptionID)
}

func (f *fakeQRService) ParseCheckInQR(string) (uuid.UUID, error) {
	return uuid.Nil, nil
}
