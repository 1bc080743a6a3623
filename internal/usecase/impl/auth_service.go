// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"log/slog"
	"regexp"
	"time"

	deliverycontext "gather/internal/delivery/context"
	"gather/internal/domain/entity"
	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/repository"
	"gather/internal/domain/service"
	"gather/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// codeChallengePattern matches a PKCE S256 challenge: base64url output of
// SHA-256 is 43 chars, but RFC 7636 allows up to 128 for the verifier-derived
// values, all from the unreserved charset.
var codeChallengePattern = regexp.MustCompile(`^[A-Za-z0-9\-._~]{43,128}$`)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	tokenHasher  service.TokenHasher
	hasher       service.PasswordHasher
	registry     service.OAuthProviderRegistry
	stateStore   service.OAuthStateStore
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	TokenHasher  service.TokenHasher
	Hasher       service.PasswordHasher
	Registry     service.OAuthProviderRegistry
	StateStore   service.OAuthStateStore
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		tokenHasher:  params.TokenHasher,
		hasher:       params.Hasher,
		registry:     params.Registry,
		stateStore:   params.StateStore,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates an email/password pair and issues a fresh token pair.
func (srv *authService) Login(ctx context.Context, params usecase.LoginParams) (*usecase.LoginResult, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", params.Email))

	user, err := srv.userRepo.FindByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", params.Email), slog.Any("error", err))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// OAuth-only accounts have no password hash and cannot log in this way.
	if !user.HasPassword() || !srv.hasher.Check(params.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", params.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	pair, err := srv.issueTokenPair(ctx, user)
	if err != nil {
		srv.log(ctx).Error("Login failed", slog.String("email", params.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token pair during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         toAuthUserDTO(user),
	}, nil
}

// StartOAuthAuthorization validates the PKCE challenge, records the attempt
// and returns the provider authorization URL together with the opaque state.
func (srv *authService) StartOAuthAuthorization(ctx context.Context, params usecase.StartOAuthParams) (*usecase.StartOAuthResult, error) {
	srv.log(ctx).Debug("Starting OAuth authorization", slog.String("provider", params.Provider))

	if !codeChallengePattern.MatchString(params.CodeChallenge) {
		return nil, domainerrors.ErrCodeChallengeInvalid.WrapMessage("code challenge failed format check")
	}

	client, err := srv.registry.Get(params.Provider)
	if err != nil {
		return nil, errors.Wrap(err, "provider lookup failed")
	}

	redirectURI := params.RedirectURI
	if redirectURI == "" {
		redirectURI = client.DefaultRedirectURI()
	}
	if redirectURI == "" {
		return nil, domainerrors.ErrRedirectURIRequired.WrapMessage("no redirect URI supplied or configured")
	}

	stateCtx := srv.stateStore.Create(params.Provider, params.CodeChallenge, redirectURI)

	authorizationURL := client.AuthorizationURL(service.OAuthAuthorizationParams{
		State:         stateCtx.State,
		CodeChallenge: params.CodeChallenge,
		RedirectURI:   redirectURI,
	})

	srv.log(ctx).Debug("OAuth authorization started", slog.String("provider", params.Provider), slog.String("state", stateCtx.State))

	return &usecase.StartOAuthResult{
		Provider:         stateCtx.Provider,
		AuthorizationURL: authorizationURL,
		State:            stateCtx.State,
		ExpiresAt:        stateCtx.ExpiresAt,
	}, nil
}

// OAuthCallback consumes the pending state, checks the PKCE verifier,
// exchanges the code and signs the resolved user in.
func (srv *authService) OAuthCallback(ctx context.Context, params usecase.OAuthCallbackParams) (*usecase.LoginResult, error) {
	srv.log(ctx).Debug("Handling OAuth callback", slog.String("provider", params.Provider))

	client, err := srv.registry.Get(params.Provider)
	if err != nil {
		return nil, errors.Wrap(err, "provider lookup failed")
	}

	// The state is removed on lookup, so a replayed callback fails here.
	stateCtx, err := srv.stateStore.Consume(params.State, params.Provider)
	if err != nil {
		srv.log(ctx).Warn("OAuth state rejected", slog.String("provider", params.Provider), slog.Any("error", err))

		return nil, errors.Wrap(err, "state validation failed")
	}

	if !verifierMatchesChallenge(params.CodeVerifier, stateCtx.CodeChallenge) {
		srv.log(ctx).Warn("PKCE verifier mismatch", slog.String("provider", params.Provider))

		return nil, domainerrors.ErrCodeVerifierInvalid.WrapMessage("code verifier does not match challenge")
	}

	profile, err := client.ExchangeCodeForProfile(ctx, service.OAuthCodeExchangeParams{
		Code:         params.Code,
		CodeVerifier: params.CodeVerifier,
		RedirectURI:  stateCtx.RedirectURI,
	})
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.String("provider", params.Provider), slog.Any("error", err))

		return nil, domainerrors.ErrOAuthExchangeFailed.WrapMessage("code exchange failed")
	}

	if profile.Subject == "" || profile.Email == "" {
		return nil, domainerrors.ErrOAuthProfileIncomplete.WrapMessage("provider profile missing subject or email")
	}

	user, err := srv.findOrCreateOAuthUser(ctx, params.Provider, profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve local user for oauth callback")
	}

	pair, err := srv.issueTokenPair(ctx, user)
	if err != nil {
		srv.log(ctx).Error("OAuth callback failed", slog.String("provider", params.Provider), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token pair during oauth callback")
	}

	srv.log(ctx).Info("OAuth sign-in completed", slog.String("provider", params.Provider), slog.Any("userID", user.ID))

	return &usecase.LoginResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         toAuthUserDTO(user),
	}, nil
}

// findOrCreateOAuthUser resolves the verified external identity to a local
// account: first by provider identity, then by email (linking the identity),
// otherwise by provisioning a new user.
func (srv *authService) findOrCreateOAuthUser(ctx context.Context, provider string, profile *service.OAuthProfile) (*entity.User, error) {
	user, err := srv.userRepo.FindByOAuthIdentity(ctx, provider, profile.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by oauth identity")
	}

	user, err = srv.userRepo.FindByEmail(ctx, profile.Email)
	if err == nil {
		// Same email, first sign-in through this provider: link the identity.
		user.LinkOAuthIdentity(provider, profile.Subject)
		if err := srv.userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to link oauth identity")
		}

		srv.log(ctx).Info("Linked OAuth identity to existing account", slog.String("provider", provider), slog.Any("userID", user.ID))

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	name := profile.Name
	if name == "" {
		name = entity.DefaultNameFromEmail(profile.Email)
	}

	newUser, err := entity.NewUser(name, profile.Email, entity.ProfileUser)
	if err != nil {
		return nil, errors.Wrap(err, "oauth-provisioned user failed validation")
	}
	newUser.LinkOAuthIdentity(provider, profile.Subject)

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create oauth user")
	}

	srv.log(ctx).Info("Provisioned new user from OAuth profile", slog.String("provider", provider), slog.Any("userID", newUser.ID))

	return newUser, nil
}

// RefreshToken rotates a refresh token. Presenting a token that verifies but
// no longer matches the stored hash is treated as reuse of a rotated-out
// token: the active session is revoked before the caller is rejected.
func (srv *authService) RefreshToken(ctx context.Context, params usecase.RefreshTokenParams) (*usecase.RefreshTokenResult, error) {
	srv.log(ctx).Debug("Attempting to rotate refresh token")

	payload, err := srv.tokenService.VerifyRefreshToken(params.RefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token verification failed")
	}

	user, err := srv.userRepo.FindByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("refresh token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user for refresh")
	}

	if user.RefreshTokenHash == "" {
		return nil, domainerrors.ErrRefreshTokenInactive.WrapMessage("no active refresh token for user")
	}

	if srv.tokenHasher.HashToken(params.RefreshToken) != user.RefreshTokenHash {
		// A valid but stale token means the original was stolen or replayed
		// after rotation. Revoke the whole session chain.
		user.RefreshTokenHash = ""
		user.Touch()
		if err := srv.userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to revoke session after reuse detection")
		}

		srv.log(ctx).Warn("Refresh token reuse detected, session revoked", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrRefreshTokenReused.WrapMessage("refresh token reuse detected")
	}

	pair, err := srv.issueTokenPair(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue rotated token pair")
	}

	srv.log(ctx).Debug("Refresh token rotated", slog.Any("userID", user.ID))

	return &usecase.RefreshTokenResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// ValidateToken verifies an access token and resolves the current user.
// Verification and lookup failures report an invalid result instead of an
// error; only infrastructure failures propagate.
func (srv *authService) ValidateToken(ctx context.Context, accessToken string) (*usecase.ValidateTokenResult, error) {
	payload, err := srv.tokenService.VerifyAccessToken(accessToken)
	if err != nil {
		srv.log(ctx).Debug("Access token validation failed", slog.Any("error", err))

		return &usecase.ValidateTokenResult{Valid: false}, nil
	}

	user, err := srv.userRepo.FindByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &usecase.ValidateTokenResult{Valid: false}, nil
		}

		return nil, errors.Wrap(err, "failed to find user for token validation")
	}

	dto := toAuthUserDTO(user)

	return &usecase.ValidateTokenResult{
		Valid: true,
		User:  &dto,
	}, nil
}

// ListOAuthProviders returns the enabled provider discovery listing.
func (srv *authService) ListOAuthProviders(_ context.Context) []service.OAuthProviderInfo {
	return srv.registry.ListEnabled()
}

// issueTokenPair generates a new pair, then persists the refresh token hash
// and login timestamp in a single user update.
func (srv *authService) issueTokenPair(ctx context.Context, user *entity.User) (*service.TokenPair, error) {
	pair, err := srv.tokenService.GenerateTokenPair(service.TokenPayload{
		UserID:  user.ID,
		Email:   user.Email,
		Profile: user.Profile,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token pair")
	}

	user.RefreshTokenHash = srv.tokenHasher.HashToken(pair.RefreshToken)
	user.RecordLogin(time.Now())

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token hash")
	}

	return pair, nil
}

// verifierMatchesChallenge checks the PKCE S256 relation between the
// verifier presented at callback time and the challenge stored at start.
func verifierMatchesChallenge(verifier, challenge string) bool {
	sum := sha256.Sum256([]byte(verifier))

	return base64.RawURLEncoding.EncodeToString(sum[:]) == challenge
}

func toAuthUserDTO(user *entity.User) usecase.AuthUserDTO {
	return usecase.AuthUserDTO{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Profile: user.Profile,
	}
}
