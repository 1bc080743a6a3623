package impl

import (
	"context"
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

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new user with a hashed password. The email must not be
// taken by any existing account.
func (srv *userService) Create(ctx context.Context, params usecase.CreateUserParams) (*usecase.UserDTO, error) {
	srv.log(ctx).Debug("Creating user", slog.String("email", params.Email))

	_, err := srv.userRepo.FindByEmail(ctx, params.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	user, err := entity.NewUser(params.Name, params.Email, params.Profile)
	if err != nil {
		return nil, errors.Wrap(err, "user validation failed")
	}

	hash, err := srv.hasher.Hash(params.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Any("userID", user.ID))

	return toUserDTO(user), nil
}

// GetByID fetches a single user.
func (srv *userService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.UserDTO, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDTO(user), nil
}

// List returns one page of users.
func (srv *userService) List(ctx context.Context, page usecase.PageParams) (*usecase.UserListResult, error) {
	page = page.Normalize()

	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	items := make([]usecase.UserDTO, 0, page.Limit)
	for _, user := range usecase.Paginate(users, page) {
		items = append(items, *toUserDTO(user))
	}

	return &usecase.UserListResult{
		Items: items,
		Meta:  usecase.NewPageMeta(page, len(users)),
	}, nil
}

// Update applies the non-nil fields to an existing user.
func (srv *userService) Update(ctx context.Context, id uuid.UUID, params usecase.UpdateUserParams) (*usecase.UserDTO, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user for update")
	}

	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Email != nil && *params.Email != user.Email {
		if _, err := srv.userRepo.FindByEmail(ctx, *params.Email); err == nil {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check email uniqueness")
		}
		user.Email = *params.Email
	}
	if params.Profile != nil {
		user.Profile = *params.Profile
	}
	if params.Password != nil {
		hash, err := srv.hasher.Hash(*params.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hash
	}

	if err := user.Validate(); err != nil {
		return nil, errors.Wrap(err, "user validation failed")
	}
	user.Touch()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Info("User updated", slog.Any("userID", user.ID))

	return toUserDTO(user), nil
}

// Delete removes a user.
func (srv *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

func toUserDTO(user *entity.User) *usecase.UserDTO {
	dto := &usecase.UserDTO{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Profile:       user.Profile,
		OAuthProvider: user.OAuthProvider,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     user.UpdatedAt.Format(time.RFC3339),
	}

	if user.LastLoginAt != nil {
		lastLogin := user.LastLoginAt.Format(time.RFC3339)
		dto.LastLoginAt = &lastLogin
	}

	return dto
}
