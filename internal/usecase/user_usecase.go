package usecase

import (
	"context"

	"github.com/google/uuid"

	"gather/internal/domain/entity"
)

// CreateUserParams register a new user.
type CreateUserParams struct {
	Name     string         `json:"name" validate:"required"`
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required,min=8"`
	Profile  entity.Profile `json:"profile"`
}

// UpdateUserParams modify an existing user. Nil fields are left unchanged.
type UpdateUserParams struct {
	Name     *string         `json:"name"`
	Email    *string         `json:"email" validate:"omitempty,email"`
	Password *string         `json:"password" validate:"omitempty,min=8"`
	Profile  *entity.Profile `json:"profile"`
}

// UserDTO is the outward user shape. The password hash never leaves the
// usecase layer.
type UserDTO struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Profile       entity.Profile `json:"profile"`
	OAuthProvider string         `json:"oauthProvider,omitempty"`
	LastLoginAt   *string        `json:"lastLoginAt,omitempty"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
}

// UserListResult is one page of users.
type UserListResult struct {
	Items []UserDTO `json:"items"`
	Meta  PageMeta  `json:"meta"`
}

// UserUsecase manages user accounts.
type UserUsecase interface {
	Create(ctx context.Context, params CreateUserParams) (*UserDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	List(ctx context.Context, page PageParams) (*UserListResult, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateUserParams) (*UserDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
