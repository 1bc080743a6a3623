package handler

import (
	"log/slog"
	"net/http"

	"gather/internal/delivery/http/response"
	"gather/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user management handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

// Create handles the user creation request.
func (h *UserHandler) Create(c echo.Context) error {
	var params usecase.CreateUserParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Create(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// GetByID handles the single user lookup request.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// List handles the paginated user listing request.
func (h *UserHandler) List(c echo.Context) error {
	page, err := bindPageParams(c)
	if err != nil {
		return err
	}

	result, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Users listed successfully")
}

// Update handles the partial user update request.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var params usecase.UpdateUserParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Update(c.Request().Context(), id, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// Delete handles the user deletion request.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// parseIDParam parses the :id path parameter as a UUID.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_ID", "Invalid id format")
	}

	return id, nil
}

// bindPageParams binds page/limit query parameters.
func bindPageParams(c echo.Context) (usecase.PageParams, error) {
	var page usecase.PageParams
	if err := c.Bind(&page); err != nil {
		return page, response.BindingError(c, "INVALID_INPUT", "Invalid pagination input")
	}

	return page, nil
}
