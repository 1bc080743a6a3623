package handler

import (
	"log/slog"
	"net/http"

	"gather/internal/delivery/http/response"
	"gather/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PresenceHandler holds dependencies for presence handlers.
type PresenceHandler struct {
	uc     usecase.PresenceUsecase
	logger *slog.Logger
}

// NewPresenceHandler is the constructor for PresenceHandler, injected by Fx.
func NewPresenceHandler(uc usecase.PresenceUsecase, logger *slog.Logger) *PresenceHandler {
	return &PresenceHandler{uc: uc, logger: logger}
}

// Register handles the check-in request.
func (h *PresenceHandler) Register(c echo.Context) error {
	var params usecase.RegisterPresenceParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid presence input")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	presence, err := h.uc.Register(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presence, "Presence registered successfully")
}

// GetByID handles the single presence lookup request.
func (h *PresenceHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	presence, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presence, "Presence retrieved successfully")
}

// List handles the paginated presence listing request.
func (h *PresenceHandler) List(c echo.Context) error {
	page, err := bindPageParams(c)
	if err != nil {
		return err
	}

	result, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Presences listed successfully")
}

// Delete handles the presence deletion request.
func (h *PresenceHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Presence deleted successfully")
}
