package handler

import (
	"log/slog"
	"net/http"

	"gather/internal/delivery/http/response"
	"gather/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for event management handlers.
type EventHandler struct {
	uc     usecase.EventUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{uc: uc, logger: logger}
}

// Create handles the event creation request.
func (h *EventHandler) Create(c echo.Context) error {
	var params usecase.CreateEventParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	event, err := h.uc.Create(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created successfully")
}

// GetByID handles the single event lookup request.
func (h *EventHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	event, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Event retrieved successfully")
}

// List handles the paginated event listing request.
func (h *EventHandler) List(c echo.Context) error {
	page, err := bindPageParams(c)
	if err != nil {
		return err
	}

	result, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Events listed successfully")
}

// Update handles the partial event update request.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var params usecase.UpdateEventParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.uc.Update(c.Request().Context(), id, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Event updated successfully")
}

// Delete handles the event deletion request.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted successfully")
}
