package handler

import (
	"log/slog"
	"net/http"

	"gather/internal/delivery/http/response"
	"gather/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SpeakerHandler holds dependencies for speaker management handlers.
type SpeakerHandler struct {
	uc     usecase.SpeakerUsecase
	logger *slog.Logger
}

// NewSpeakerHandler is the constructor for SpeakerHandler, injected by Fx.
func NewSpeakerHandler(uc usecase.SpeakerUsecase, logger *slog.Logger) *SpeakerHandler {
	return &SpeakerHandler{uc: uc, logger: logger}
}

// Create handles the speaker creation request.
func (h *SpeakerHandler) Create(c echo.Context) error {
	var params usecase.CreateSpeakerParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid speaker input")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	speaker, err := h.uc.Create(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, speaker, "Speaker created successfully")
}

// GetByID handles the single speaker lookup request.
func (h *SpeakerHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	speaker, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, speaker, "Speaker retrieved successfully")
}

// List handles the paginated speaker listing request.
func (h *SpeakerHandler) List(c echo.Context) error {
	page, err := bindPageParams(c)
	if err != nil {
		return err
	}

	result, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Speakers listed successfully")
}

// Update handles the partial speaker update request.
func (h *SpeakerHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var params usecase.UpdateSpeakerParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid speaker input")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	speaker, err := h.uc.Update(c.Request().Context(), id, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, speaker, "Speaker updated successfully")
}

// Delete handles the speaker deletion request.
func (h *SpeakerHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Speaker deleted successfully")
}
