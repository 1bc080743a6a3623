package handler

import (
	"log/slog"
	"net/http"

	"gather/internal/delivery/http/response"
	"gather/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InscriptionHandler holds dependencies for inscription handlers.
type InscriptionHandler struct {
	uc     usecase.InscriptionUsecase
	logger *slog.Logger
}

// NewInscriptionHandler is the constructor for InscriptionHandler, injected by Fx.
func NewInscriptionHandler(uc usecase.InscriptionUsecase, logger *slog.Logger) *InscriptionHandler {
	return &InscriptionHandler{uc: uc, logger: logger}
}

// Create handles the inscription creation request.
func (h *InscriptionHandler) Create(c echo.Context) error {
	var params usecase.CreateInscriptionParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inscription input")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	inscription, err := h.uc.Create(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, inscription, "Inscription created successfully")
}

// GetByID handles the single inscription lookup request.
func (h *InscriptionHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	inscription, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inscription, "Inscription retrieved successfully")
}

// List handles the paginated inscription listing request.
func (h *InscriptionHandler) List(c echo.Context) error {
	page, err := bindPageParams(c)
	if err != nil {
		return err
	}

	result, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Inscriptions listed successfully")
}

// UpdateStatus handles the inscription status transition request.
func (h *InscriptionHandler) UpdateStatus(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var params usecase.UpdateInscriptionStatusParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	inscription, err := h.uc.UpdateStatus(c.Request().Context(), id, params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inscription, "Inscription updated successfully")
}

// Delete handles the inscription deletion request.
func (h *InscriptionHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Inscription deleted successfully")
}

// CheckInQR streams the PNG check-in QR code for an inscription.
func (h *InscriptionHandler) CheckInQR(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.uc.CheckInQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
