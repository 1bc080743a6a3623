package handler

import (
	"log/slog"
	"net/http"

	"gather/internal/delivery/http/response"
	"gather/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CertificateHandler holds dependencies for certificate eligibility
// handlers.
type CertificateHandler struct {
	uc     usecase.CertificateUsecase
	logger *slog.Logger
}

// NewCertificateHandler is the constructor for CertificateHandler, injected
// by Fx.
func NewCertificateHandler(uc usecase.CertificateUsecase, logger *slog.Logger) *CertificateHandler {
	return &CertificateHandler{uc: uc, logger: logger}
}

// EvaluateEligibility handles the single-user eligibility check.
func (h *CertificateHandler) EvaluateEligibility(c echo.Context) error {
	var params usecase.EvaluateEligibilityParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid eligibility input")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.EvaluateEligibility(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Eligibility evaluated successfully")
}

// EvaluateBatch handles the batch eligibility check.
func (h *CertificateHandler) EvaluateBatch(c echo.Context) error {
	var params usecase.EvaluateBatchParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid batch eligibility input")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.EvaluateBatch(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Batch eligibility evaluated successfully")
}
