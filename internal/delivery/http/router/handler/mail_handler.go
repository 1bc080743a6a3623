package handler

import (
	"log/slog"
	"net/http"

	"gather/internal/delivery/http/response"
	"gather/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MailHandler holds dependencies for the email sending handler.
type MailHandler struct {
	uc     usecase.MailUsecase
	logger *slog.Logger
}

// NewMailHandler is the constructor for MailHandler, injected by Fx.
func NewMailHandler(uc usecase.MailUsecase, logger *slog.Logger) *MailHandler {
	return &MailHandler{uc: uc, logger: logger}
}

// Send handles the email sending request.
func (h *MailHandler) Send(c echo.Context) error {
	var params usecase.SendMailParams
	if err := c.Bind(&params); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&params); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Send(c.Request().Context(), params); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email sent successfully")
}
