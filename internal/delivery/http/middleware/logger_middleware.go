package middleware

import (
	"log/slog"

	deliverycontext "gather/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestContextMiddleware attaches a request ID and a request-scoped logger
// to every request context, so lower layers log with the same correlation ID.
type RequestContextMiddleware struct {
	logger *slog.Logger
}

// NewRequestContextMiddleware creates a new request context middleware.
func NewRequestContextMiddleware(logger *slog.Logger) *RequestContextMiddleware {
	return &RequestContextMiddleware{logger: logger}
}

// Handle resolves or generates the request ID, echoes it back in the
// response header and scopes the logger to it.
func (m *RequestContextMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("requestID", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
