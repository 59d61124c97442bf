package http

import (
	"errors"
	"log/slog"
	"net/http"

	"pizzashop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "an unexpected error occurred"

var (
	errBodyRequired = errors.New("request body is required")
	errInvalidBody  = errors.New("invalid request body")
)

// respondError maps an application error to the envelope and status code.
// Validation failures and out-of-range values become 400, missing objects
// 404, and everything else a generic 500 whose underlying cause is logged
// but never sent to the caller.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	default:
		slog.Error("request failed",
			slog.String("path", c.Path()),
			slog.String("method", c.Request().Method),
			slog.Any("error", err),
		)
		return c.JSON(http.StatusInternalServerError, errorResponse(internalErrorMessage))
	}
}

// NewHTTPErrorHandler returns an echo error handler that renders framework
// errors (unknown routes, wrong methods, malformed requests) in the envelope
// instead of echo's default format.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := internalErrorMessage

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(code)
			}
		}

		if code == http.StatusInternalServerError {
			slog.Error("unhandled error",
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)
			message = internalErrorMessage
		}

		if writeErr := c.JSON(code, errorResponse(message)); writeErr != nil {
			slog.Error("failed to write error response", slog.Any("error", writeErr))
		}
	}
}
