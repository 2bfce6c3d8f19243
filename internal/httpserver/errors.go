package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sleepsound/internal/admin"
	"github.com/Skotchmaster/sleepsound/internal/cart"
	"github.com/Skotchmaster/sleepsound/internal/catalog"
	"github.com/Skotchmaster/sleepsound/internal/order"
	"github.com/Skotchmaster/sleepsound/internal/session"
	"github.com/Skotchmaster/sleepsound/internal/users"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, session.ErrValidation),
		errors.Is(err, cart.ErrValidation),
		errors.Is(err, order.ErrValidation),
		errors.Is(err, catalog.ErrValidation),
		errors.Is(err, admin.ErrValidation),
		errors.Is(err, users.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, order.ErrNotFound),
		errors.Is(err, admin.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, users.ErrInvalidCredentials),
		errors.Is(err, admin.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, admin.ErrPending),
		errors.Is(err, admin.ErrRejected),
		errors.Is(err, admin.ErrMainAdmin),
		errors.Is(err, admin.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// fail logs a handler error and converts it to an HTTP error. Internal
// errors are not echoed to the client.
func fail(l *slog.Logger, event string, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		l.Error(event, "status", status, "reason", "internal error", "error", err)
		return echo.NewHTTPError(status, "internal error")
	}
	l.Warn(event, "status", status, "reason", http.StatusText(status), "error", err)
	return echo.NewHTTPError(status, err.Error())
}

func badRequest(l *slog.Logger, event, reason string, err error) error {
	l.Warn(event, "status", http.StatusBadRequest, "reason", reason, "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, reason)
}
