package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sleepsound/internal/session"
	"github.com/Skotchmaster/sleepsound/internal/transport"
	"github.com/Skotchmaster/sleepsound/pkg/logging"
	"github.com/Skotchmaster/sleepsound/pkg/tokens"
)

type AccountHTTP struct {
	Session *session.Controller
}

func (h *AccountHTTP) State(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Session.State())
}

func (h *AccountHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.register")

	var req transport.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "register_error", "invalid body", err)
	}

	u, err := h.Session.RegisterUser(ctx, req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		return fail(l, "register_error", err)
	}

	l.Info("register_success", "user_id", u.ID)
	return c.JSON(http.StatusCreated, u.Customer())
}

func (h *AccountHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.login")

	var req transport.LoginUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "login_error", "invalid body", err)
	}

	u, err := h.Session.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		return fail(l, "login_error", err)
	}

	l.Info("login_success", "user_id", u.ID)
	return c.JSON(http.StatusOK, u.Customer())
}

// Logout ends the shopper and admin sessions and drops the admin cookie.
func (h *AccountHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.logout")

	if err := h.Session.Logout(ctx); err != nil {
		return fail(l, "logout_error", err)
	}
	c.SetCookie(tokens.DeleteCookie(tokens.AccessCookie, "/"))
	return c.NoContent(http.StatusNoContent)
}
