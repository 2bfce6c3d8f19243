package httpserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sleepsound/internal/models"
	"github.com/Skotchmaster/sleepsound/internal/session"
	"github.com/Skotchmaster/sleepsound/internal/transport"
	"github.com/Skotchmaster/sleepsound/pkg/logging"
	middleware "github.com/Skotchmaster/sleepsound/pkg/middleware/auth"
	"github.com/Skotchmaster/sleepsound/pkg/tokens"
)

type AdminHTTP struct {
	Session   *session.Controller
	JWTSecret []byte
	TokenTTL  time.Duration
	Now       func() time.Time
}

func (h *AdminHTTP) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *AdminHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.login")

	var req transport.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "admin_login_error", "invalid body", err)
	}

	a, err := h.Session.AdminLogin(ctx, req.Username, req.Password)
	if err != nil {
		return fail(l, "admin_login_error", err)
	}

	exp := h.now().Add(h.TokenTTL)
	token, err := tokens.IssueAccessToken(h.JWTSecret, string(a.Role), strconv.FormatInt(a.ID, 10), exp)
	if err != nil {
		l.Error("admin_login_error", "status", 500, "reason", "token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	c.SetCookie(tokens.CreateCookie(tokens.AccessCookie, token, "/", exp))

	l.Info("admin_login_success", "admin_id", a.ID)
	return c.JSON(http.StatusOK, transport.AdminLoginResponse{
		Account:   transport.NewAdminView(a),
		ExpiresAt: exp.Unix(),
	})
}

func (h *AdminHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.register")

	var req transport.AdminRegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "admin_register_error", "invalid body", err)
	}

	a, err := h.Session.AdminRegister(ctx, req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		return fail(l, "admin_register_error", err)
	}

	l.Info("admin_register_success", "admin_id", a.ID)
	return c.JSON(http.StatusCreated, transport.NewAdminView(a))
}

func caller(c echo.Context) int64 {
	id, _ := middleware.AdminID(c)
	return id
}

func (h *AdminHTTP) Orders(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "admin.orders")

	orders, err := h.Session.AdminOrders(caller(c))
	if err != nil {
		return fail(l, "admin_orders_error", err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *AdminHTTP) Stats(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "admin.stats")

	stats, err := h.Session.AdminStats(caller(c))
	if err != nil {
		return fail(l, "admin_stats_error", err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHTTP) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.update_order_status")

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_status_error", "invalid body", err)
	}

	o, err := h.Session.UpdateOrderStatus(ctx, caller(c), c.Param("id"), req.Status)
	if err != nil {
		return fail(l, "update_status_error", err)
	}

	l.Info("update_status_success", "order_id", o.ID, "status", o.Status)
	return c.JSON(http.StatusOK, o)
}

func (h *AdminHTTP) SetPrice(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.set_price")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest(l, "set_price_error", "invalid product id", err)
	}
	var req transport.SetPriceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "set_price_error", "invalid body", err)
	}

	p, err := h.Session.SetPrice(ctx, caller(c), id, req.Price)
	if err != nil {
		return fail(l, "set_price_error", err)
	}

	l.Info("set_price_success", "product_id", p.ID, "price", p.Price)
	return c.JSON(http.StatusOK, p)
}

func (h *AdminHTTP) Accounts(c echo.Context) error {
	l := logging.FromContext(c.Request().Context()).With("handler", "admin.accounts")

	accounts, err := h.Session.AdminAccounts(caller(c))
	if err != nil {
		return fail(l, "admin_accounts_error", err)
	}
	var pending []models.AdminAccount
	for _, a := range accounts {
		if a.Status == models.AdminPending {
			pending = append(pending, a)
		}
	}
	return c.JSON(http.StatusOK, transport.AdminAccountsResponse{
		Accounts: transport.NewAdminViews(accounts),
		Pending:  transport.NewAdminViews(pending),
	})
}

type manageFunc func(ctx context.Context, callerID, id int64) (models.AdminAccount, error)

func (h *AdminHTTP) manage(c echo.Context, event string, fn manageFunc) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin."+event)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(l, event+"_error", "invalid account id", err)
	}

	a, err := fn(ctx, caller(c), id)
	if err != nil {
		return fail(l, event+"_error", err)
	}

	l.Info(event+"_success", "admin_id", a.ID)
	return c.JSON(http.StatusOK, transport.NewAdminView(a))
}

func (h *AdminHTTP) Approve(c echo.Context) error {
	return h.manage(c, "approve_admin", h.Session.ApproveAdmin)
}

func (h *AdminHTTP) Reject(c echo.Context) error {
	return h.manage(c, "reject_admin", h.Session.RejectAdmin)
}

func (h *AdminHTTP) Remove(c echo.Context) error {
	return h.manage(c, "remove_admin", h.Session.RemoveAdmin)
}
