package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sleepsound/internal/session"
	"github.com/Skotchmaster/sleepsound/internal/transport"
	"github.com/Skotchmaster/sleepsound/pkg/logging"
)

type CartHTTP struct {
	Session *session.Controller
}

func (h *CartHTTP) cart() transport.CartResponse {
	st := h.Session.State()
	return transport.CartResponse{Items: st.Cart, ItemCount: st.CartCount, Subtotal: st.Subtotal}
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cart())
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_to_cart")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "add_line_error", "invalid body", err)
	}

	line, err := h.Session.AddToCart(ctx, req.ProductID, req.Selection)
	if err != nil {
		return fail(l, "add_line_error", err)
	}

	l.Info("add_line_success", "product_id", req.ProductID, "quantity", line.Quantity)
	return c.JSON(http.StatusCreated, line)
}

// AddCurrent commits the open product at its configured price.
func (h *CartHTTP) AddCurrent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_current")

	line, err := h.Session.AddCurrentToCart(ctx)
	if err != nil {
		return fail(l, "add_line_error", err)
	}

	l.Info("add_line_success", "product_id", line.Product.ID, "price", line.Price)
	return c.JSON(http.StatusCreated, line)
}

func lineIndex(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("index"))
}

func (h *CartHTTP) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_quantity")

	idx, err := lineIndex(c)
	if err != nil {
		return badRequest(l, "update_quantity_error", "invalid line index", err)
	}
	var req transport.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_quantity_error", "invalid body", err)
	}

	line, err := h.Session.UpdateQuantity(ctx, idx, req.Delta)
	if err != nil {
		return fail(l, "update_quantity_error", err)
	}
	return c.JSON(http.StatusOK, line)
}

func (h *CartHTTP) RemoveLine(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_line")

	idx, err := lineIndex(c)
	if err != nil {
		return badRequest(l, "remove_line_error", "invalid line index", err)
	}
	if err := h.Session.RemoveLine(ctx, idx); err != nil {
		return fail(l, "remove_line_error", err)
	}
	return c.JSON(http.StatusOK, h.cart())
}

func (h *CartHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.checkout")

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "place_order_error", "invalid body", err)
	}

	o, err := h.Session.ConfirmOrder(ctx, req.Branch)
	if err != nil {
		return fail(l, "place_order_error", err)
	}

	l.Info("place_order_success", "order_id", o.ID, "total", o.Total)
	return c.JSON(http.StatusCreated, o)
}

func (h *CartHTTP) Track(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.track")

	o, steps, err := h.Session.TrackOrder(c.Param("id"))
	if err != nil {
		return fail(l, "track_order_error", err)
	}
	return c.JSON(http.StatusOK, transport.TrackingResponse{Order: o, Steps: steps})
}
