package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sleepsound/internal/catalog"
	"github.com/Skotchmaster/sleepsound/internal/models"
	"github.com/Skotchmaster/sleepsound/internal/pricing"
	"github.com/Skotchmaster/sleepsound/internal/search"
	"github.com/Skotchmaster/sleepsound/internal/session"
	"github.com/Skotchmaster/sleepsound/internal/transport"
	"github.com/Skotchmaster/sleepsound/pkg/logging"
	"github.com/Skotchmaster/sleepsound/pkg/pagination"
)

type CatalogHTTP struct {
	Session  *session.Controller
	Searcher search.Searcher
}

func queryInt(c echo.Context, name string, def int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return def
	}
	return v
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_products")

	hits := h.Session.Catalog().Filter(catalog.Query{
		Search:      c.QueryParam("q"),
		Category:    c.QueryParam("category"),
		SubCategory: c.QueryParam("sub"),
	})

	page := max(queryInt(c, "page", 1), 1)
	offset, limit := pagination.Calculate(page, queryInt(c, "size", pagination.DefaultPageSize))

	l.Info("list_products_success", "total", len(hits))
	return c.JSON(http.StatusOK, transport.ProductListResponse{
		Items: pagination.Slice(hits, offset, limit),
		Total: len(hits),
		Page:  page,
		Size:  limit,
	})
}

func (h *CatalogHTTP) productID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	id, ok := h.productID(c)
	if !ok {
		return badRequest(l, "get_product_error", "invalid product id", nil)
	}
	p, err := h.Session.Product(id)
	if err != nil {
		return fail(l, "get_product_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"product":          p,
		"discount_percent": catalog.DiscountPercent(p),
	})
}

// SelectProduct opens the product detail view with default options.
func (h *CatalogHTTP) SelectProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.select_product")

	id, ok := h.productID(c)
	if !ok {
		return badRequest(l, "select_product_error", "invalid product id", nil)
	}
	if _, err := h.Session.SelectProduct(ctx, id); err != nil {
		return fail(l, "select_product_error", err)
	}
	st := h.Session.State()
	return c.JSON(http.StatusOK, echo.Map{"product": st.Product, "detail": st.Detail})
}

// UpdateDetail changes one option of the open product. Custom length and
// width are repriced after a quiet period, so they answer 202.
func (h *CatalogHTTP) UpdateDetail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.update_detail")

	var req transport.DetailRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_detail_error", "invalid body", err)
	}

	if req.Field == session.FieldCustomLength || req.Field == session.FieldCustomWidth {
		if err := h.Session.UpdateCustomSize(ctx, req.Field, req.Value); err != nil {
			return fail(l, "update_detail_error", err)
		}
		return c.JSON(http.StatusAccepted, h.Session.State().Detail)
	}

	d, err := h.Session.UpdateDetail(ctx, req.Field, req.Value)
	if err != nil {
		return fail(l, "update_detail_error", err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *CatalogHTTP) Quote(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.quote")

	id, ok := h.productID(c)
	if !ok {
		return badRequest(l, "quote_error", "invalid product id", nil)
	}
	req := transport.QuoteRequest{Configuration: pricing.DefaultConfiguration()}
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "quote_error", "invalid body", err)
	}

	d, err := h.Session.Quote(id, req.Configuration)
	if err != nil {
		return fail(l, "quote_error", err)
	}
	return c.JSON(http.StatusOK, d)
}

// Search answers from the search backend and records the query on the
// session, which settles after the search delay.
func (h *CatalogHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search")

	q := strings.TrimSpace(c.QueryParam("q"))
	h.Session.Search(ctx, q)
	if q == "" {
		return c.JSON(http.StatusOK, transport.SearchResponse{Items: []models.Product{}})
	}

	offset, limit := pagination.Calculate(queryInt(c, "page", 1), queryInt(c, "size", pagination.DefaultPageSize))
	total, ids, err := h.Searcher.Search(ctx, q, offset, limit)
	if err != nil {
		return fail(l, "search_error", err)
	}

	l.Info("search_success", "total", total)
	return c.JSON(http.StatusOK, transport.SearchResponse{
		Query: q,
		Items: h.Session.Catalog().ByIDs(ids),
		Total: total,
	})
}

func (h *CatalogHTTP) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Navigation)
}

func (h *CatalogHTTP) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"sizes":       pricing.Sizes,
		"units":       pricing.Units,
		"dimensions":  pricing.PresetDimensions,
		"thicknesses": pricing.Thicknesses,
		"branches":    h.Session.Branches(),
	})
}
