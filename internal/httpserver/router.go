package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "github.com/Skotchmaster/sleepsound/pkg/middleware/auth"
	"github.com/Skotchmaster/sleepsound/pkg/middleware/ratelimit"
)

type Deps struct {
	CatalogHandler *CatalogHTTP
	CartHandler    *CartHTTP
	AccountHandler *AccountHTTP
	AdminHandler   *AdminHTTP
	JWTSecret      []byte
	LoginLimiter   *ratelimit.Limiter
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	limit := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if d.LoginLimiter != nil {
		limit = d.LoginLimiter.Middleware()
	}

	api := e.Group("/api/v1")

	api.GET("/state", d.AccountHandler.State)
	api.GET("/categories", d.CatalogHandler.Categories)
	api.GET("/options", d.CatalogHandler.Options)

	api.GET("/products", d.CatalogHandler.ListProducts)
	api.GET("/products/:id", d.CatalogHandler.GetProduct)
	api.POST("/products/:id/select", d.CatalogHandler.SelectProduct)
	api.POST("/products/:id/quote", d.CatalogHandler.Quote)
	api.PATCH("/detail", d.CatalogHandler.UpdateDetail)
	api.GET("/search", d.CatalogHandler.Search)

	api.GET("/cart", d.CartHandler.GetCart)
	api.POST("/cart", d.CartHandler.AddToCart)
	api.POST("/cart/current", d.CartHandler.AddCurrent)
	api.PATCH("/cart/:index", d.CartHandler.UpdateQuantity)
	api.DELETE("/cart/:index", d.CartHandler.RemoveLine)
	api.POST("/checkout", d.CartHandler.Checkout)
	api.GET("/orders/:id/tracking", d.CartHandler.Track)

	api.POST("/users/register", d.AccountHandler.Register)
	api.POST("/users/login", d.AccountHandler.Login, limit)
	api.POST("/logout", d.AccountHandler.Logout)

	api.POST("/admin/login", d.AdminHandler.Login, limit)
	api.POST("/admin/register", d.AdminHandler.Register)

	adm := api.Group("/admin")
	adm.Use(middleware.RequireAdmin(d.JWTSecret))

	adm.GET("/orders", d.AdminHandler.Orders)
	adm.PATCH("/orders/:id", d.AdminHandler.UpdateOrderStatus)
	adm.PATCH("/products/:id/price", d.AdminHandler.SetPrice)
	adm.GET("/stats", d.AdminHandler.Stats)
	adm.GET("/accounts", d.AdminHandler.Accounts)
	adm.POST("/accounts/:id/approve", d.AdminHandler.Approve)
	adm.POST("/accounts/:id/reject", d.AdminHandler.Reject)
	adm.DELETE("/accounts/:id", d.AdminHandler.Remove)
}
