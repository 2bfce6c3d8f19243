package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/sleepsound/pkg/tokens"
)

const (
	AdminIDKey = "admin_id"
	RoleKey    = "role"
)

var adminRoles = map[string]bool{"super": true, "admin": true}

// RequireAdmin accepts the access token from the accessToken cookie or an
// Authorization: Bearer header. Account status is checked downstream.
func RequireAdmin(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearer(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
			}

			claims, err := tokens.AccessClaimsFromToken(raw, secret)
			if err != nil || claims == nil {
				c.SetCookie(tokens.DeleteCookie(tokens.AccessCookie, "/"))
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}
			if !adminRoles[claims.Role] {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			id, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}

			c.Set(AdminIDKey, id)
			c.Set(RoleKey, claims.Role)
			return next(c)
		}
	}
}

func bearer(c echo.Context) string {
	if cookie, err := c.Cookie(tokens.AccessCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

// AdminID reads the caller set by RequireAdmin.
func AdminID(c echo.Context) (int64, bool) {
	id, ok := c.Get(AdminIDKey).(int64)
	return id, ok
}
