package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

// Session resolves the stored session and injects its identity into the
// request context. The presented bearer token must match the stored
// session's token: a token that survived a logout or an eviction is stale
// and gets rejected.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			sess, err := sessions.Current(c.Request().Context())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
			}
			if sess.Token != parts[1] {
				return echo.NewHTTPError(http.StatusUnauthorized, "session token mismatch")
			}

			c.Set("username", sess.Username)
			c.Set("role", string(sess.Role))
			c.Set("user_id", sess.UserID)

			return next(c)
		}
	}
}
