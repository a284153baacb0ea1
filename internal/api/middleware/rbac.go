package middleware

import (
	"slices"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/pkg/logger"
)

// RBAC admits authenticated users whose role is one of roles. It reads the
// user stored by Auth, so it must run after it; a request without one is
// answered with 401 rather than 403. Denials are logged with the user id.
func RBAC(log zerolog.Logger, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextUser).(*domain.User)
			if !ok || user == nil {
				return ErrMissingBearer
			}
			if !slices.Contains(roles, user.Role) {
				l := logger.For(c.Request().Context(), log)
				l.Warn().
					Int64("user_id", user.ID).
					Str("role", user.Role).
					Str("route", c.Path()).
					Msg("access denied")
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
