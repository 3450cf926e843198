package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// RequireAuth rejects requests that carry no authenticated principal.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CurrentPrincipal(c); !ok {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// RequireRole enforces role-based access: no principal yields 401, a
// principal lacking the role yields 403. Pure per-request predicate; it holds
// no state between calls.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := CurrentPrincipal(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if !principal.HasRole(role) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
