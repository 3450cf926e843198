package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/api/metrics"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// principalKey is the echo context key the authenticated principal is stored
// under for downstream authorization checks.
const principalKey = "auth.principal"

// Authenticate extracts and verifies the bearer token and, on success,
// attaches the principal to the request context. It never rejects by itself:
// a missing or bad token simply leaves the request anonymous, and the
// authorization gate decides whether the target route needs more. Public
// reads therefore keep working even with a garbage Authorization header.
func Authenticate(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c.Request().Header.Get("Authorization"))
			if raw == "" {
				return next(c)
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyResult(err)).Inc()
				return next(c)
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(principalKey, domain.Principal{
				Username: claims.Subject,
				Roles:    claims.Roles,
			})
			return next(c)
		}
	}
}

// CurrentPrincipal returns the principal attached by Authenticate, if any.
func CurrentPrincipal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

// bearerToken pulls the token out of an "Authorization: Bearer <t>" header.
// Returns "" for an absent header or any other scheme.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func verifyResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "invalid_signature"
	default:
		return "malformed"
	}
}
