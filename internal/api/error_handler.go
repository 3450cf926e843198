package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// errorResponse is the single JSON envelope every failed request renders.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler translates errors bubbling out of handlers into HTTP
// responses. Known domain sentinels get deterministic status codes; anything
// unexpected is logged with its cause and answered with a generic 500 so
// internal details never reach the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Bind failures and router 404s arrive as echo.HTTPError already.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrBadCredentials):
		return http.StatusUnauthorized, domain.ErrBadCredentials.Error()
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, domain.ErrUsernameTaken.Error()
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, domain.ErrEmailTaken.Error()
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, "post not found"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found"
	case errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound, "comment not found"
	case errors.Is(err, domain.ErrCommentMismatch):
		return http.StatusBadRequest, domain.ErrCommentMismatch.Error()
	case errors.Is(err, domain.ErrDefaultRoleMissing):
		// Broken startup seeding; deployment-blocking, not user-correctable.
		log.Error().Err(err).Msg("default role missing")
		return http.StatusInternalServerError, "internal server error"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")
	return http.StatusInternalServerError, "internal server error"
}
