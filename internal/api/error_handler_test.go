package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"bad credentials", domain.ErrBadCredentials, http.StatusUnauthorized},
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"post not found", domain.ErrPostNotFound, http.StatusNotFound},
		{"category not found", domain.ErrCategoryNotFound, http.StatusNotFound},
		{"comment not found", domain.ErrCommentNotFound, http.StatusNotFound},
		{"comment mismatch", domain.ErrCommentMismatch, http.StatusBadRequest},
		{"default role missing", domain.ErrDefaultRoleMissing, http.StatusInternalServerError},
		{"wrapped domain error", fmt.Errorf("load post: %w", domain.ErrPostNotFound), http.StatusNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
		{"echo error", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected status %d, got %d", tc.code, rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not the error envelope: %v", err)
			}
			if body["error"] == "" {
				t.Fatalf("error message missing from envelope: %s", rec.Body.String())
			}
		})
	}
}

// Internal failures must never echo their cause back to the client.
func TestHTTPErrorHandler_HidesInternalDetails(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(errors.New("mongo: connection refused at 10.0.0.5"), c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal cause leaked: %q", body["error"])
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusAccepted); err != nil {
		t.Fatalf("commit response: %v", err)
	}
	handler(errors.New("late failure"), c)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("committed response was rewritten: %d", rec.Code)
	}
}
