package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/domain"
)

func newGateContext(principal *domain.Principal) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(principalKey, *principal)
	}
	return c
}

func TestRequireAuth(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	err := RequireAuth()(ok)(newGateContext(nil))
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("anonymous: expected ErrUnauthenticated, got %v", err)
	}

	err = RequireAuth()(ok)(newGateContext(&domain.Principal{Username: "jane", Roles: []string{domain.RoleUser}}))
	if err != nil {
		t.Fatalf("authenticated: unexpected error %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	gate := RequireRole(domain.RoleAdmin)

	err := gate(ok)(newGateContext(nil))
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("anonymous: expected ErrUnauthenticated, got %v", err)
	}

	err = gate(ok)(newGateContext(&domain.Principal{Username: "jane", Roles: []string{domain.RoleUser}}))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("missing role: expected ErrForbidden, got %v", err)
	}

	err = gate(ok)(newGateContext(&domain.Principal{Username: "root", Roles: []string{domain.RoleUser, domain.RoleAdmin}}))
	if err != nil {
		t.Fatalf("admin: unexpected error %v", err)
	}
}
