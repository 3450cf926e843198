package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/service"
)

func newAuthContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := service.NewJWTTokenService("secret", time.Hour)
	token, err := tokens.Issue("jane", []string{domain.RoleAdmin}, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	c, rec := newAuthContext(t, "Bearer "+token)

	called := false
	handler := Authenticate(tokens)(func(c echo.Context) error {
		called = true
		principal, ok := CurrentPrincipal(c)
		if !ok {
			t.Fatalf("principal not attached")
		}
		if principal.Username != "jane" {
			t.Fatalf("unexpected subject: %s", principal.Username)
		}
		if !principal.HasRole(domain.RoleAdmin) {
			t.Fatalf("roles not carried over: %v", principal.Roles)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_MissingHeaderPassesThroughAnonymous(t *testing.T) {
	tokens := service.NewJWTTokenService("secret", time.Hour)
	c, _ := newAuthContext(t, "")

	called := false
	handler := Authenticate(tokens)(func(c echo.Context) error {
		called = true
		if _, ok := CurrentPrincipal(c); ok {
			t.Fatalf("no principal expected for anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("anonymous request must still reach the handler")
	}
}

// A bad token must not block the request either: public endpoints stay
// reachable and the authorization gate answers for protected ones.
func TestAuthenticate_BadTokenPassesThroughAnonymous(t *testing.T) {
	tokens := service.NewJWTTokenService("secret", time.Hour)

	expired, err := service.NewJWTTokenService("secret", time.Minute).
		Issue("jane", nil, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	foreign, err := service.NewJWTTokenService("other-secret", time.Hour).
		Issue("jane", nil, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	for _, header := range []string{
		"Bearer garbage",
		"Bearer " + expired,
		"Bearer " + foreign,
		"Token abc", // unknown scheme
	} {
		c, _ := newAuthContext(t, header)

		called := false
		handler := Authenticate(tokens)(func(c echo.Context) error {
			called = true
			if _, ok := CurrentPrincipal(c); ok {
				t.Fatalf("header %q: no principal expected", header)
			}
			return c.NoContent(http.StatusOK)
		})

		if err := handler(c); err != nil {
			t.Fatalf("header %q: handler error: %v", header, err)
		}
		if !called {
			t.Fatalf("header %q: request must pass through", header)
		}
	}
}
