package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

type stubAuthService struct {
	loginToken string
	loginErr   error
	registerFn func(ports.RegisterInput) (*domain.User, error)

	gotIdentifier string
	gotPassword   string
}

func (s *stubAuthService) Login(_ context.Context, usernameOrEmail, password string) (string, error) {
	s.gotIdentifier = usernameOrEmail
	s.gotPassword = password
	return s.loginToken, s.loginErr
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	if s.registerFn != nil {
		return s.registerFn(input)
	}
	return &domain.User{Username: input.Username, Email: input.Email}, nil
}

func newHandlerContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{loginToken: "signed.jwt.token"}
	h := NewAuthHandler(svc)

	c, rec := newHandlerContext(`{"username_or_email":"jane@example.com","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotIdentifier != "jane@example.com" || svc.gotPassword != "secret" {
		t.Fatalf("credentials not forwarded: %q / %q", svc.gotIdentifier, svc.gotPassword)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"access_token":"signed.jwt.token"`) {
		t.Fatalf("token missing from response: %s", body)
	}
	if !strings.Contains(body, `"token_type":"Bearer"`) {
		t.Fatalf("token type missing from response: %s", body)
	}
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrBadCredentials})

	c, _ := newHandlerContext(`{"username_or_email":"jane","password":"nope"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginToken: "never"})

	for _, body := range []string{
		`{}`,
		`{"username_or_email":"jane"}`,
		`{"password":"secret"}`,
		`not json`,
	} {
		c, _ := newHandlerContext(body)
		err := h.Login(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Register(t *testing.T) {
	var got ports.RegisterInput
	svc := &stubAuthService{registerFn: func(input ports.RegisterInput) (*domain.User, error) {
		got = input
		return &domain.User{Username: input.Username}, nil
	}}
	h := NewAuthHandler(svc)

	c, rec := newHandlerContext(`{"name":"Jane Doe","username":"jane","email":"jane@example.com","password":"secret1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Username != "jane" || got.Email != "jane@example.com" {
		t.Fatalf("input not forwarded: %+v", got)
	}
}

func TestAuthHandler_RegisterConflict(t *testing.T) {
	svc := &stubAuthService{registerFn: func(ports.RegisterInput) (*domain.User, error) {
		return nil, domain.ErrUsernameTaken
	}}
	h := NewAuthHandler(svc)

	c, _ := newHandlerContext(`{"name":"Jane Doe","username":"jane","email":"jane@example.com","password":"secret1"}`)
	err := h.Register(c)
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	for _, body := range []string{
		`{"name":"Jane","username":"jane","email":"not-an-email","password":"secret1"}`,
		`{"name":"Jane","username":"jane","email":"jane@example.com","password":"short"}`,
		`{"name":"Jane","username":"jd","email":"jane@example.com","password":"secret1"}`,
	} {
		c, _ := newHandlerContext(body)
		err := h.Register(c)
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %v", body, err)
		}
	}
}
