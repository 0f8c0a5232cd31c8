package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

type stubSessionService struct {
	loginFn   func(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error)
	logoutFn  func(ctx context.Context) error
	currentFn func(ctx context.Context) (*domain.Session, error)
}

func (s *stubSessionService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	return s.loginFn(ctx, input)
}

func (s *stubSessionService) Logout(ctx context.Context) error {
	return s.logoutFn(ctx)
}

func (s *stubSessionService) Current(ctx context.Context) (*domain.Session, error) {
	return s.currentFn(ctx)
}

func (s *stubSessionService) Invalidate(context.Context, string) error { return nil }

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		loginFn: func(_ context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
			if input.Username != "amina" || input.Password != "secret" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.LoginResult{
				Token:    "tok-123",
				Redirect: "/admin/dashboard",
				Session:  domain.Session{Token: "tok-123", Username: "amina", Role: domain.RoleAdmin},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"amina","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok-123" || resp["redirect"] != "/admin/dashboard" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["username"] != "amina" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		loginFn: func(context.Context, ports.LoginInput) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_ServiceErrorPropagates(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		loginFn: func(context.Context, ports.LoginInput) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"amina","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()
	cleared := false
	stub := &stubSessionService{
		logoutFn: func(context.Context) error {
			cleared = true
			return nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !cleared {
		t.Fatalf("expected logout to clear the session")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthHandler_Session_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		currentFn: func(context.Context) (*domain.Session, error) {
			return nil, domain.ErrSessionNotFound
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Session(c); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAuthHandler_Session_Active(t *testing.T) {
	e := echo.New()
	stub := &stubSessionService{
		currentFn: func(context.Context) (*domain.Session, error) {
			return &domain.Session{Token: "tok", Username: "bo", Role: domain.RoleManager}, nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "bo" || resp["role"] != "manager" {
		t.Fatalf("unexpected session payload: %+v", resp)
	}
}
