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
	"github.com/rs/zerolog"

	"github.com/homefinder/realtor-api/internal/api/middleware"
	"github.com/homefinder/realtor-api/internal/core/domain"
	"github.com/homefinder/realtor-api/internal/core/ports"
)

type stubAuthService struct {
	signupFn     func(ctx context.Context, in ports.SignupInput) (string, error)
	signinFn     func(ctx context.Context, email, password string) (string, error)
	productKeyFn func(email string, role domain.Role) (string, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (string, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Signin(ctx context.Context, email, password string) (string, error) {
	return s.signinFn(ctx, email, password)
}

func (s *stubAuthService) ProductKey(email string, role domain.Role) (string, error) {
	return s.productKeyFn(email, role)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d (%v)", code, he.Code, he.Message)
	}
}

const validSignup = `{"name":"Rita","phone":"+56987654321","email":"rita@example.com","password":"secret","user_type":"REALTOR","product_key":"pk"}`

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		signupFn: func(_ context.Context, in ports.SignupInput) (string, error) {
			if in.Role != domain.RoleRealtor || in.ProductKey != "pk" || in.Email != "rita@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return "signed.token.value", nil
		},
	}
	c, rec := jsonContext(e, http.MethodPost, "/auth/signup", validSignup)

	if err := NewAuthHandler(stub, zerolog.Nop()).Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "signed.token.value" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
}

func TestAuthHandler_Signup_Validation(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(context.Context, ports.SignupInput) (string, error) {
			t.Fatalf("service must not be called on invalid input")
			return "", nil
		},
	}

	bodies := map[string]string{
		"bad phone":      `{"name":"Rita","phone":"12345","email":"rita@example.com","password":"secret","user_type":"BUYER"}`,
		"short password": `{"name":"Rita","phone":"+56987654321","email":"rita@example.com","password":"abc","user_type":"BUYER"}`,
		"bad email":      `{"name":"Rita","phone":"+56987654321","email":"rita","password":"secret","user_type":"BUYER"}`,
		"unknown role":   `{"name":"Rita","phone":"+56987654321","email":"rita@example.com","password":"secret","user_type":"GUEST"}`,
		"missing name":   `{"phone":"+56987654321","email":"rita@example.com","password":"secret","user_type":"BUYER"}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c, _ := jsonContext(newEcho(), http.MethodPost, "/auth/signup", body)
			err := NewAuthHandler(stub, zerolog.Nop()).Signup(c)
			assertHTTPError(t, err, http.StatusUnprocessableEntity)
		})
	}

	c, _ := jsonContext(newEcho(), http.MethodPost, "/auth/signup", `{"name":`)
	assertHTTPError(t, NewAuthHandler(stub, zerolog.Nop()).Signup(c), http.StatusBadRequest)
}

func TestAuthHandler_Signup_ServiceErrorPassesThrough(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(context.Context, ports.SignupInput) (string, error) {
			return "", domain.ErrInvalidProductKey
		},
	}
	c, _ := jsonContext(newEcho(), http.MethodPost, "/auth/signup", validSignup)

	err := NewAuthHandler(stub, zerolog.Nop()).Signup(c)
	if !errors.Is(err, domain.ErrInvalidProductKey) {
		t.Fatalf("expected ErrInvalidProductKey, got %v", err)
	}
}

func TestAuthHandler_Signin(t *testing.T) {
	stub := &stubAuthService{
		signinFn: func(_ context.Context, email, password string) (string, error) {
			if email == "bea@example.com" && password == "secret" {
				return "tok", nil
			}
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, zerolog.Nop())

	c, rec := jsonContext(newEcho(), http.MethodPost, "/auth/signin", `{"email":"bea@example.com","password":"secret"}`)
	if err := h.Signin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = jsonContext(newEcho(), http.MethodPost, "/auth/signin", `{"email":"bea@example.com","password":"wrong"}`)
	if err := h.Signin(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_ProductKey(t *testing.T) {
	stub := &stubAuthService{
		productKeyFn: func(email string, role domain.Role) (string, error) {
			if email != "new@example.com" || role != domain.RoleRealtor {
				t.Fatalf("unexpected args: %s %s", email, role)
			}
			return "$2a$10$key", nil
		},
	}
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/auth/key?email=new@example.com&user_type=REALTOR", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetIdentity(c, &domain.User{ID: 3, Role: domain.RoleAdmin})

	if err := NewAuthHandler(stub, zerolog.Nop()).ProductKey(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp productKeyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ProductKey != "$2a$10$key" {
		t.Fatalf("unexpected key: %q", resp.ProductKey)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/me", nil), rec)
	h := NewAuthHandler(&stubAuthService{}, zerolog.Nop())

	if err := h.Me(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden without identity, got %v", err)
	}

	middleware.SetIdentity(c, &domain.User{ID: 7, Name: "Bea", Email: "bea@example.com", Role: domain.RoleBuyer, PasswordHash: "hash"})
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("password hash leaked: %s", rec.Body.String())
	}
	var resp meResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 7 || resp.UserType != "BUYER" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}
