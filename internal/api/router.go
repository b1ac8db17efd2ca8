package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/homefinder/realtor-api/docs"
	"github.com/homefinder/realtor-api/internal/api/handler"
	"github.com/homefinder/realtor-api/internal/api/middleware"
	"github.com/homefinder/realtor-api/internal/core/domain"
	"github.com/homefinder/realtor-api/internal/core/ports"
	"github.com/homefinder/realtor-api/internal/infrastructure/http/handlers"
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	Log       zerolog.Logger
	Guard     middleware.Authorizer
	Auth      ports.AuthService
	Homes     ports.HomeService
	Messages  ports.MessageService
	Readiness map[string]handlers.Check

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// route binds a handler to the roles allowed to call it. No roles means
// public.
type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	roles   []domain.Role
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "realtor",
		Registerer: d.Registerer,
	}))

	authHandler := handler.NewAuthHandler(d.Auth, d.Log)
	homeHandler := handler.NewHomeHandler(d.Homes)
	messageHandler := handler.NewMessageHandler(d.Messages)

	anyRole := []domain.Role{domain.RoleBuyer, domain.RoleRealtor, domain.RoleAdmin}
	realtor := []domain.Role{domain.RoleRealtor}

	routes := []route{
		{http.MethodPost, "/auth/signup", authHandler.Signup, nil},
		{http.MethodPost, "/auth/signin", authHandler.Signin, nil},
		{http.MethodGet, "/auth/key", authHandler.ProductKey, []domain.Role{domain.RoleAdmin}},
		{http.MethodGet, "/auth/me", authHandler.Me, anyRole},

		{http.MethodGet, "/homes", homeHandler.List, nil},
		{http.MethodGet, "/homes/:id", homeHandler.Get, nil},
		{http.MethodPost, "/homes", homeHandler.Create, realtor},
		{http.MethodPut, "/homes/:id", homeHandler.Update, realtor},
		{http.MethodDelete, "/homes/:id", homeHandler.Delete, realtor},

		{http.MethodPost, "/homes/:id/inquire", messageHandler.Inquire, []domain.Role{domain.RoleBuyer}},
		{http.MethodGet, "/homes/:id/messages", messageHandler.List, realtor},
	}
	for _, r := range routes {
		e.Add(r.method, r.path, r.handler, middleware.RBAC(d.Guard, d.Log, r.roles...))
	}

	// --- Health probes (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewReadinessHandler(d.Readiness).Readiness)

	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
