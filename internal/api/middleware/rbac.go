package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/homefinder/realtor-api/internal/core/domain"
)

// RBAC restricts a route to the given roles. With no roles the route is
// public.
func RBAC(authz Authorizer, log zerolog.Logger, roles ...domain.Role) echo.MiddlewareFunc {
	return Guard(authz, domain.Roles(roles...), log)
}
