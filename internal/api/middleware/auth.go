package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/homefinder/realtor-api/internal/api/metrics"
	"github.com/homefinder/realtor-api/internal/core/auth"
	"github.com/homefinder/realtor-api/internal/core/domain"
)

const identityKey = "identity"

// Authorizer decides whether the caller behind an Authorization header may
// invoke an operation restricted to allowed.
type Authorizer interface {
	Authorize(ctx context.Context, allowed domain.RoleSet, header string) auth.Decision
}

// Guard runs the authorizer before the handler. Any denial is answered with
// 403 and the handler never runs; the deny reason only reaches logs and
// metrics.
func Guard(authz Authorizer, allowed domain.RoleSet, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			d := authz.Authorize(c.Request().Context(), allowed, header)

			if !d.Granted {
				metrics.GuardDecisionsTotal.WithLabelValues("denied", string(d.Reason)).Inc()
				log.Debug().
					Err(d.Err).
					Str("reason", string(d.Reason)).
					Str("method", c.Request().Method).
					Str("path", c.Path()).
					Msg("request denied")
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden resource"})
			}

			metrics.GuardDecisionsTotal.WithLabelValues("granted", "").Inc()
			if d.Identity != nil {
				SetIdentity(c, d.Identity)
			}
			return next(c)
		}
	}
}

// SetIdentity stores the resolved caller on the request context.
func SetIdentity(c echo.Context, u *domain.User) {
	c.Set(identityKey, u)
}

// Identity returns the caller resolved by Guard, or nil on public routes.
func Identity(c echo.Context) *domain.User {
	u, _ := c.Get(identityKey).(*domain.User)
	return u
}
