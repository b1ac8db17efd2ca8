package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homefinder/realtor-api/internal/api/middleware"
	"github.com/homefinder/realtor-api/internal/core/domain"
)

// CurrentUser returns the identity the guard resolved for this request.
// A protected route without one is a wiring mistake and is refused.
func CurrentUser(c echo.Context) (*domain.User, error) {
	u := middleware.Identity(c)
	if u == nil {
		return nil, domain.ErrForbidden
	}
	return u, nil
}
