package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/homefinder/realtor-api/internal/api/metrics"
	"github.com/homefinder/realtor-api/internal/core/domain"
	"github.com/homefinder/realtor-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// Signup registers an account and returns a session token.
//
// @Summary      Sign up
// @Description  BUYER accounts register freely; REALTOR and ADMIN need a product key.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid", "rejected").Inc()
		return err
	}

	role, _ := domain.ParseRole(req.UserType)
	token, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Phone:      req.Phone,
		Role:       role,
		ProductKey: req.ProductKey,
	})
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(string(role), signupResult(err)).Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues(string(role), "ok").Inc()
	return c.JSON(http.StatusCreated, tokenResponse{Token: token})
}

func signupResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountExists):
		return "exists"
	case errors.Is(err, domain.ErrInvalidProductKey):
		return "bad_key"
	case errors.Is(err, domain.ErrInvalidRole):
		return "rejected"
	default:
		return "error"
	}
}

// Signin exchanges credentials for a session token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.SigninsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.SigninsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.SigninsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// ProductKey mints the registration key for an email and role.
//
// @Summary      Generate a product key
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        email      query     string  true  "Email the key is bound to"
// @Param        user_type  query     string  true  "Role the key unlocks"  Enums(BUYER, REALTOR, ADMIN)
// @Success      200        {object}  productKeyResponse
// @Failure      403        {object}  errorResponse
// @Failure      422        {object}  errorResponse
// @Router       /auth/key [get]
func (h *AuthHandler) ProductKey(c echo.Context) error {
	var req productKeyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, _ := domain.ParseRole(req.UserType)
	key, err := h.authService.ProductKey(req.Email, role)
	if err != nil {
		return err
	}

	if admin, err := CurrentUser(c); err == nil {
		h.log.Info().Int64("admin_id", admin.ID).Str("role", string(role)).Msg("product key issued")
	}
	return c.JSON(http.StatusOK, productKeyResponse{ProductKey: key})
}

// Me returns the authenticated identity.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      403  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	u, err := CurrentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		UserType: string(u.Role),
	})
}
