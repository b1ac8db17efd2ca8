package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/homefinder/realtor-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrAccountExists, http.StatusConflict, "account already exists"},
		{domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid credentials"},
		{domain.ErrInvalidProductKey, http.StatusForbidden, "invalid product key"},
		{domain.ErrInvalidRole, http.StatusUnprocessableEntity, "invalid user type"},
		{domain.ErrForbidden, http.StatusForbidden, "forbidden resource"},
		{domain.ErrInsufficientRole, http.StatusForbidden, "forbidden resource"},
		{fmt.Errorf("wrapped: %w", domain.ErrHomeNotFound), http.StatusNotFound, "home not found"},
		{domain.ErrDuplicateInquiry, http.StatusConflict, "inquiry already sent"},
		{echo.NewHTTPError(http.StatusBadRequest, "invalid id"), http.StatusBadRequest, "invalid id"},
		{errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tt.msg {
				t.Fatalf("expected %q, got %q", tt.msg, body.Error)
			}
		})
	}
}
