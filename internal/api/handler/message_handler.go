package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homefinder/realtor-api/internal/api/metrics"
	"github.com/homefinder/realtor-api/internal/core/domain"
	"github.com/homefinder/realtor-api/internal/core/ports"
)

// MessageHandler handles buyer inquiries about a home.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Inquire handles POST /homes/:id/inquire.
//
// @Summary      Contact the realtor of a home
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Home id"
// @Param        body  body      inquireRequest  true  "Message"
// @Success      201   {object}  messageResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /homes/{id}/inquire [post]
func (h *MessageHandler) Inquire(c echo.Context) error {
	buyer, err := CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req inquireRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.service.Inquire(c.Request().Context(), buyer, id, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateInquiry) {
			metrics.InquiriesTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.InquiriesTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.InquiriesTotal.WithLabelValues("sent").Inc()
	return c.JSON(http.StatusCreated, messageResponse{
		ID:        msg.ID,
		Message:   msg.Message,
		HomeID:    msg.HomeID,
		CreatedAt: msg.CreatedAt,
	})
}

// List handles GET /homes/:id/messages.
//
// @Summary      Inquiries received for a home
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Home id"
// @Success      200  {array}   inquiryResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /homes/{id}/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	caller, err := CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	views, err := h.service.MessagesByHome(c.Request().Context(), id, caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInquiryResponses(views))
}
