package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homefinder/realtor-api/internal/api/metrics"
	"github.com/homefinder/realtor-api/internal/core/ports"
)

// HomeHandler handles HTTP requests for home listings.
type HomeHandler struct {
	service ports.HomeService
}

func NewHomeHandler(service ports.HomeService) *HomeHandler {
	return &HomeHandler{service: service}
}

// List handles GET /homes.
//
// @Summary      Search homes
// @Tags         homes
// @Produce      json
// @Param        city           query     string  false  "City"
// @Param        min_price      query     number  false  "Minimum price"
// @Param        max_price      query     number  false  "Maximum price"
// @Param        property_type  query     string  false  "Property type"  Enums(RESIDENTIAL, CONDO)
// @Success      200            {array}   homeSummaryResponse
// @Failure      400            {object}  errorResponse
// @Router       /homes [get]
func (h *HomeHandler) List(c echo.Context) error {
	var q homeQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	homes, err := h.service.ListHomes(c.Request().Context(), toHomeFilter(q))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSummaryResponses(homes))
}

// Get handles GET /homes/:id.
//
// @Summary      Get a home
// @Tags         homes
// @Produce      json
// @Param        id   path      int  true  "Home id"
// @Success      200  {object}  homeDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /homes/{id} [get]
func (h *HomeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetHome(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, homeDetailResponse{
		homeResponse: toHomeResponse(detail.Home),
		Realtor:      toContactResponse(detail.Realtor),
	})
}

// Create handles POST /homes.
//
// @Summary      List a new home
// @Tags         homes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHomeRequest  true  "Home details"
// @Success      201   {object}  homeResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /homes [post]
func (h *HomeHandler) Create(c echo.Context) error {
	realtor, err := CurrentUser(c)
	if err != nil {
		return err
	}

	var req createHomeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	home, err := h.service.CreateHome(c.Request().Context(), toCreateHomeInput(req), realtor)
	if err != nil {
		return err
	}

	metrics.HomesCreatedTotal.WithLabelValues(string(home.PropertyType)).Inc()
	return c.JSON(http.StatusCreated, toHomeResponse(home))
}

// Update handles PUT /homes/:id.
//
// @Summary      Update a home
// @Tags         homes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Home id"
// @Param        body  body      updateHomeRequest  true  "Fields to change"
// @Success      200   {object}  homeResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /homes/{id} [put]
func (h *HomeHandler) Update(c echo.Context) error {
	caller, err := CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateHomeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	home, err := h.service.UpdateHome(c.Request().Context(), id, toHomePatch(req), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHomeResponse(home))
}

// Delete handles DELETE /homes/:id.
//
// @Summary      Delete a home
// @Tags         homes
// @Security     BearerAuth
// @Param        id   path  int  true  "Home id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /homes/{id} [delete]
func (h *HomeHandler) Delete(c echo.Context) error {
	caller, err := CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteHome(c.Request().Context(), id, caller); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
