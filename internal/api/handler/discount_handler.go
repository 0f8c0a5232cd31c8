package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

// DiscountHandler exposes the discount record manager.
type DiscountHandler struct {
	service ports.DiscountService
}

func NewDiscountHandler(service ports.DiscountService) *DiscountHandler {
	return &DiscountHandler{service: service}
}

// List returns the discounts, filtered by the query parameters.
//
// @Summary      List discounts
// @Tags         discounts
// @Produce      json
// @Security     BearerAuth
// @Param        q        query     string  false  "Substring match on discount name"
// @Param        product  query     string  false  "Substring match on product name"
// @Param        status   query     string  false  "Exact status"
// @Success      200      {object}  discountListResponse
// @Failure      401      {object}  map[string]string
// @Router       /admin/discounts [get]
func (h *DiscountHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context(), ports.DiscountFilter{
		Search:  c.QueryParam("q"),
		Product: c.QueryParam("product"),
		Status:  c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDiscountListResponse(views))
}

// Create adds a discount and returns the refreshed list.
//
// @Summary      Create a discount
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      discountRequest  true  "Discount details"
// @Success      201   {object}  discountListResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /admin/discounts [post]
func (h *DiscountHandler) Create(c echo.Context) error {
	var req discountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	views, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toDiscountListResponse(views))
}

// Update replaces a discount and returns the refreshed list.
//
// @Summary      Update a discount
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Discount ID"
// @Param        body  body      discountRequest  true  "Discount details"
// @Success      200   {object}  discountListResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /admin/discounts/{id} [put]
func (h *DiscountHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req discountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	views, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDiscountListResponse(views))
}

// Delete removes a discount and returns the refreshed list.
//
// @Summary      Delete a discount
// @Tags         discounts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Discount ID"
// @Success      200 {object}  discountListResponse
// @Failure      401 {object}  map[string]string
// @Router       /admin/discounts/{id} [delete]
func (h *DiscountHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	views, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDiscountListResponse(views))
}
