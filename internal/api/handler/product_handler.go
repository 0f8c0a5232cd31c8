package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

// ProductHandler exposes the read-only product catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	Sizes       []string `json:"sizes,omitempty"`
}

type catalogResponse struct {
	Products []productResponse `json:"products"`
	Types    []string          `json:"types"`
}

// List returns the catalog, filtered by the query parameters. Types always
// covers the full catalog so the per-type tabs stay stable while filtering.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        q         query     string  false  "Substring match on name or description"
// @Param        category  query     string  false  "Exact category"
// @Param        type      query     string  false  "Exact product type"
// @Success      200       {object}  catalogResponse
// @Failure      401       {object}  map[string]string
// @Router       /admin/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.ProductFilter{
		Search:   c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Type:     c.QueryParam("type"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCatalogResponse(page))
}

func toCatalogResponse(page *ports.CatalogPage) catalogResponse {
	products := make([]productResponse, 0, len(page.Products))
	for _, p := range page.Products {
		products = append(products, toProductResponse(p))
	}
	return catalogResponse{Products: products, Types: page.Types}
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Sizes:       p.Sizes,
	}
}
