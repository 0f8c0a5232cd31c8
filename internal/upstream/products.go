package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
)

const productService = "products"

// ProductClient reads the product catalog upstream. The catalog exposes no
// mutations to this gateway.
type ProductClient struct {
	baseURL        string
	placeholderURL string
	httpClient     *http.Client
}

// productRecord mirrors the upstream wire shape.
type productRecord struct {
	ProductID          int64    `json:"ProductID"`
	ProductName        string   `json:"ProductName"`
	ProductTypeName    string   `json:"ProductTypeName"`
	ProductCategory    string   `json:"ProductCategory"`
	ProductDescription string   `json:"ProductDescription"`
	ProductPrice       float64  `json:"ProductPrice"`
	ProductImage       string   `json:"ProductImage"`
	ProductSizes       []string `json:"ProductSizes"`
}

// NewProductClient builds a client for the given catalog base URL.
func NewProductClient(baseURL, placeholderURL string, timeout time.Duration) *ProductClient {
	return &ProductClient{
		baseURL:        normalizeBaseURL(baseURL),
		placeholderURL: placeholderURL,
		httpClient:     newHTTPClient(timeout),
	}
}

// List fetches the full catalog.
func (c *ProductClient) List(ctx context.Context, bearer string) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/Products/products/", nil)
	if err != nil {
		return nil, fmt.Errorf("products: build request: %w", err)
	}
	setBearer(req, bearer)

	body, _, err := do(c.httpClient, productService, req)
	if err != nil {
		return nil, err
	}

	var records []productRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: products: decode list: %v", domain.ErrUpstreamUnavailable, err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, r := range records {
		products = append(products, c.normalize(r))
	}
	return products, nil
}

func (c *ProductClient) normalize(r productRecord) domain.Product {
	name := r.ProductName
	if name == "" {
		name = "Unknown Product"
	}
	category := r.ProductCategory
	if category == "" {
		category = "N/A"
	}
	description := r.ProductDescription
	if description == "" {
		description = "N/A"
	}

	return domain.Product{
		ID:          r.ProductID,
		Name:        name,
		Type:        r.ProductTypeName,
		Category:    category,
		Description: description,
		Price:       r.ProductPrice,
		ImageURL:    c.imageURL(r.ProductImage),
		Sizes:       r.ProductSizes,
	}
}

// imageURL resolves the stored image reference. Absolute URLs pass through;
// server-relative paths are joined onto the catalog base URL; anything
// absent or malformed falls back to the placeholder.
func (c *ProductClient) imageURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return c.placeholderURL
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		return c.placeholderURL
	}
	return c.baseURL + ref
}
