package ports

import (
	"context"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
)

// ProductFilter carries the catalog list filters: substring on name or
// description, exact match on category and product type, AND-combined.
type ProductFilter struct {
	Search   string
	Category string
	Type     string
}

// CatalogPage is the read-only product view: the filtered records plus the
// distinct product types present in the full catalog, one tab per type.
type CatalogPage struct {
	Products []domain.Product
	Types    []string
}

// ProductService implements the read-only product record manager.
type ProductService interface {
	List(ctx context.Context, filter ProductFilter) (*CatalogPage, error)
}
