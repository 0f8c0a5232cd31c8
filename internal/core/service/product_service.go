package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

type productService struct {
	sessionAccess
	gateway ports.ProductGateway
}

// NewProductService returns the read-only product catalog service.
func NewProductService(gateway ports.ProductGateway, sessions ports.SessionService, log zerolog.Logger) ports.ProductService {
	return &productService{
		sessionAccess: sessionAccess{sessions: sessions, log: log},
		gateway:       gateway,
	}
}

// List fetches the catalog and applies the filters: substring on name or
// description, exact category and type, AND-combined. Types always reflects
// the full catalog so the type tabs stay stable while filtering.
func (s *productService) List(ctx context.Context, filter ports.ProductFilter) (*ports.CatalogPage, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.gateway.List(ctx, sess.Token)
	if err != nil {
		return nil, s.mapUnauthorized(ctx, sess.Token, err)
	}

	search := strings.ToLower(filter.Search)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if filter.Type != "" && !strings.EqualFold(p.Type, filter.Type) {
			continue
		}
		filtered = append(filtered, p)
	}

	return &ports.CatalogPage{
		Products: filtered,
		Types:    distinctTypes(products),
	}, nil
}

func distinctTypes(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	types := make([]string, 0, len(products))
	for _, p := range products {
		if p.Type == "" {
			continue
		}
		if _, ok := seen[p.Type]; ok {
			continue
		}
		seen[p.Type] = struct{}{}
		types = append(types, p.Type)
	}
	sort.Strings(types)
	return types
}
