package ports

import (
	"context"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
)

// DiscountFilter carries the discount list filters: substring on the
// discount name and on the target product, exact match on status,
// AND-combined.
type DiscountFilter struct {
	Search  string
	Product string
	Status  string
}

// DiscountInput is the form submitted on create and update.
type DiscountInput struct {
	Name       string
	Product    string
	Percentage float64
	MinSpend   *float64
	ValidFrom  string
	ValidTo    string
	Status     string
}

// DiscountView is the screen-facing shape of a discount record, with the
// percentage pre-formatted to one decimal place.
type DiscountView struct {
	ID        int64
	Name      string
	Product   string
	Discount  string
	MinSpend  float64
	ValidFrom string
	ValidTo   string
	Status    domain.DiscountStatus
	Expired   bool
}

// DiscountService implements the discount record manager. Mutations are
// scoped to the acting session's username and return the refreshed list.
type DiscountService interface {
	List(ctx context.Context, filter DiscountFilter) ([]DiscountView, error)
	Create(ctx context.Context, input DiscountInput) ([]DiscountView, error)
	Update(ctx context.Context, id int64, input DiscountInput) ([]DiscountView, error)
	Delete(ctx context.Context, id int64) ([]DiscountView, error)
}
