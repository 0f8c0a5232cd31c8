package handler

import (
	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

type discountRequest struct {
	Name       string   `json:"discountName" validate:"required"`
	Product    string   `json:"productName" validate:"required"`
	Percentage float64  `json:"percentageValue" validate:"required,gt=0,lt=100"`
	MinSpend   *float64 `json:"minimumSpend"`
	ValidFrom  string   `json:"validFrom" validate:"required,datetime=2006-01-02"`
	ValidTo    string   `json:"validTo" validate:"required,datetime=2006-01-02"`
	Status     string   `json:"status" validate:"required,oneof=active inactive expired"`
}

func (r discountRequest) toInput() ports.DiscountInput {
	return ports.DiscountInput{
		Name:       r.Name,
		Product:    r.Product,
		Percentage: r.Percentage,
		MinSpend:   r.MinSpend,
		ValidFrom:  r.ValidFrom,
		ValidTo:    r.ValidTo,
		Status:     r.Status,
	}
}

type discountResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Product   string  `json:"product"`
	Discount  string  `json:"discount"`
	MinSpend  float64 `json:"min_spend"`
	ValidFrom string  `json:"valid_from"`
	ValidTo   string  `json:"valid_to"`
	Status    string  `json:"status"`
	Expired   bool    `json:"expired"`
}

type discountListResponse struct {
	Discounts []discountResponse `json:"discounts"`
}

func toDiscountListResponse(views []ports.DiscountView) discountListResponse {
	out := make([]discountResponse, 0, len(views))
	for _, v := range views {
		out = append(out, discountResponse{
			ID:        v.ID,
			Name:      v.Name,
			Product:   v.Product,
			Discount:  v.Discount,
			MinSpend:  v.MinSpend,
			ValidFrom: v.ValidFrom,
			ValidTo:   v.ValidTo,
			Status:    string(v.Status),
			Expired:   v.Expired,
		})
	}
	return discountListResponse{Discounts: out}
}
