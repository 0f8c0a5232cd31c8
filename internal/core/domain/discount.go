package domain

import (
	"errors"
	"time"
)

var ErrDiscountNotFound = errors.New("discount not found")

// DiscountStatus is the stored lifecycle state of a discount.
type DiscountStatus string

const (
	DiscountActive   DiscountStatus = "active"
	DiscountInactive DiscountStatus = "inactive"
	DiscountExpired  DiscountStatus = "expired"
)

// Discount is the normalized view of a discount record. Percentage keeps
// the raw value; the formatted one-decimal rendition lives on the view
// model. Expired is recomputed per read from ValidTo and never written
// back: the discounts upstream remains the source of truth for Status.
type Discount struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Product    string         `json:"product"`
	Percentage float64        `json:"percentage"`
	MinSpend   float64        `json:"min_spend"`
	ValidFrom  string         `json:"valid_from"`
	ValidTo    string         `json:"valid_to"`
	Status     DiscountStatus `json:"status"`
	Expired    bool           `json:"expired"`
}

// ExpiredAt reports whether an active discount's validity window has
// already closed at the given date. Dates are compared as yyyy-mm-dd
// strings, the same granularity the records carry.
func (d Discount) ExpiredAt(now time.Time) bool {
	if d.Status != DiscountActive || d.ValidTo == "" {
		return false
	}
	return d.ValidTo < now.UTC().Format("2006-01-02")
}
