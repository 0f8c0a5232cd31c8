package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bleubean/pos-admin-gateway/internal/api/metrics"
	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

const dateLayout = "2006-01-02"

type discountService struct {
	sessionAccess
	gateway ports.DiscountGateway
	log     zerolog.Logger
	now     func() time.Time
}

// NewDiscountService returns the discount record manager.
func NewDiscountService(gateway ports.DiscountGateway, sessions ports.SessionService, log zerolog.Logger) ports.DiscountService {
	return &discountService{
		sessionAccess: sessionAccess{sessions: sessions, log: log},
		gateway:       gateway,
		log:           log,
		now:           time.Now,
	}
}

// List fetches the discounts and applies the non-persistent filters:
// substring on the discount name and product, exact status, AND-combined.
func (s *discountService) List(ctx context.Context, filter ports.DiscountFilter) ([]ports.DiscountView, error) {
	views, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(filter.Search)
	product := strings.ToLower(filter.Product)
	filtered := make([]ports.DiscountView, 0, len(views))
	for _, v := range views {
		if search != "" && !strings.Contains(strings.ToLower(v.Name), search) {
			continue
		}
		if product != "" && !strings.Contains(strings.ToLower(v.Product), product) {
			continue
		}
		if filter.Status != "" && !strings.EqualFold(string(v.Status), filter.Status) {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered, nil
}

// Create validates the form, submits it scoped to the acting username, and
// returns the refreshed list.
func (s *discountService) Create(ctx context.Context, input ports.DiscountInput) ([]ports.DiscountView, error) {
	if err := validateDiscount(input); err != nil {
		metrics.ValidationRejectionsTotal.WithLabelValues("discount").Inc()
		return nil, err
	}

	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.Create(ctx, sess.Token, toPayload(input, sess.Username)); err != nil {
		metrics.RecordMutationsTotal.WithLabelValues("discount", "create", "error").Inc()
		return nil, s.mapUnauthorized(ctx, sess.Token, err)
	}
	metrics.RecordMutationsTotal.WithLabelValues("discount", "create", "success").Inc()
	s.log.Info().Str("discount", input.Name).Str("username", sess.Username).Msg("discount created")

	return s.fetch(ctx)
}

// Update validates the form and replaces the record upstream, then returns
// the refreshed list.
func (s *discountService) Update(ctx context.Context, id int64, input ports.DiscountInput) ([]ports.DiscountView, error) {
	if err := validateDiscount(input); err != nil {
		metrics.ValidationRejectionsTotal.WithLabelValues("discount").Inc()
		return nil, err
	}

	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.Update(ctx, sess.Token, id, toPayload(input, sess.Username)); err != nil {
		metrics.RecordMutationsTotal.WithLabelValues("discount", "update", "error").Inc()
		return nil, s.mapUnauthorized(ctx, sess.Token, err)
	}
	metrics.RecordMutationsTotal.WithLabelValues("discount", "update", "success").Inc()
	s.log.Info().Int64("discount_id", id).Str("username", sess.Username).Msg("discount updated")

	return s.fetch(ctx)
}

// Delete removes the record upstream, scoped to the acting username, and
// returns the refreshed list.
func (s *discountService) Delete(ctx context.Context, id int64) ([]ports.DiscountView, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.Delete(ctx, sess.Token, id, sess.Username); err != nil {
		metrics.RecordMutationsTotal.WithLabelValues("discount", "delete", "error").Inc()
		return nil, s.mapUnauthorized(ctx, sess.Token, err)
	}
	metrics.RecordMutationsTotal.WithLabelValues("discount", "delete", "success").Inc()
	s.log.Info().Int64("discount_id", id).Str("username", sess.Username).Msg("discount deleted")

	return s.fetch(ctx)
}

func (s *discountService) fetch(ctx context.Context) ([]ports.DiscountView, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	discounts, err := s.gateway.List(ctx, sess.Token)
	if err != nil {
		return nil, s.mapUnauthorized(ctx, sess.Token, err)
	}

	now := s.now()
	views := make([]ports.DiscountView, 0, len(discounts))
	for _, d := range discounts {
		views = append(views, ports.DiscountView{
			ID:        d.ID,
			Name:      d.Name,
			Product:   d.Product,
			Discount:  FormatPercentage(d.Percentage),
			MinSpend:  d.MinSpend,
			ValidFrom: d.ValidFrom,
			ValidTo:   d.ValidTo,
			Status:    d.Status,
			Expired:   d.ExpiredAt(now),
		})
	}
	return views, nil
}

// FormatPercentage renders a percentage value to one decimal place with a
// trailing percent sign: 10 becomes "10.0%".
func FormatPercentage(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64) + "%"
}

// validateDiscount enforces the pre-flight form rules. Any failure blocks
// the submission before a request is issued.
func validateDiscount(input ports.DiscountInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domain.NewValidationError("discountName", "Discount Name is required.")
	}
	if strings.TrimSpace(input.Product) == "" {
		return domain.NewValidationError("productName", "Product Name must be selected.")
	}
	if input.Percentage <= 0 || input.Percentage >= 100 {
		return domain.NewValidationError("percentageValue", "Percentage must be between 0.1 and 99.9.")
	}
	if input.MinSpend != nil && *input.MinSpend < 0 {
		return domain.NewValidationError("minimumSpend", "Minimum Spend cannot be negative.")
	}

	status := domain.DiscountStatus(strings.ToLower(input.Status))
	switch status {
	case domain.DiscountActive, domain.DiscountInactive, domain.DiscountExpired:
	default:
		return domain.NewValidationError("status", "Status must be active, inactive, or expired.")
	}

	from, err := time.Parse(dateLayout, input.ValidFrom)
	if err != nil {
		return domain.NewValidationError("validFrom", "Valid From must be a yyyy-mm-dd date.")
	}
	to, err := time.Parse(dateLayout, input.ValidTo)
	if err != nil {
		return domain.NewValidationError("validTo", "Valid Until must be a yyyy-mm-dd date.")
	}
	if !from.Before(to) {
		return domain.NewValidationError("validFrom", "Valid From date must be before Valid To date.")
	}

	return nil
}

func toPayload(input ports.DiscountInput, username string) ports.DiscountPayload {
	return ports.DiscountPayload{
		Name:       strings.TrimSpace(input.Name),
		Product:    strings.TrimSpace(input.Product),
		Percentage: input.Percentage,
		MinSpend:   input.MinSpend,
		ValidFrom:  input.ValidFrom,
		ValidTo:    input.ValidTo,
		Status:     domain.DiscountStatus(strings.ToLower(input.Status)),
		Username:   username,
	}
}
