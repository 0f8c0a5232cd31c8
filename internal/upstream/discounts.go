package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

const discountService = "discounts"

// DiscountClient talks to the discounts upstream.
type DiscountClient struct {
	baseURL    string
	httpClient *http.Client
}

// discountRecord mirrors the upstream wire shape.
type discountRecord struct {
	DiscountID      int64    `json:"DiscountID"`
	DiscountName    string   `json:"DiscountName"`
	ProductID       int64    `json:"ProductID"`
	ProductName     string   `json:"ProductName"`
	PercentageValue float64  `json:"PercentageValue"`
	MinimumSpend    *float64 `json:"MinimumSpend"`
	ValidFrom       string   `json:"ValidFrom"`
	ValidTo         string   `json:"ValidTo"`
	Status          string   `json:"Status"`
}

// discountBody is the JSON payload for create and update.
type discountBody struct {
	DiscountName    string   `json:"DiscountName"`
	ProductName     string   `json:"ProductName"`
	PercentageValue float64  `json:"PercentageValue"`
	MinimumSpend    *float64 `json:"MinimumSpend"`
	ValidFrom       string   `json:"ValidFrom"`
	ValidTo         string   `json:"ValidTo"`
	Status          string   `json:"Status"`
	Username        string   `json:"Username"`
}

// NewDiscountClient builds a client for the given discounts base URL.
func NewDiscountClient(baseURL string, timeout time.Duration) *DiscountClient {
	return &DiscountClient{
		baseURL:    normalizeBaseURL(baseURL),
		httpClient: newHTTPClient(timeout),
	}
}

// List fetches all discounts visible to the bearer token.
func (c *DiscountClient) List(ctx context.Context, bearer string) ([]domain.Discount, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/discounts/", nil)
	if err != nil {
		return nil, fmt.Errorf("discounts: build request: %w", err)
	}
	setBearer(req, bearer)

	body, _, err := do(c.httpClient, discountService, req)
	if err != nil {
		return nil, err
	}

	var records []discountRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: discounts: decode list: %v", domain.ErrUpstreamUnavailable, err)
	}

	discounts := make([]domain.Discount, 0, len(records))
	for _, r := range records {
		discounts = append(discounts, normalizeDiscount(r))
	}
	return discounts, nil
}

// Create submits a new discount.
func (c *DiscountClient) Create(ctx context.Context, bearer string, payload ports.DiscountPayload) error {
	return c.submit(ctx, bearer, http.MethodPost, c.baseURL+"/discounts/", payload)
}

// Update replaces an existing discount.
func (c *DiscountClient) Update(ctx context.Context, bearer string, id int64, payload ports.DiscountPayload) error {
	return c.submit(ctx, bearer, http.MethodPut, fmt.Sprintf("%s/discounts/%d", c.baseURL, id), payload)
}

// Delete removes a discount, scoped to the acting username.
func (c *DiscountClient) Delete(ctx context.Context, bearer string, id int64, username string) error {
	var body *bytes.Reader
	if username != "" {
		raw, err := json.Marshal(map[string]string{"Username": username})
		if err != nil {
			return fmt.Errorf("discounts: encode delete body: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/discounts/%d", c.baseURL, id), body)
	if err != nil {
		return fmt.Errorf("discounts: build request: %w", err)
	}
	if username != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	setBearer(req, bearer)

	_, _, err = do(c.httpClient, discountService, req)
	return err
}

func (c *DiscountClient) submit(ctx context.Context, bearer, method, url string, payload ports.DiscountPayload) error {
	raw, err := json.Marshal(discountBody{
		DiscountName:    payload.Name,
		ProductName:     payload.Product,
		PercentageValue: payload.Percentage,
		MinimumSpend:    payload.MinSpend,
		ValidFrom:       isoDate(payload.ValidFrom),
		ValidTo:         isoDate(payload.ValidTo),
		Status:          string(payload.Status),
		Username:        payload.Username,
	})
	if err != nil {
		return fmt.Errorf("discounts: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("discounts: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	setBearer(req, bearer)

	_, _, err = do(c.httpClient, discountService, req)
	return err
}

func normalizeDiscount(r discountRecord) domain.Discount {
	product := r.ProductName
	if product == "" {
		product = fmt.Sprintf("Product ID: %d", r.ProductID)
	}

	minSpend := 0.0
	if r.MinimumSpend != nil {
		minSpend = *r.MinimumSpend
	}

	return domain.Discount{
		ID:         r.DiscountID,
		Name:       r.DiscountName,
		Product:    product,
		Percentage: r.PercentageValue,
		MinSpend:   minSpend,
		ValidFrom:  datePart(r.ValidFrom),
		ValidTo:    datePart(r.ValidTo),
		Status:     domain.DiscountStatus(strings.ToLower(r.Status)),
	}
}

// isoDate expands a yyyy-mm-dd form value into the midnight UTC timestamp
// the upstream stores. Values already carrying a time component pass
// through.
func isoDate(date string) string {
	if date == "" || strings.Contains(date, "T") {
		return date
	}
	return date + "T00:00:00Z"
}
