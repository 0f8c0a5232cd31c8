package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bleubean/pos-admin-gateway/internal/core/domain"
	"github.com/bleubean/pos-admin-gateway/internal/core/ports"
)

type stubDiscountGateway struct {
	discounts []domain.Discount
	listErr   error
	mutateErr error

	created        []ports.DiscountPayload
	updated        map[int64]ports.DiscountPayload
	deletedID      int64
	deletedAs      string
	deleteReceived bool
}

func (g *stubDiscountGateway) List(_ context.Context, _ string) ([]domain.Discount, error) {
	if g.listErr != nil {
		return nil, g.listErr
	}
	return g.discounts, nil
}

func (g *stubDiscountGateway) Create(_ context.Context, _ string, payload ports.DiscountPayload) error {
	if g.mutateErr != nil {
		return g.mutateErr
	}
	g.created = append(g.created, payload)
	return nil
}

func (g *stubDiscountGateway) Update(_ context.Context, _ string, id int64, payload ports.DiscountPayload) error {
	if g.mutateErr != nil {
		return g.mutateErr
	}
	if g.updated == nil {
		g.updated = make(map[int64]ports.DiscountPayload)
	}
	g.updated[id] = payload
	return nil
}

func (g *stubDiscountGateway) Delete(_ context.Context, _ string, id int64, username string) error {
	if g.mutateErr != nil {
		return g.mutateErr
	}
	g.deleteReceived = true
	g.deletedID = id
	g.deletedAs = username
	return nil
}

func newDiscountService(gw ports.DiscountGateway, sessions ports.SessionService, now time.Time) ports.DiscountService {
	svc := NewDiscountService(gw, sessions, zerolog.Nop()).(*discountService)
	svc.now = func() time.Time { return now }
	return svc
}

func validDiscountInput() ports.DiscountInput {
	return ports.DiscountInput{
		Name:       "Lunch Special",
		Product:    "Iced Latte",
		Percentage: 10,
		ValidFrom:  "2026-01-01",
		ValidTo:    "2026-12-31",
		Status:     "active",
	}
}

func TestDiscountService_List_FormatsAndAnnotates(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	gw := &stubDiscountGateway{discounts: []domain.Discount{
		{ID: 1, Name: "Lunch Special", Product: "Iced Latte", Percentage: 10, ValidFrom: "2026-01-01", ValidTo: "2026-12-31", Status: domain.DiscountActive},
		{ID: 2, Name: "Winter Sale", Product: "Mocha", Percentage: 12.5, ValidFrom: "2026-01-01", ValidTo: "2026-02-01", Status: domain.DiscountActive},
		{ID: 3, Name: "Old Promo", Product: "Espresso", Percentage: 5, ValidFrom: "2025-01-01", ValidTo: "2025-06-01", Status: domain.DiscountInactive},
	}}
	svc := newDiscountService(gw, activeSessions(), now)

	got, err := svc.List(context.Background(), ports.DiscountFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 views, got %d", len(got))
	}
	if got[0].Discount != "10.0%" {
		t.Fatalf("expected 10.0%%, got %s", got[0].Discount)
	}
	if got[1].Discount != "12.5%" {
		t.Fatalf("expected 12.5%%, got %s", got[1].Discount)
	}
	if got[0].Expired {
		t.Fatalf("discount within its window marked expired")
	}
	if !got[1].Expired {
		t.Fatalf("active discount past its window not marked expired")
	}
	// Expiry annotation only applies to active records.
	if got[2].Expired {
		t.Fatalf("inactive discount marked expired")
	}
}

func TestDiscountService_List_Filters(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	gw := &stubDiscountGateway{discounts: []domain.Discount{
		{ID: 1, Name: "Lunch Special", Product: "Iced Latte", Percentage: 10, Status: domain.DiscountActive},
		{ID: 2, Name: "Winter Sale", Product: "Mocha", Percentage: 12.5, Status: domain.DiscountInactive},
	}}
	svc := newDiscountService(gw, activeSessions(), now)

	got, err := svc.List(context.Background(), ports.DiscountFilter{Search: "lunch"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("search filter: got %+v", got)
	}

	got, err = svc.List(context.Background(), ports.DiscountFilter{Product: "mocha", Status: "inactive"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("product+status filter: got %+v", got)
	}
}

func TestDiscountService_Create_ScopesToSessionUsername(t *testing.T) {
	gw := &stubDiscountGateway{}
	svc := newDiscountService(gw, activeSessions(), time.Now())

	if _, err := svc.Create(context.Background(), validDiscountInput()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(gw.created) != 1 {
		t.Fatalf("expected one create call, got %d", len(gw.created))
	}
	if gw.created[0].Username != "amina" {
		t.Fatalf("expected payload scoped to amina, got %q", gw.created[0].Username)
	}
}

func TestDiscountService_Create_ValidationBlocksSubmission(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.DiscountInput)
		field  string
	}{
		{"missing name", func(in *ports.DiscountInput) { in.Name = " " }, "discountName"},
		{"missing product", func(in *ports.DiscountInput) { in.Product = "" }, "productName"},
		{"zero percentage", func(in *ports.DiscountInput) { in.Percentage = 0 }, "percentageValue"},
		{"percentage at hundred", func(in *ports.DiscountInput) { in.Percentage = 100 }, "percentageValue"},
		{"negative minimum spend", func(in *ports.DiscountInput) { v := -1.0; in.MinSpend = &v }, "minimumSpend"},
		{"unknown status", func(in *ports.DiscountInput) { in.Status = "paused" }, "status"},
		{"bad from date", func(in *ports.DiscountInput) { in.ValidFrom = "01/01/2026" }, "validFrom"},
		{"bad to date", func(in *ports.DiscountInput) { in.ValidTo = "never" }, "validTo"},
		{"window inverted", func(in *ports.DiscountInput) { in.ValidFrom = "2026-12-31"; in.ValidTo = "2026-01-01" }, "validFrom"},
		{"window empty", func(in *ports.DiscountInput) { in.ValidFrom = "2026-06-01"; in.ValidTo = "2026-06-01" }, "validFrom"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &stubDiscountGateway{}
			svc := newDiscountService(gw, activeSessions(), time.Now())

			input := validDiscountInput()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), input)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q (%s)", tc.field, verr.Field, verr.Message)
			}
			if len(gw.created) != 0 {
				t.Fatalf("expected no upstream call on validation failure")
			}
		})
	}
}

func TestDiscountService_Update_ReturnsRefreshedList(t *testing.T) {
	gw := &stubDiscountGateway{discounts: []domain.Discount{
		{ID: 5, Name: "Lunch Special", Percentage: 15, Status: domain.DiscountActive},
	}}
	svc := newDiscountService(gw, activeSessions(), time.Now())

	got, err := svc.Update(context.Background(), 5, validDiscountInput())
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if _, ok := gw.updated[5]; !ok {
		t.Fatalf("expected update for id 5, got %v", gw.updated)
	}
	if len(got) != 1 || got[0].Discount != "15.0%" {
		t.Fatalf("expected refreshed list, got %+v", got)
	}
}

func TestDiscountService_Delete_SendsUsername(t *testing.T) {
	gw := &stubDiscountGateway{}
	svc := newDiscountService(gw, activeSessions(), time.Now())

	if _, err := svc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !gw.deleteReceived || gw.deletedID != 7 || gw.deletedAs != "amina" {
		t.Fatalf("unexpected delete call: id=%d username=%q", gw.deletedID, gw.deletedAs)
	}
}

func TestDiscountService_Mutation_UnauthorizedEvictsSession(t *testing.T) {
	sessions := activeSessions()
	gw := &stubDiscountGateway{mutateErr: domain.ErrUnauthorized}
	svc := newDiscountService(gw, sessions, time.Now())

	if _, err := svc.Create(context.Background(), validDiscountInput()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if len(sessions.invalidated) != 1 || sessions.invalidated[0] != "tok" {
		t.Fatalf("expected one invalidation keyed on the stale token, got %v", sessions.invalidated)
	}
}

func TestFormatPercentage(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{10, "10.0%"},
		{12.5, "12.5%"},
		{0.5, "0.5%"},
		{33.333, "33.3%"},
	}
	for _, tc := range cases {
		if got := FormatPercentage(tc.in); got != tc.want {
			t.Fatalf("FormatPercentage(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
