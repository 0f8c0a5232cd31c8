package domain

import (
	"errors"
	"testing"
	"time"
)

func TestRouteForRole(t *testing.T) {
	cases := []struct {
		role    Role
		want    string
		wantErr bool
	}{
		{RoleAdmin, "/admin/dashboard", false},
		{RoleManager, "/manager-home", false},
		{RoleCashier, "", true},
		{Role("barista"), "", true},
		{Role(""), "", true},
	}

	for _, tc := range cases {
		dest, err := RouteForRole(tc.role)
		if tc.wantErr {
			if !errors.Is(err, ErrRoleUnrecognized) {
				t.Fatalf("RouteForRole(%q) error = %v, want ErrRoleUnrecognized", tc.role, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("RouteForRole(%q) returned error: %v", tc.role, err)
		}
		if dest != tc.want {
			t.Fatalf("RouteForRole(%q) = %q, want %q", tc.role, dest, tc.want)
		}
	}
}

func TestRoleUsesPasscode(t *testing.T) {
	if !RoleCashier.UsesPasscode() {
		t.Fatalf("cashier should use a passcode")
	}
	if RoleAdmin.UsesPasscode() || RoleManager.UsesPasscode() {
		t.Fatalf("admin/manager should not use a passcode")
	}
}

func TestDiscountExpiredAt(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		discount Discount
		want     bool
	}{
		{"active past window", Discount{Status: DiscountActive, ValidTo: "2026-06-14"}, true},
		{"active same day", Discount{Status: DiscountActive, ValidTo: "2026-06-15"}, false},
		{"active future", Discount{Status: DiscountActive, ValidTo: "2026-07-01"}, false},
		{"inactive past window", Discount{Status: DiscountInactive, ValidTo: "2026-01-01"}, false},
		{"active missing date", Discount{Status: DiscountActive}, false},
	}

	for _, tc := range cases {
		if got := tc.discount.ExpiredAt(now); got != tc.want {
			t.Fatalf("%s: ExpiredAt = %v, want %v", tc.name, got, tc.want)
		}
	}
}
