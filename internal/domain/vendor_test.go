package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/neomorfeo/vendiq/internal/domain"
)

func TestNewVendor_CopiesProfile(t *testing.T) {
	app := domain.NewApplication("a-1", "u-1", validProfile(), domain.PlanPremium,
		decimal.NewFromInt(5000), []string{"outdoor"}, "", nil)

	vendor := domain.NewVendor("v-1", app, decimal.NewFromInt(8))

	if vendor.ID != "v-1" {
		t.Errorf("ID = %q, want %q", vendor.ID, "v-1")
	}
	if vendor.UserID != "u-1" {
		t.Errorf("UserID = %q, want %q", vendor.UserID, "u-1")
	}
	if vendor.Business != app.Business {
		t.Error("business profile should be copied from the application")
	}
	if !vendor.CommissionRate.Equal(decimal.NewFromInt(8)) {
		t.Errorf("CommissionRate = %s, want 8", vendor.CommissionRate)
	}
	if !vendor.Active {
		t.Error("new vendor should be active")
	}
	if vendor.TotalProducts != 0 || vendor.ReviewCount != 0 {
		t.Error("counters should start at zero")
	}
	if !vendor.TotalSales.IsZero() {
		t.Errorf("TotalSales = %s, want 0", vendor.TotalSales)
	}
	if vendor.Rating != 0 {
		t.Errorf("Rating = %v, want 0", vendor.Rating)
	}
}

func TestValidCommissionRate(t *testing.T) {
	cases := []struct {
		rate string
		want bool
	}{
		{"0", true},
		{"10", true},
		{"50", true},
		{"12.5", true},
		{"-0.01", false},
		{"50.01", false},
		{"100", false},
	}

	for _, tc := range cases {
		rate := decimal.RequireFromString(tc.rate)
		if got := domain.ValidCommissionRate(rate); got != tc.want {
			t.Errorf("ValidCommissionRate(%s) = %v, want %v", tc.rate, got, tc.want)
		}
	}
}

func TestVendor_ApplyPatch(t *testing.T) {
	app := domain.NewApplication("a-1", "u-1", validProfile(), domain.PlanBasic,
		decimal.NewFromInt(100), nil, "", nil)
	vendor := domain.NewVendor("v-1", app, domain.DefaultCommissionRate)

	name := "Acme Gear Worldwide"
	logo := "https://cdn.example/logo.png"
	vendor.ApplyPatch(domain.VendorPatch{
		BusinessName: &name,
		LogoURL:      &logo,
	})

	if vendor.Business.Name != "Acme Gear Worldwide" {
		t.Errorf("Name = %q, want %q", vendor.Business.Name, "Acme Gear Worldwide")
	}
	if vendor.LogoURL != "https://cdn.example/logo.png" {
		t.Errorf("LogoURL = %q", vendor.LogoURL)
	}
	// Untouched fields survive.
	if vendor.Business.Phone != "+1-555-0100" {
		t.Errorf("Phone changed unexpectedly: %q", vendor.Business.Phone)
	}
	if !vendor.CommissionRate.Equal(domain.DefaultCommissionRate) {
		t.Error("patch must not touch commission rate")
	}
}
