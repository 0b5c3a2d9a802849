package app

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/neomorfeo/vendiq/internal/domain"
)

// VendorService exposes self-service operations for provisioned vendors.
// It never creates vendors; that happens only through approval.
type VendorService struct {
	vendors domain.VendorRepository
}

// NewVendorService creates a service over the vendor repository.
func NewVendorService(vendors domain.VendorRepository) *VendorService {
	return &VendorService{vendors: vendors}
}

// Profile returns the caller's vendor record.
func (s *VendorService) Profile(ctx context.Context, userID string) (domain.Vendor, error) {
	return s.vendors.GetByUser(ctx, userID)
}

// UpdateProfile applies a partial update to the caller's vendor profile.
// Operational fields (commission rate, counters, active flag) are not
// editable through this path.
func (s *VendorService) UpdateProfile(ctx context.Context, userID string, patch domain.VendorPatch) (domain.Vendor, error) {
	vendor, err := s.vendors.GetByUser(ctx, userID)
	if err != nil {
		return domain.Vendor{}, err
	}

	vendor.ApplyPatch(patch)

	if err := s.vendors.Update(ctx, vendor); err != nil {
		return domain.Vendor{}, fmt.Errorf("updating vendor: %w", err)
	}

	return vendor, nil
}

// DashboardStats are the operational counters shown on the vendor
// dashboard. Product and sales totals are maintained by the product and
// order subsystems; this service only reads them.
type DashboardStats struct {
	TotalProducts int
	TotalSales    decimal.Decimal
	Rating        float64
	ReviewCount   int
}

// Dashboard pairs the vendor record with its operational counters.
type Dashboard struct {
	Vendor domain.Vendor
	Stats  DashboardStats
}

// Dashboard returns the caller's vendor record and counters.
func (s *VendorService) Dashboard(ctx context.Context, userID string) (Dashboard, error) {
	vendor, err := s.vendors.GetByUser(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Vendor: vendor,
		Stats: DashboardStats{
			TotalProducts: vendor.TotalProducts,
			TotalSales:    vendor.TotalSales,
			Rating:        vendor.Rating,
			ReviewCount:   vendor.ReviewCount,
		},
	}, nil
}
