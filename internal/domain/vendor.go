package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission rate bounds, in percent. The default applies when an admin
// approves without an override.
var (
	MinCommissionRate     = decimal.Zero
	MaxCommissionRate     = decimal.NewFromInt(50)
	DefaultCommissionRate = decimal.NewFromInt(10)
)

// ValidCommissionRate reports whether rate lies within [0, 50].
func ValidCommissionRate(rate decimal.Decimal) bool {
	return rate.GreaterThanOrEqual(MinCommissionRate) && rate.LessThanOrEqual(MaxCommissionRate)
}

// Vendor is the provisioned seller account created when an application
// is approved. At most one vendor exists per user; its existence is the
// authoritative signal that the user may act as a seller.
type Vendor struct {
	ID       string
	UserID   string
	Business BusinessProfile
	LogoURL  string

	CommissionRate decimal.Decimal
	Active         bool
	TotalProducts  int
	TotalSales     decimal.Decimal
	Rating         float64
	ReviewCount    int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewVendor provisions a vendor from an approved application, copying
// its business profile. Creation is a side effect of exactly one
// lifecycle transition; there is no general-purpose vendor creation.
func NewVendor(id string, app Application, commissionRate decimal.Decimal) Vendor {
	now := time.Now().UTC()
	return Vendor{
		ID:             id,
		UserID:         app.UserID,
		Business:       app.Business,
		CommissionRate: commissionRate,
		Active:         true,
		TotalSales:     decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// VendorPatch is a partial update of a vendor's own profile. Same
// convention as ApplicationPatch: nil leaves a field unchanged.
// Operational fields (commission, counters, active flag) are not
// vendor-editable.
type VendorPatch struct {
	BusinessName        *string
	BusinessDescription *string
	Address             *Address
	Phone               *string
	Email               *string
	Website             *string
	Social              *SocialLinks
	LogoURL             *string
}

// ApplyPatch overwrites the fields provided in the patch and bumps UpdatedAt.
func (v *Vendor) ApplyPatch(p VendorPatch) {
	if p.BusinessName != nil {
		v.Business.Name = *p.BusinessName
	}
	if p.BusinessDescription != nil {
		v.Business.Description = *p.BusinessDescription
	}
	if p.Address != nil {
		v.Business.Address = *p.Address
	}
	if p.Phone != nil {
		v.Business.Phone = *p.Phone
	}
	if p.Email != nil {
		v.Business.Email = *p.Email
	}
	if p.Website != nil {
		v.Business.Website = *p.Website
	}
	if p.Social != nil {
		v.Business.Social = *p.Social
	}
	if p.LogoURL != nil {
		v.LogoURL = *p.LogoURL
	}
	v.UpdatedAt = time.Now().UTC()
}
