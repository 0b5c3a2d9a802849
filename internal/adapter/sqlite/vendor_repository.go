package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/neomorfeo/vendiq/internal/domain"
)

// Compile-time check: VendorRepository implements the domain port.
var _ domain.VendorRepository = (*VendorRepository)(nil)

// VendorRepository implements domain.VendorRepository using SQLite.
// It has no Create: vendor rows are inserted only by the Provisioner as
// part of an approval transaction.
type VendorRepository struct {
	db *sql.DB
}

const vendorColumns = `id, user_id, business_name, business_description,
	street, city, state, zip_code, country, phone, email,
	registration_number, tax_id, license_url, website, social,
	bank_name, account_number, routing_number, holder_name,
	logo_url, commission_rate, active, total_products, total_sales,
	rating, review_count, created_at, updated_at`

func (r *VendorRepository) GetByID(ctx context.Context, id string) (domain.Vendor, error) {
	return scanVendor(r.db.QueryRowContext(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE id = ?`, id,
	))
}

func (r *VendorRepository) GetByUser(ctx context.Context, userID string) (domain.Vendor, error) {
	return scanVendor(r.db.QueryRowContext(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE user_id = ?`, userID,
	))
}

func (r *VendorRepository) Update(ctx context.Context, v domain.Vendor) error {
	social, err := json.Marshal(socialJSON(v.Business.Social))
	if err != nil {
		return fmt.Errorf("encoding social links: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE vendors SET
			business_name = ?, business_description = ?,
			street = ?, city = ?, state = ?, zip_code = ?, country = ?,
			phone = ?, email = ?, registration_number = ?, tax_id = ?,
			license_url = ?, website = ?, social = ?,
			bank_name = ?, account_number = ?, routing_number = ?, holder_name = ?,
			logo_url = ?, commission_rate = ?, active = ?,
			total_products = ?, total_sales = ?, rating = ?, review_count = ?,
			updated_at = ?
		 WHERE id = ?`,
		v.Business.Name, v.Business.Description,
		v.Business.Address.Street, v.Business.Address.City, v.Business.Address.State,
		v.Business.Address.ZipCode, v.Business.Address.Country,
		v.Business.Phone, v.Business.Email,
		v.Business.RegistrationNumber, v.Business.TaxID,
		v.Business.LicenseURL, v.Business.Website, string(social),
		v.Business.Bank.BankName, v.Business.Bank.AccountNumber,
		v.Business.Bank.RoutingNumber, v.Business.Bank.HolderName,
		v.LogoURL, v.CommissionRate.String(), boolToInt(v.Active),
		v.TotalProducts, v.TotalSales.String(), v.Rating, v.ReviewCount,
		time.Now().UTC().Format(timeFormat),
		v.ID,
	)
	if err != nil {
		return fmt.Errorf("updating vendor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVendorNotFound
	}

	return nil
}

func scanVendor(row rowScanner) (domain.Vendor, error) {
	var v domain.Vendor
	var social, commission, sales, createdAt, updatedAt string
	var active int

	err := row.Scan(
		&v.ID, &v.UserID, &v.Business.Name, &v.Business.Description,
		&v.Business.Address.Street, &v.Business.Address.City, &v.Business.Address.State,
		&v.Business.Address.ZipCode, &v.Business.Address.Country,
		&v.Business.Phone, &v.Business.Email,
		&v.Business.RegistrationNumber, &v.Business.TaxID, &v.Business.LicenseURL,
		&v.Business.Website, &social,
		&v.Business.Bank.BankName, &v.Business.Bank.AccountNumber,
		&v.Business.Bank.RoutingNumber, &v.Business.Bank.HolderName,
		&v.LogoURL, &commission, &active, &v.TotalProducts, &sales,
		&v.Rating, &v.ReviewCount, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Vendor{}, domain.ErrVendorNotFound
		}
		return domain.Vendor{}, fmt.Errorf("scanning vendor: %w", err)
	}

	var sj socialJSON
	if err := json.Unmarshal([]byte(social), &sj); err != nil {
		return domain.Vendor{}, fmt.Errorf("decoding social links: %w", err)
	}
	v.Business.Social = domain.SocialLinks(sj)

	v.CommissionRate, err = decimal.NewFromString(commission)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("decoding commission rate: %w", err)
	}
	v.TotalSales, err = decimal.NewFromString(sales)
	if err != nil {
		return domain.Vendor{}, fmt.Errorf("decoding total sales: %w", err)
	}
	v.Active = active != 0
	v.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	v.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)

	return v, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
