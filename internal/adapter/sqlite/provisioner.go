package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/neomorfeo/vendiq/internal/domain"
)

// Compile-time check: Provisioner implements the domain port.
var _ domain.Provisioner = (*Provisioner)(nil)

// Provisioner commits the lifecycle engine's multi-entity writes in a
// single transaction. The application status write is a compare-and-swap:
// it only applies while the stored status is still in the allowed source
// set, so of two racing decisions exactly one commits and the loser
// rolls back having written nothing.
type Provisioner struct {
	db *sql.DB
}

// Approve writes the approved application, inserts the vendor, and
// promotes the owning user — commit or rollback together.
func (p *Provisioner) Approve(ctx context.Context, app domain.Application, vendor domain.Vendor, from []domain.Status) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning approval transaction: %w", err)
	}
	defer tx.Rollback()

	if err := p.casLifecycle(ctx, tx, app, domain.EventApprove, from); err != nil {
		return err
	}

	if err := insertVendor(ctx, tx, vendor); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE users SET role = ?, is_vendor = 1, updated_at = ? WHERE id = ?`,
		string(domain.RoleVendor), app.UpdatedAt.Format(timeFormat), app.UserID,
	)
	if err != nil {
		return fmt.Errorf("promoting user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing approval: %w", err)
	}
	return nil
}

// Transition writes the application's lifecycle fields with the
// compare-and-swap guard, without provisioning anything.
func (p *Provisioner) Transition(ctx context.Context, app domain.Application, event domain.Event, from []domain.Status) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transition: %w", err)
	}
	defer tx.Rollback()

	if err := p.casLifecycle(ctx, tx, app, event, from); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transition: %w", err)
	}
	return nil
}

// casLifecycle performs the conditional lifecycle-field write. Zero rows
// affected means the stored status left the allowed source set; the
// current row is re-read inside the transaction to tell NotFound apart
// from a lost race.
func (p *Provisioner) casLifecycle(ctx context.Context, tx *sql.Tx, app domain.Application, event domain.Event, from []domain.Status) error {
	statuses := make([]string, len(from))
	for i, s := range from {
		statuses[i] = string(s)
	}
	in, inArgs := statusSet(statuses)

	args := []any{
		string(app.Status), app.AdminNotes, app.ReviewedBy,
		nullableTime(app.ReviewedAt), app.UpdatedAt.Format(timeFormat),
		app.ID,
	}
	args = append(args, inArgs...)

	result, err := tx.ExecContext(ctx,
		`UPDATE applications
		 SET status = ?, admin_notes = ?, reviewed_by = ?, reviewed_at = ?, updated_at = ?
		 WHERE id = ? AND status IN (`+in+`)`, args...,
	)
	if err != nil {
		return fmt.Errorf("writing lifecycle fields: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		var current string
		err := tx.QueryRowContext(ctx,
			`SELECT status FROM applications WHERE id = ?`, app.ID,
		).Scan(&current)
		if err == sql.ErrNoRows {
			return domain.ErrApplicationNotFound
		}
		if err != nil {
			return fmt.Errorf("reading current status: %w", err)
		}
		return &domain.TransitionError{Event: event, Current: domain.Status(current)}
	}

	return nil
}

func insertVendor(ctx context.Context, tx *sql.Tx, v domain.Vendor) error {
	social, err := json.Marshal(socialJSON(v.Business.Social))
	if err != nil {
		return fmt.Errorf("encoding social links: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO vendors (`+vendorColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.UserID, v.Business.Name, v.Business.Description,
		v.Business.Address.Street, v.Business.Address.City, v.Business.Address.State,
		v.Business.Address.ZipCode, v.Business.Address.Country,
		v.Business.Phone, v.Business.Email,
		v.Business.RegistrationNumber, v.Business.TaxID, v.Business.LicenseURL,
		v.Business.Website, string(social),
		v.Business.Bank.BankName, v.Business.Bank.AccountNumber,
		v.Business.Bank.RoutingNumber, v.Business.Bank.HolderName,
		v.LogoURL, v.CommissionRate.String(), boolToInt(v.Active),
		v.TotalProducts, v.TotalSales.String(), v.Rating, v.ReviewCount,
		v.CreatedAt.Format(timeFormat), v.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{UserID: v.UserID, Reason: "user is already a vendor"}
		}
		return fmt.Errorf("inserting vendor: %w", err)
	}
	return nil
}
