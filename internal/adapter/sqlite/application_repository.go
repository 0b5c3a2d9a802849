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

// Compile-time check: ApplicationRepository implements the domain port.
var _ domain.ApplicationRepository = (*ApplicationRepository)(nil)

// ApplicationRepository implements domain.ApplicationRepository using SQLite.
type ApplicationRepository struct {
	db *sql.DB
}

const applicationColumns = `id, user_id, business_name, business_description,
	street, city, state, zip_code, country, phone, email,
	registration_number, tax_id, license_url, website, social,
	bank_name, account_number, routing_number, holder_name,
	plan, expected_monthly_revenue, product_categories,
	submission_notes, documents, status, admin_notes,
	reviewed_by, reviewed_at, created_at, updated_at`

func (r *ApplicationRepository) Create(ctx context.Context, a domain.Application) error {
	social, categories, documents, err := encodeApplicationJSON(a)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO applications (`+applicationColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.Business.Name, a.Business.Description,
		a.Business.Address.Street, a.Business.Address.City, a.Business.Address.State,
		a.Business.Address.ZipCode, a.Business.Address.Country,
		a.Business.Phone, a.Business.Email,
		a.Business.RegistrationNumber, a.Business.TaxID, a.Business.LicenseURL,
		a.Business.Website, social,
		a.Business.Bank.BankName, a.Business.Bank.AccountNumber,
		a.Business.Bank.RoutingNumber, a.Business.Bank.HolderName,
		string(a.Plan), a.ExpectedMonthlyRevenue.String(), categories,
		a.SubmissionNotes, documents, string(a.Status), a.AdminNotes,
		a.ReviewedBy, nullableTime(a.ReviewedAt),
		a.CreatedAt.Format(timeFormat), a.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{UserID: a.UserID, Reason: "user already has an application"}
		}
		return fmt.Errorf("inserting application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (domain.Application, error) {
	return scanApplication(r.db.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id,
	))
}

func (r *ApplicationRepository) GetByUser(ctx context.Context, userID string) (domain.Application, error) {
	return scanApplication(r.db.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE user_id = ?`, userID,
	))
}

func (r *ApplicationRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Application, int, error) {
	where := ``
	var args []any
	if filter.Status != nil {
		where = ` WHERE status = ?`
		args = append(args, string(*filter.Status))
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM applications`+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting applications: %w", err)
	}

	query := `SELECT ` + applicationColumns + ` FROM applications` + where +
		` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing applications: %w", err)
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, a)
	}

	return apps, total, rows.Err()
}

// Update persists owner edits to the business payload. The write is
// conditional on the stored status still being "pending" so an edit
// racing an admin decision cannot clobber it.
func (r *ApplicationRepository) Update(ctx context.Context, a domain.Application) error {
	social, categories, documents, err := encodeApplicationJSON(a)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE applications SET
			business_name = ?, business_description = ?,
			street = ?, city = ?, state = ?, zip_code = ?, country = ?,
			phone = ?, email = ?, registration_number = ?, tax_id = ?,
			license_url = ?, website = ?, social = ?,
			bank_name = ?, account_number = ?, routing_number = ?, holder_name = ?,
			plan = ?, expected_monthly_revenue = ?, product_categories = ?,
			submission_notes = ?, documents = ?, updated_at = ?
		 WHERE id = ? AND status = ?`,
		a.Business.Name, a.Business.Description,
		a.Business.Address.Street, a.Business.Address.City, a.Business.Address.State,
		a.Business.Address.ZipCode, a.Business.Address.Country,
		a.Business.Phone, a.Business.Email,
		a.Business.RegistrationNumber, a.Business.TaxID,
		a.Business.LicenseURL, a.Business.Website, social,
		a.Business.Bank.BankName, a.Business.Bank.AccountNumber,
		a.Business.Bank.RoutingNumber, a.Business.Bank.HolderName,
		string(a.Plan), a.ExpectedMonthlyRevenue.String(), categories,
		a.SubmissionNotes, documents, time.Now().UTC().Format(timeFormat),
		a.ID, string(domain.StatusPending),
	)
	if err != nil {
		return fmt.Errorf("updating application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		// Distinguish an absent row from one that moved out of pending.
		current, getErr := r.GetByID(ctx, a.ID)
		if getErr != nil {
			return getErr
		}
		return &domain.InvalidStateError{Op: "update", Current: current.Status}
	}

	return nil
}

// socialJSON, documentJSON mirror the domain structs with stable JSON keys.
type socialJSON struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

type documentJSON struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func encodeApplicationJSON(a domain.Application) (social, categories, documents string, err error) {
	s, err := json.Marshal(socialJSON(a.Business.Social))
	if err != nil {
		return "", "", "", fmt.Errorf("encoding social links: %w", err)
	}

	cats := a.ProductCategories
	if cats == nil {
		cats = []string{}
	}
	c, err := json.Marshal(cats)
	if err != nil {
		return "", "", "", fmt.Errorf("encoding categories: %w", err)
	}

	docs := make([]documentJSON, len(a.Documents))
	for i, d := range a.Documents {
		docs[i] = documentJSON(d)
	}
	dj, err := json.Marshal(docs)
	if err != nil {
		return "", "", "", fmt.Errorf("encoding documents: %w", err)
	}

	return string(s), string(c), string(dj), nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (domain.Application, error) {
	var a domain.Application
	var social, categories, documents string
	var plan, revenue, status, createdAt, updatedAt string
	var reviewedAt sql.NullString

	err := row.Scan(
		&a.ID, &a.UserID, &a.Business.Name, &a.Business.Description,
		&a.Business.Address.Street, &a.Business.Address.City, &a.Business.Address.State,
		&a.Business.Address.ZipCode, &a.Business.Address.Country,
		&a.Business.Phone, &a.Business.Email,
		&a.Business.RegistrationNumber, &a.Business.TaxID, &a.Business.LicenseURL,
		&a.Business.Website, &social,
		&a.Business.Bank.BankName, &a.Business.Bank.AccountNumber,
		&a.Business.Bank.RoutingNumber, &a.Business.Bank.HolderName,
		&plan, &revenue, &categories,
		&a.SubmissionNotes, &documents, &status, &a.AdminNotes,
		&a.ReviewedBy, &reviewedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Application{}, domain.ErrApplicationNotFound
		}
		return domain.Application{}, fmt.Errorf("scanning application: %w", err)
	}

	var sj socialJSON
	if err := json.Unmarshal([]byte(social), &sj); err != nil {
		return domain.Application{}, fmt.Errorf("decoding social links: %w", err)
	}
	a.Business.Social = domain.SocialLinks(sj)

	if err := json.Unmarshal([]byte(categories), &a.ProductCategories); err != nil {
		return domain.Application{}, fmt.Errorf("decoding categories: %w", err)
	}

	var docs []documentJSON
	if err := json.Unmarshal([]byte(documents), &docs); err != nil {
		return domain.Application{}, fmt.Errorf("decoding documents: %w", err)
	}
	if len(docs) > 0 {
		a.Documents = make([]domain.Document, len(docs))
		for i, d := range docs {
			a.Documents[i] = domain.Document(d)
		}
	}

	a.Plan = domain.Plan(plan)
	a.ExpectedMonthlyRevenue, err = decimal.NewFromString(revenue)
	if err != nil {
		return domain.Application{}, fmt.Errorf("decoding revenue: %w", err)
	}
	a.Status = domain.Status(status)
	if reviewedAt.Valid {
		t, _ := time.Parse(timeFormat, reviewedAt.String)
		a.ReviewedAt = &t
	}
	a.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	a.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)

	return a, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(timeFormat)
}
