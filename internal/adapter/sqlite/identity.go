package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/neomorfeo/vendiq/internal/domain"
)

// Compile-time check: IdentityStore implements the domain port.
var _ domain.IdentityStore = (*IdentityStore)(nil)

// IdentityStore implements the read side of domain.IdentityStore over
// the local users table. Account registration and authentication are
// owned elsewhere; this subsystem only reads roles. The one mutation it
// performs — promotion to vendor — happens inside the Provisioner's
// approval transaction, never through this type.
type IdentityStore struct {
	db *sql.DB
}

const userColumns = `id, username, email, role, is_admin, is_vendor, created_at, updated_at`

func (s *IdentityStore) GetUser(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	var isAdmin, isVendor int
	var role, createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Username, &u.Email, &role, &isAdmin, &isVendor, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("scanning user: %w", err)
	}

	u.Role = domain.Role(role)
	u.IsAdmin = isAdmin != 0
	u.IsVendor = isVendor != 0
	u.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	u.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)

	return u, nil
}

// SeedUser inserts a user row. Used by tests and local bootstrapping;
// production identity rows arrive through the account subsystem.
func (s *IdentityStore) SeedUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC().Format(timeFormat)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, string(u.Role),
		boolToInt(u.IsAdmin), boolToInt(u.IsVendor), now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}
