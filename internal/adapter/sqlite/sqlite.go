// Package sqlite persists applications, vendors, and the identity view
// in a single SQLite database. Keeping all three in one database is what
// lets the approval provisioner commit its cross-entity writes in one
// transaction.
package sqlite

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // Register SQLite driver.
)

//go:embed migrations/*.sql
var migrations embed.FS

// DB wraps the shared database handle the repositories are built on.
type DB struct {
	db *sql.DB
}

// Open opens a SQLite database, runs migrations, and returns a ready handle.
func Open(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Enable foreign keys (off by default in SQLite).
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return OpenFromDB(db)
}

// OpenFromDB wraps an existing database connection, runs migrations, and
// returns a ready handle. Use this when the *sql.DB has been
// pre-configured (e.g., with otelsql instrumentation).
func OpenFromDB(db *sql.DB) (*DB, error) {
	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return &DB{db: db}, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// SQL returns the underlying database connection for use by other
// adapters (e.g., river).
func (d *DB) SQL() *sql.DB {
	return d.db
}

// Applications returns the application repository over this database.
func (d *DB) Applications() *ApplicationRepository {
	return &ApplicationRepository{db: d.db}
}

// Vendors returns the vendor repository over this database.
func (d *DB) Vendors() *VendorRepository {
	return &VendorRepository{db: d.db}
}

// Identity returns the identity store over this database.
func (d *DB) Identity() *IdentityStore {
	return &IdentityStore{db: d.db}
}

// Provisioner returns the transactional provisioner over this database.
func (d *DB) Provisioner() *Provisioner {
	return &Provisioner{db: d.db}
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}

const timeFormat = "2006-01-02T15:04:05.000Z"

// isUniqueViolation checks if a SQLite error is a UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// statusSet renders an IN (...) clause fragment and its args for a set
// of allowed source statuses.
func statusSet(statuses []string) (string, []any) {
	placeholders := make([]string, len(statuses))
	args := make([]any, len(statuses))
	for i, s := range statuses {
		placeholders[i] = "?"
		args[i] = s
	}
	return strings.Join(placeholders, ", "), args
}
