// Package sqlite implements domain.Preferences on a SQLite database.
//
// The schema is managed by goose migrations embedded in the binary and the
// database is opened through sqlx with the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"milsabores/internal/domain"
	"milsabores/internal/store/sqlite/migrations"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Prefs stores preferences in the preferences table.
type Prefs struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the database at dsn and migrates it.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, dsn string) (*Prefs, error) {
	db, err := sqlx.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open preferences db: %w", err)
	}
	// One connection: SQLite has a single writer and every ":memory:"
	// connection would otherwise get its own database.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate preferences db: %w", err)
	}
	return New(db), nil
}

// New wraps an already migrated database.
func New(db *sqlx.DB) *Prefs {
	return &Prefs{db: db}
}

// RunMigrations applies all pending migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (p *Prefs) Get(ctx context.Context, space, key string) (string, bool, error) {
	var value string
	err := p.db.GetContext(ctx, &value,
		`SELECT value FROM preferences WHERE space = ? AND key = ?`, space, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get preference[%s/%s]: %w", space, key, err)
	}
	return value, true, nil
}

func (p *Prefs) Set(ctx context.Context, space, key, value string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO preferences (space, key, value) VALUES (?, ?, ?)
		ON CONFLICT(space, key) DO UPDATE SET value = excluded.value
	`, space, key, value)
	if err != nil {
		return fmt.Errorf("failed to set preference[%s/%s]: %w", space, key, err)
	}
	return nil
}

func (p *Prefs) Delete(ctx context.Context, space, key string) error {
	_, err := p.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE space = ? AND key = ?`, space, key)
	if err != nil {
		return fmt.Errorf("failed to delete preference[%s/%s]: %w", space, key, err)
	}
	return nil
}

// Close closes the underlying database.
func (p *Prefs) Close() error {
	return p.db.Close()
}

// Compile-time assertion that Prefs implements domain.Preferences.
var _ domain.Preferences = (*Prefs)(nil)
