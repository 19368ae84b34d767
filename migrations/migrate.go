// Package migrations embeds the SQL schema of go-shop-keeper and applies it
// with goose. Each supported driver has its own directory of migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	errNilDB             = errors.New("migration error: db is nil")
	errUnsupportedDriver = errors.New("migration error: unsupported driver")
)

// Migrate applies all pending migrations for driver ("pgx" or "sqlite3") and
// returns the number of migrations applied.
func Migrate(ctx context.Context, db *sql.DB, driver string) (int, error) {
	if db == nil {
		return 0, errNilDB
	}

	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return 0, err
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return 0, fmt.Errorf("migration error reading embedded files: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("migration error creating provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}

func dialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case "pgx":
		return goose.DialectPostgres, "postgres", nil
	case "sqlite3":
		return goose.DialectSQLite3, "sqlite", nil
	default:
		return "", "", fmt.Errorf("%w %q", errUnsupportedDriver, driver)
	}
}
