// Package migrations applies the embedded schema migrations with goose.
// The schema must be in place before the service starts serving traffic.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/smoretta/books-api/internal/config"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate runs all pending migrations on db. The goose dialect follows the
// configured driver ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	dialect := driver
	if dialect == "" {
		dialect = config.DriverPostgres
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
