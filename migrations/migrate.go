// Package migrations embeds the goose migrations of both databases: the
// server's PostgreSQL schema and the client's SQLite cache.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// Dialect names the goose dialect and selects the migration set.
type Dialect string

const (
	Postgres Dialect = "pgx"
	SQLite   Dialect = "sqlite3"
)

var ErrUnknownDialect = errors.New("unknown migration dialect")

// dir returns the embedded directory holding the migrations of d.
func (d Dialect) dir() (string, error) {
	switch d {
	case Postgres:
		return "server", nil
	case SQLite:
		return "client", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, string(d))
	}
}

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, err := dialect.dir()
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
