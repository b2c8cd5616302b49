// Package migrations embeds the goose SQL migrations for both sides of the
// application: the server's Postgres schema and the client's on-device
// SQLite schema. Each side runs its own embedded set with the matching
// goose dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql
var serverMigrations embed.FS

//go:embed client/*.sql
var clientMigrations embed.FS

// MigrateServer applies the pending Postgres migrations.
func MigrateServer(db *sql.DB) error {
	return migrate(db, serverMigrations, "server", "pgx")
}

// MigrateClient applies the pending SQLite migrations to the local store.
func MigrateClient(db *sql.DB) error {
	return migrate(db, clientMigrations, "client", "sqlite3")
}

func migrate(db *sql.DB, fsys embed.FS, dir, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(fsys)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
