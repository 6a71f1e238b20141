// Package sqlite writes and reads the embedded per-language dictionary store.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	// Registers the pure-Go "sqlite" driver.
	_ "modernc.org/sqlite"
)

const (
	driverName = "sqlite"

	tableEntries = "entries"

	// gooseVersionTable is goose's bookkeeping table. It is dropped after
	// migrating so the finished file only holds dictionary content.
	gooseVersionTable = "goose_db_version"
)

// entryColumns are the insertable columns of the entries table, in order.
var entryColumns = []string{
	"normalized", "term", "reading", "pronunciation",
	"forms", "pos", "definitions", "source", "metadata",
}

//go:embed migrations/*.sql
var embedMigrations embed.FS

// builder produces SQLite-flavoured statements.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Open opens the store at path. The handle is limited to one connection,
// which is what SQLite transactions on a single file need.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return db, nil
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrations fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
