package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/filologbot/filolog/internal/ledger/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Open connects to the ledger database selected by the DSN, applies pending
// migrations, and returns the database handle together with the matching
// Repository implementation.
//
// A postgres:// or postgresql:// DSN selects PostgreSQL; anything else is
// treated as an SQLite path or file: URI.
func Open(ctx context.Context, dsn string) (*sql.DB, Repository, error) {
	driver, dialect, dir := "sqlite", "sqlite3", "sqlite"
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver, dialect, dir = "pgx", "postgres", "postgres"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	if err := runMigrations(ctx, db, dialect, dir); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate ledger database: %w", err)
	}

	if driver == "pgx" {
		return db, NewPostgresRepository(db), nil
	}
	return db, NewSQLiteRepository(db), nil
}

func runMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, dir)
}
