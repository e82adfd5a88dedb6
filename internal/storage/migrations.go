package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/misterclayt0n/stride/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies all pending migrations embedded in the migrations package.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations.FS)

	dialect := "sqlite3"
	if driver == driverLibsql {
		dialect = "turso"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
