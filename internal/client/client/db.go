package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/bankcli/internal/client/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories holds the local database opened by InitDatabase.
type Repositories struct {
	DB *sql.DB
}

// Close closes the underlying database.
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// RunMigrations applies the embedded goose migrations. It is safe to run on
// an up-to-date database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	goose.SetLogger(goose.NopLogger())
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite database at dsn and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Repositories{DB: db}, nil
}
