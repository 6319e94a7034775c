package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"shopuniverse/internal/config"
	"shopuniverse/internal/logger"

	_ "github.com/lib/pq"
)

const pingTimeout = 5 * time.Second

// NewDatabase opens the postgres database backing the SQL key-value store.
func NewDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	return newDatabaseWithDriver(ctx, "postgres", cfg.DSN())
}

func newDatabaseWithDriver(ctx context.Context, driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.FromCtx(ctx).Info("database connection established")
	return db, nil
}
