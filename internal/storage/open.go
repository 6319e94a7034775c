package storage

import (
	"context"
	"fmt"
	"io"

	"shopuniverse/internal/config"
	"shopuniverse/internal/db"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the store selected by cfg.StoreDriver. The returned closer
// releases the database handle for the postgres driver.
func Open(ctx context.Context, cfg *config.Config) (Store, io.Closer, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return NewMemoryStore(), nopCloser{}, nil
	case config.DriverFile:
		s, err := NewFileStore(cfg.StoreDir)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	case config.DriverPostgres:
		database, err := db.NewDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		return NewSQLStore(database), database, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrInvalidConfig, cfg.StoreDriver)
	}
}
