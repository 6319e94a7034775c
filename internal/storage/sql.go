package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shopuniverse/internal/logger"

	"go.uber.org/zap"
)

// SQLStore keeps blobs in the kv_store table (see migrations/).
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_store WHERE key = $1`, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("kv get failed",
			zap.String("layer", "storage"),
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, false, fmt.Errorf("%w: get %s: %v", ErrStorageUnavailable, key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`, key, string(value))
	if err != nil {
		logger.FromCtx(ctx).Error("kv set failed",
			zap.String("layer", "storage"),
			zap.String("key", key),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: set %s: %v", ErrStorageUnavailable, key, err)
	}
	return nil
}
