package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// ReadJSON decodes the value under key into dst. A missing key returns
// (false, nil) and leaves dst untouched.
func ReadJSON(ctx context.Context, s Store, key string, dst any) (bool, error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: key %s: %v", ErrMalformed, key, err)
	}
	return true, nil
}

func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
