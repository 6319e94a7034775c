// Package storage is the durable key-value boundary of the storefront. Every
// value is an opaque serialized blob; JSON encoding lives in ReadJSON and
// WriteJSON.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrStorageUnavailable wraps every failure of the underlying medium.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrMalformed marks a stored value that does not decode into the expected shape.
	ErrMalformed = errors.New("malformed persisted state")
)

// Store persists blobs keyed by name. Get reports found=false for an absent key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Key suffixes of the four persisted collections.
const (
	KeyCart            = "cart"
	KeySessionUser     = "user"
	KeyOrders          = "orders"
	KeyRegisteredUsers = "users"
)

// KeySet is the resolved set of keys for one storefront namespace.
type KeySet struct {
	Cart            string
	SessionUser     string
	Orders          string
	RegisteredUsers string
}

func Keys(prefix string) KeySet {
	return KeySet{
		Cart:            prefix + KeyCart,
		SessionUser:     prefix + KeySessionUser,
		Orders:          prefix + KeyOrders,
		RegisteredUsers: prefix + KeyRegisteredUsers,
	}
}
