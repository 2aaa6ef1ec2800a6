package storage

import (
	"context"
)

// Store is a durable string key-value store, the server-side stand-in for
// the browser's local storage. Each key is written independently; there is
// no multi-key atomicity.
type Store interface {
	// Get returns the value for key, or model.ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any existing value
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
