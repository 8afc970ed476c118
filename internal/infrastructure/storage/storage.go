// Package storage provides the key-value persistence port for the workshop
// collections and its backends. Every collection is stored as one JSON value
// under a fixed string key; callers always read and write whole values
// (last write wins, no merging).
package storage

import "context"

// KVStore is the injectable storage port. Implementations must treat values
// as opaque bytes.
type KVStore interface {
	// Get returns the value stored under key. found is false when the key
	// has never been written (or was removed).
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
