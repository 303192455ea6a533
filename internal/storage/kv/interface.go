// Package kv implements the namespaced key-value store every Datarium
// component persists through. Values are opaque byte slices; callers encode
// JSON into them.
package kv

import "context"

// Repository is the persistence contract of the key-value store.
type Repository interface {
	// Get returns the value stored under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
