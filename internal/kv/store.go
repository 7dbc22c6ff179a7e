// Package kv provides the persistent key-value store backing all
// collections. Values are whole serialized collections; a write
// replaces the full value for a key, and reads of absent keys report
// not-found rather than an error.
package kv

import "context"

// Store maps string keys to serialized collection payloads.
type Store interface {
	// Get returns the value for key. ok is false when the key is
	// absent; err reports storage failures only.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the full value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes the given keys. Absent keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	Close() error
}
