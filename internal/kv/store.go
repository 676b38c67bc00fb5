// Package kv defines the key-value capability every persistence backend
// implements, and the key scheme entities are stored under.
package kv

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// Entry is a single key/value pair returned by a prefix scan.
type Entry struct {
	Key   string
	Value json.RawMessage
}

// Store is a single-namespace key-value store. Implementations must be safe
// for concurrent use. Writes to a single key are atomic; there are no
// transactions across keys.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (json.RawMessage, error)
	// Upsert inserts or fully replaces the value stored under key.
	Upsert(ctx context.Context, key string, value json.RawMessage) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Scan returns every entry whose key starts with prefix, in no
	// particular order. The prefix is matched literally.
	Scan(ctx context.Context, prefix string) ([]Entry, error)
}
