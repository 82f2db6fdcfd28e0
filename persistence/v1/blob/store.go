package blob

import (
	"context"
	"time"
)

// Store is a key-value blob store: one serialized blob per key, whole blob
// overwrites, last write wins.
type Store interface {
	// Get returns the blob at key; the bool reports whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the blob at key with no expiry.
	Set(ctx context.Context, key, value string) error
	// SetTTL overwrites the blob at key and expires it after ttl.
	SetTTL(ctx context.Context, key, value string, ttl time.Duration) error
	// Del removes the blob at key; absent keys are not an error.
	Del(ctx context.Context, key string) error
}
