// Package cache provides caching of rendered annotation output. The
// preview server re-renders on every request; a cache in front of it
// makes repeated loads of large pages cheap.
package cache

import (
	"context"
	"time"
)

// Entry is one cached render: the encoded bytes plus the MIME type they
// were produced under, so a hit can be served without re-deriving it.
type Entry struct {
	Data        []byte
	ContentType string
}

// Cache stores render entries under string keys with an optional
// time-to-live.
type Cache interface {
	// Get retrieves an entry. The bool reports whether the key was found
	// and fresh.
	Get(ctx context.Context, key string) (Entry, bool, error)

	// Set stores an entry. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, e Entry, ttl time.Duration) error

	// Delete removes an entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
