// Package cache provides response caching for the travel API clients.
//
// Cached entries are opaque byte slices with a per-entry time-to-live.
// Several backends are available:
//   - FileCache: entries on disk, for CLI usage
//   - RedisCache: shared cache for multi-process deployments
//   - BoltCache: single-file embedded store
//   - NullCache: caching disabled
//
// Keys are arbitrary strings; use [Key] to derive a collision-safe key from
// request components.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned by backends whose underlying store has been closed.
var ErrClosed = errors.New("cache closed")

// Cache is the interface all cache backends implement.
//
// Get reports a miss with (nil, false, nil); expired entries are treated as
// misses. A ttl of 0 passed to Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
