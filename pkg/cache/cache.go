// Package cache provides pluggable storage backends for HTTP response caching.
//
// Registry clients store raw response bytes under namespaced keys so that
// repeated runs don't hammer PyPI or the npm registry. Three backends are
// provided:
//
//   - [FileCache]: on-disk entries under ~/.cache/readmerator/ (default)
//   - [RedisCache]: shared Redis instance for CI or multi-machine setups
//   - [NullCache]: no-op backend used by --no-cache
//
// All backends implement [Cache]. Entries carry a TTL; expired entries are
// treated as misses. Keys are hashed before hitting the filesystem, so any
// string (URLs included) is a safe key.
package cache

import (
	"context"
	"time"
)

// Cache is the interface implemented by all storage backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss;
	// expired entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 means the entry
	// never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
