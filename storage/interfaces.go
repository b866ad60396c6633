package storage

import (
	"context"
	"time"
)

// DefaultTTL is how long a cached directory response stays fresh.
const DefaultTTL = 15 * time.Minute

// CacheEntry is one cached directory response.
type CacheEntry struct {
	Key       string    // endpoint + serialized params, stored to detect hash collisions
	Data      []byte    // raw JSON body
	Timestamp time.Time // when the response was stored
}

// ResponseCache stores raw directory responses keyed by endpoint and
// parameters. Implementations must be safe for concurrent use. Concurrent
// writers of the same key may both succeed; the last write wins.
type ResponseCache interface {
	// Get returns the cached data for key when it is younger than the TTL.
	// A stale or absent entry is reported as a miss, never as an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores data under key, overwriting any previous entry.
	Put(ctx context.Context, key string, data []byte) error
}
