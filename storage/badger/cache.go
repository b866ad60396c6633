package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/schoolfinder/storage"
)

// Cache is a storage.ResponseCache backed by BadgerDB.
type Cache struct {
	backend *Backend
	ttl     time.Duration
	now     func() time.Time
}

var _ storage.ResponseCache = (*Cache)(nil)

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithTTL sets how long entries stay fresh. Non-positive values are ignored.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock sets a custom clock (for testing).
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCache creates a response cache on top of an open backend.
func NewCache(backend *Backend, opts ...CacheOption) *Cache {
	c := &Cache{
		backend: backend,
		ttl:     storage.DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached body for key if it is younger than the TTL.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, storage.ErrEmptyCacheKey
	}
	if c.backend.IsClosed() {
		return nil, false, storage.ErrStorageClosed
	}

	var entry *storage.CacheEntry
	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeResponseKey(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			entry, err = storage.UnmarshalCacheEntry(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, false, err
	}

	if entry == nil || entry.Key != key {
		return nil, false, nil
	}
	if c.now().Sub(entry.Timestamp) >= c.ttl {
		return nil, false, nil
	}
	return entry.Data, true, nil
}

// Put stores data under key, stamped with the current time.
func (c *Cache) Put(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return storage.ErrEmptyCacheKey
	}
	if c.backend.IsClosed() {
		return storage.ErrStorageClosed
	}

	value := storage.MarshalCacheEntry(&storage.CacheEntry{
		Key:       key,
		Data:      data,
		Timestamp: c.now(),
	})
	return c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeResponseKey(key), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
