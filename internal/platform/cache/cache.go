// Package cache provides an in-memory TTL cache keyed by operation and parameters.
// Entries expire lazily: an expired entry is removed the next time it is read
package cache

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"portfolio/internal/platform/logger"
	ptime "portfolio/internal/platform/time"
)

type entry struct {
	value    any
	storedAt time.Time
	ttl      time.Duration
}

// Cache is a mutex guarded map of entries. Construct once and share by pointer
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   ptime.Clock
	log     logger.Logger
}

// Option configures a Cache
type Option func(*Cache)

// WithClock swaps the wall clock, mainly for tests
func WithClock(c ptime.Clock) Option {
	return func(ca *Cache) {
		if c != nil {
			ca.clock = c
		}
	}
}

// New returns an empty cache on the system clock
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: map[string]entry{},
		clock:   ptime.System,
		log:     *logger.Named("cache"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Key composes an operation name with a deterministic serialization of params.
// nil params yield the bare operation name
func Key(op string, params any) string {
	if params == nil {
		return op
	}
	b, err := json.Marshal(params)
	if err != nil {
		return op
	}
	return op + "_" + string(b)
}

// Get returns the stored value when present and not older than its ttl.
// An expired entry is evicted and reported as a miss
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key)
}

func (c *Cache) getLocked(key string) (any, bool) {
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.clock.Now().Sub(e.storedAt) > e.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key, overwriting any previous entry
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, storedAt: c.clock.Now(), ttl: ttl}
	c.mu.Unlock()
}

// Has reports whether key holds a live entry, evicting it if expired
func (c *Cache) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Len reports the number of stored entries, expired ones included until read
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Keys lists stored keys in sorted order, expired ones included until read
func (c *Cache) Keys() []string {
	c.mu.Lock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	c.mu.Unlock()
	slices.Sort(keys)
	return keys
}

// Remember returns the cached value for key or calls load and stores its result.
// Errors are returned as is and never cached
func Remember[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if out, ok := v.(T); ok {
			logger.C(ctx).Debug().Str("key", key).Msg("cache hit")
			return out, nil
		}
		c.log.Warn().Str("key", key).Msg("cache entry has unexpected type; reloading")
	}
	out, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, out, ttl)
	logger.C(ctx).Debug().Str("key", key).Dur("ttl", ttl).Msg("cache store")
	return out, nil
}
