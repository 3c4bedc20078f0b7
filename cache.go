// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package susp

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is the identity store mapping a caller-supplied stable key to the
// single pending computation created for that logical data request.
//
// The crux contract: a key maps to at most one live computation, and later
// lookups with the same key return the computation created first, no matter
// how many fresh input values re-derive it. Without this, every render pass
// would mint a new promise from the same synchronous value, the scheduler
// would see an ever-changing suspension source, and the boundary would
// never stabilize.
//
// A Cache is keyed, mutable, scheduler-scoped state. Access follows the
// single-threaded cooperative render model: create-if-absent idempotence,
// no lock. A Cache must not be shared by concurrently ticking Schedulers.
type Cache struct {
	entries map[string]any
	bounded *lru.LRU[string, any]
	metrics *cacheMetrics
}

type cacheConfig struct {
	capacity int
	ttl      time.Duration
	registry prometheus.Registerer
}

// CacheOption configures a [Cache].
type CacheOption func(*cacheConfig)

// WithCapacity bounds the cache to n entries with LRU eviction.
// An evicted entry that is still demanded re-suspends its boundary once on
// the next resolution attempt; size the capacity above the working set of
// concurrently mounted keys.
func WithCapacity(n int) CacheOption {
	return func(cfg *cacheConfig) { cfg.capacity = n }
}

// WithTTL expires entries d after creation.
func WithTTL(d time.Duration) CacheOption {
	return func(cfg *cacheConfig) { cfg.ttl = d }
}

// NewCache creates an identity cache. The default store is an unbounded
// map; [WithCapacity] or [WithTTL] switch it to an expirable LRU.
func NewCache(opts ...CacheOption) *Cache {
	var cfg cacheConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Cache{}
	if cfg.registry != nil {
		c.metrics = newCacheMetrics(cfg.registry)
	}
	if cfg.capacity > 0 || cfg.ttl > 0 {
		c.bounded = lru.NewLRU(cfg.capacity, func(string, any) {
			c.metrics.eviction()
		}, cfg.ttl)
	} else {
		c.entries = make(map[string]any)
	}
	return c
}

func (c *Cache) lookup(key string) (any, bool) {
	if c.bounded != nil {
		return c.bounded.Get(key)
	}
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache) store(key string, v any) {
	if c.bounded != nil {
		c.bounded.Add(key, v)
		return
	}
	c.entries[key] = v
}

// GetOrCreate returns the computation stored under key, invoking factory
// to create and store one only if the key is absent. An existing entry
// wins unconditionally: factory is invoked at most once per live key, and
// whatever value reached the caller's hands this render is ignored in
// favor of the cached computation.
//
// Reusing a key across incompatible payload types is a key-contract
// violation and panics.
func GetOrCreate[T any](c *Cache, key string, factory func() *Promise[T]) *Promise[T] {
	if v, ok := c.lookup(key); ok {
		p, ok := v.(*Promise[T])
		if !ok {
			panic(fmt.Sprintf("susp: key %q reused across incompatible payload types", key))
		}
		c.metrics.hit()
		return p
	}
	c.metrics.miss()
	p := factory()
	c.store(key, p)
	return p
}

// Adapt forces a Streamable into promise form through the cache, so that
// repeated adaptation of freshly reconstructed synchronous values under
// a fixed key yields the one cached promise.
func Adapt[T any](c *Cache, key string, s Streamable[T]) *Promise[T] {
	if v, ok := s.Value(); ok {
		return GetOrCreate(c, key, func() *Promise[T] { return Resolved(v) })
	}
	p, ok := s.Promise()
	if !ok {
		panic("susp: Adapt on a zero Streamable")
	}
	return GetOrCreate(c, key, func() *Promise[T] { return p })
}

// Invalidate removes the entry stored under key. Callers invalidate when
// the logical request behind a key changes, so a stale computation never
// satisfies the new request. Absent keys are a no-op.
func (c *Cache) Invalidate(key string) {
	if c.bounded != nil {
		c.bounded.Remove(key)
	} else {
		delete(c.entries, key)
	}
	c.metrics.invalidation()
}

// Purge removes every entry.
func (c *Cache) Purge() {
	if c.bounded != nil {
		c.bounded.Purge()
		return
	}
	clear(c.entries)
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	if c.bounded != nil {
		return c.bounded.Len()
	}
	return len(c.entries)
}
