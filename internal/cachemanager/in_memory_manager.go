package cachemanager

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zjrosen/registrar/internal/log"
)

const DefaultExpiration = 5 * time.Minute
const DefaultCleanupInterval = 10 * time.Minute

// NewInMemoryCacheManager creates a go-cache backed manager. useCase names the
// cache in log lines. A non-positive ttl falls back to DefaultExpiration.
func NewInMemoryCacheManager[K ~string, V any](useCase string, ttl, cleanupInterval time.Duration) *InMemoryCacheManager[K, V] {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &InMemoryCacheManager[K, V]{
		useCase: useCase,
		cache:   gocache.New(ttl, cleanupInterval),
	}
}

// InMemoryCacheManager is the go-cache implementation of CacheManager.
type InMemoryCacheManager[K ~string, V any] struct {
	useCase string
	cache   *gocache.Cache
}

// Get retrieves an item from the cache by its key
func (c *InMemoryCacheManager[K, V]) Get(key K) (V, bool) {
	var zeroValue V

	value, found := c.cache.Get(string(key))
	if !found {
		log.Debug(log.CatCache, "cache miss", "cache", c.useCase, "key", key)
		return zeroValue, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error(log.CatCache, "wrong type assertion when getting value", "cache", c.useCase, "key", key)
		return zeroValue, false
	}

	log.Debug(log.CatCache, "cache hit", "cache", c.useCase, "key", key)
	return v, true
}

// Set stores value under key with the default TTL.
func (c *InMemoryCacheManager[K, V]) Set(key K, value V) {
	c.cache.SetDefault(string(key), value)
}

// Flush removes every item.
func (c *InMemoryCacheManager[K, V]) Flush() {
	if n := c.cache.ItemCount(); n > 0 {
		log.Debug(log.CatCache, "cache flushed", "cache", c.useCase, "items", n)
	}
	c.cache.Flush()
}

// ItemCount returns the number of cached items, including expired ones not
// yet cleaned up.
func (c *InMemoryCacheManager[K, V]) ItemCount() int {
	return c.cache.ItemCount()
}
