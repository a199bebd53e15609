// Package cachemanager provides the in-memory caches used by the registrar.
package cachemanager

// CacheManager is a keyed cache with a per-instance default TTL.
type CacheManager[K ~string, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Flush()
	ItemCount() int
}
