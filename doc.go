// Package lru provides a generic, fixed-capacity LRU cache.
//
// Two cache types are provided:
//
//   - [Cache]: the core LRU cache. It is not safe for concurrent use.
//   - [Locked]: a [Cache] behind a read-write mutex, with eviction
//     callbacks and memoization helpers.
//
// # Basic Usage
//
// Create a cache and store values:
//
//	cache := lru.MustNew[string, int](100)
//	cache.Put("key", 42)
//	value, found := cache.Get("key")
//
// [Cache.Get] and [Cache.Put] count as a use of the entry and move it to the
// most recently used position. [Cache.Contains] and [Cache.Peek] do not.
//
// # Eviction
//
// When a new key is added to a full cache, the least recently used entry is
// evicted first and handed back to the caller:
//
//	if k, v, evicted := cache.Put("other", 7); evicted {
//	    release(k, v)
//	}
//
// Updating an existing key never evicts.
//
// # Shared Caches
//
// Use [Locked] when several goroutines share one cache. Register a callback
// to be notified of evictions, for example to log them:
//
//	cache := lru.MustNewLocked[string, int](100)
//	cache.OnEvict(lru.LogEvictions[string, int](slog.Default()))
//
// Callbacks are invoked for capacity evictions, explicit removals via
// [Locked.Remove], and [Locked.Clear].
//
// # Memoization with GetOrSet
//
// Compute values on cache miss:
//
//	result, err := cache.GetOrSet("key", func() (int, error) {
//	    return expensiveComputation()
//	})
//
// [Locked.GetOrSetSingleflight] additionally collapses concurrent misses for
// the same key into one call to compute.
package lru
