package lru

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// OnEvictFunc is a function that is called when an entry is evicted from the cache.
type OnEvictFunc[K comparable, V any] func(key K, value V)

// Locked is a [Cache] guarded by a single read-write mutex, so it is safe for
// concurrent use. Operations that reorder entries (Get, Put, GetOrSet) take
// the write lock; pure lookups take the read lock.
// A Locked must be created with [NewLocked] or [MustNewLocked]; the zero value is not ready for use.
type Locked[K comparable, V any] struct {
	mu      sync.RWMutex
	cache   *Cache[K, V]
	onEvict OnEvictFunc[K, V]
	sfGroup singleflight.Group
}

// NewLocked creates a new concurrency-safe LRU cache with the given capacity.
// The capacity must be greater than zero, otherwise [ErrInvalidCapacity] is returned.
func NewLocked[K comparable, V any](capacity int) (*Locked[K, V], error) {
	cache, err := New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	return &Locked[K, V]{cache: cache}, nil
}

// MustNewLocked creates a new concurrency-safe LRU cache with the given capacity.
// It panics if the capacity is less than or equal to zero.
func MustNewLocked[K comparable, V any](capacity int) *Locked[K, V] {
	cache, err := NewLocked[K, V](capacity)
	if err != nil {
		panic(err)
	}
	return cache
}

// Get retrieves a value from the cache by key and marks it as most recently used.
func (l *Locked[K, V]) Get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.cache.Get(key)
}

// Peek retrieves a value from the cache by key without updating its position.
func (l *Locked[K, V]) Peek(key K) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.cache.Peek(key)
}

// Put adds or updates an item in the cache. If a new key pushes out the least
// recently used entry, that entry is returned and passed to the eviction callback.
func (l *Locked[K, V]) Put(key K, value V) (evictedKey K, evictedVal V, evicted bool) {
	l.mu.Lock()
	evictedKey, evictedVal, evicted = l.cache.Put(key, value)
	onEvict := l.onEvict
	l.mu.Unlock()

	if evicted && onEvict != nil {
		onEvict(evictedKey, evictedVal)
	}
	return
}

// GetOrSet retrieves a value from the cache by key, or computes and sets it if not present.
// The compute function is only called if the key is not present in the cache.
// Note: if multiple goroutines call GetOrSet concurrently for the same missing key,
// compute may be called multiple times but only one result will be cached.
func (l *Locked[K, V]) GetOrSet(key K, compute func() (V, error)) (V, error) {
	if val, found := l.Get(key); found {
		return val, nil
	}

	// compute outside the lock so compute may call back into the cache
	val, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}

	return l.setIfAbsent(key, val), nil
}

// GetOrSetSingleflight retrieves a value from the cache by key, or computes and sets it if not present.
// Unlike [Locked.GetOrSet], concurrent callers for the same missing key share a
// single call to compute and all receive its result.
//
// Keys are grouped by their %v formatting, so distinct keys must format
// differently. Key types where that does not hold, such as structs whose
// fields print alike, should use [Locked.GetOrSet] instead.
func (l *Locked[K, V]) GetOrSetSingleflight(key K, compute func() (V, error)) (V, error) {
	if val, found := l.Get(key); found {
		return val, nil
	}

	result, err, _ := l.sfGroup.Do(fmt.Sprintf("%v", key), func() (any, error) {
		// another flight may have just finished for this key
		if val, found := l.Get(key); found {
			return val, nil
		}

		val, err := compute()
		if err != nil {
			return nil, err
		}
		return l.setIfAbsent(key, val), nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	// a nil interface value comes back as a nil any
	val, _ := result.(V)
	return val, nil
}

// setIfAbsent stores val unless key was added concurrently, in which case the
// cached value wins. Either way the entry ends up most recently used.
func (l *Locked[K, V]) setIfAbsent(key K, val V) V {
	l.mu.Lock()
	if existing, found := l.cache.Get(key); found {
		l.mu.Unlock()
		return existing
	}

	evictedKey, evictedVal, evicted := l.cache.Put(key, val)
	onEvict := l.onEvict
	l.mu.Unlock()

	if evicted && onEvict != nil {
		onEvict(evictedKey, evictedVal)
	}
	return val
}

// Remove deletes an item from the cache by key and passes it to the eviction callback.
// It returns the removed value and whether the key was present.
func (l *Locked[K, V]) Remove(key K) (V, bool) {
	l.mu.Lock()
	val, found := l.cache.Remove(key)
	onEvict := l.onEvict
	l.mu.Unlock()

	if found && onEvict != nil {
		onEvict(key, val)
	}
	return val, found
}

// Contains checks if a key exists in the cache without updating its position.
func (l *Locked[K, V]) Contains(key K) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.cache.Contains(key)
}

// Oldest returns the least recently used entry without updating its position.
func (l *Locked[K, V]) Oldest() (K, V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.cache.Oldest()
}

// Len returns the current number of items in the cache.
func (l *Locked[K, V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.cache.Len()
}

// Capacity returns the maximum capacity of the cache.
func (l *Locked[K, V]) Capacity() int {
	return l.cache.Capacity()
}

// Keys returns a slice of all keys in the cache.
// The order is from most recently used to least recently used.
func (l *Locked[K, V]) Keys() []K {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.cache.Keys()
}

// Clear removes all items from the cache. The eviction callback, if any, is
// called for each of them from most recently used to least recently used.
func (l *Locked[K, V]) Clear() {
	l.mu.Lock()
	onEvict := l.onEvict

	var evicted []entry[K, V]
	if onEvict != nil {
		evicted = make([]entry[K, V], 0, l.cache.Len())
		l.cache.each(func(key K, value V) {
			evicted = append(evicted, entry[K, V]{key: key, val: value})
		})
	}

	l.cache.Clear()
	l.mu.Unlock()

	for _, e := range evicted {
		onEvict(e.key, e.val)
	}
}

// OnEvict sets a callback function that will be called when an entry is evicted from the cache.
// The callback will receive the key and value of the evicted entry.
//
// Callbacks are invoked for capacity evictions, [Locked.Remove], and [Locked.Clear].
// They run after the internal lock is released and may be called concurrently
// from multiple goroutines, so f must be safe for concurrent use.
func (l *Locked[K, V]) OnEvict(f OnEvictFunc[K, V]) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.onEvict = f
}
