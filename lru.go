package lru

import (
	"errors"
)

// ErrInvalidCapacity is returned when a cache is constructed with a
// capacity less than or equal to zero.
var ErrInvalidCapacity = errors.New("capacity must be greater than zero")

// preallocLimit caps the number of slots reserved up front so that a very
// large capacity does not allocate memory that may never be used.
const preallocLimit = 1024

// Cache is a fixed-capacity LRU cache.
//
// Cache is not safe for concurrent use; wrap it in [Locked] or guard every
// call with a mutex when it is shared between goroutines.
// A Cache must be created with [New] or [MustNew]; the zero value is not ready for use.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]int // key to arena slot
	list     arena[K, V]
}

// New creates a new LRU cache with the given capacity.
// The capacity must be greater than zero, otherwise [ErrInvalidCapacity] is returned.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	hint := min(capacity, preallocLimit)
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]int, hint),
		list:     newArena[K, V](hint),
	}, nil
}

// MustNew creates a new LRU cache with the given capacity.
// It panics if the capacity is less than or equal to zero.
func MustNew[K comparable, V any](capacity int) *Cache[K, V] {
	cache, err := New[K, V](capacity)
	if err != nil {
		panic(err)
	}
	return cache
}

// Get retrieves a value from the cache by key.
// It returns the value and a boolean indicating whether the key was found.
// A hit moves the entry to the most recently used position; a miss changes nothing.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	i, found := c.items[key]
	if !found {
		var zero V
		return zero, false
	}

	c.list.moveToFront(i)
	return c.list.slots[i].val, true
}

// Peek retrieves a value from the cache by key without updating its position
// in the LRU list. Returns the value and a boolean indicating whether the key was found.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	i, found := c.items[key]
	if !found {
		var zero V
		return zero, false
	}

	return c.list.slots[i].val, true
}

// Put adds or updates an item in the cache and marks it as most recently used.
//
// Updating an existing key never evicts. Adding a new key to a full cache
// first evicts the least recently used entry and returns it, with evicted
// set to true.
func (c *Cache[K, V]) Put(key K, value V) (evictedKey K, evictedVal V, evicted bool) {
	if i, found := c.items[key]; found {
		c.list.slots[i].val = value
		c.list.moveToFront(i)
		return
	}

	if len(c.items) >= c.capacity {
		// reuse the tail slot for the new entry
		i := c.list.tail
		oldest := &c.list.slots[i]
		evictedKey, evictedVal, evicted = oldest.key, oldest.val, true

		c.list.unlink(i)
		delete(c.items, evictedKey)

		oldest.key = key
		oldest.val = value
		c.list.pushFront(i)
		c.items[key] = i
		return
	}

	i := c.list.alloc(key, value)
	c.list.pushFront(i)
	c.items[key] = i
	return
}

// Remove deletes an item from the cache by key.
// It returns the removed value and whether the key was present.
// The relative order of the remaining entries is unchanged.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	i, found := c.items[key]
	if !found {
		var zero V
		return zero, false
	}

	val := c.list.slots[i].val
	delete(c.items, key)
	c.list.unlink(i)
	c.list.release(i)
	return val, true
}

// Contains checks if a key exists in the cache.
// It does not count as a use of the entry.
func (c *Cache[K, V]) Contains(key K) bool {
	_, found := c.items[key]
	return found
}

// Oldest returns the least recently used entry, which is the next one to be
// evicted, without updating its position.
func (c *Cache[K, V]) Oldest() (key K, value V, ok bool) {
	if c.list.tail == noSlot {
		return
	}

	e := &c.list.slots[c.list.tail]
	return e.key, e.val, true
}

// Len returns the current number of items in the cache.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// Capacity returns the maximum capacity of the cache.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns a slice of all keys in the cache.
// The order is from most recently used to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	c.each(func(key K, _ V) {
		keys = append(keys, key)
	})
	return keys
}

// Clear removes all items from the cache. The capacity is unchanged.
func (c *Cache[K, V]) Clear() {
	clear(c.items)
	c.list.reset()
}

// each calls f for every entry from most recently used to least recently used.
func (c *Cache[K, V]) each(f func(key K, value V)) {
	for i := c.list.head; i != noSlot; i = c.list.slots[i].next {
		f(c.list.slots[i].key, c.list.slots[i].val)
	}
}
