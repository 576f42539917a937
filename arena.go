package lru

// noSlot marks a missing neighbour, an empty list, or an empty free list.
const noSlot = -1

// entry is a node of the recency list. Its links are slot indices into the
// arena rather than pointers.
type entry[K comparable, V any] struct {
	key  K
	val  V
	prev int
	next int
}

// arena is a doubly-linked list whose nodes all live in one slice.
// head is the most recently used slot, tail the least recently used.
// Released slots are chained through next on the free list.
type arena[K comparable, V any] struct {
	slots []entry[K, V]
	head  int
	tail  int
	free  int
}

func newArena[K comparable, V any](hint int) arena[K, V] {
	return arena[K, V]{
		slots: make([]entry[K, V], 0, hint),
		head:  noSlot,
		tail:  noSlot,
		free:  noSlot,
	}
}

// alloc stores key and val in a free slot, growing the slice if none is
// available. The returned slot is not linked into the list.
func (a *arena[K, V]) alloc(key K, val V) int {
	var i int
	if a.free != noSlot {
		i = a.free
		a.free = a.slots[i].next
	} else {
		i = len(a.slots)
		a.slots = append(a.slots, entry[K, V]{})
	}

	a.slots[i] = entry[K, V]{key: key, val: val, prev: noSlot, next: noSlot}
	return i
}

// release zeroes an unlinked slot and pushes it onto the free list.
func (a *arena[K, V]) release(i int) {
	a.slots[i] = entry[K, V]{prev: noSlot, next: a.free}
	a.free = i
}

// pushFront links slot i in as the most recently used entry.
func (a *arena[K, V]) pushFront(i int) {
	e := &a.slots[i]
	e.prev = noSlot
	e.next = a.head
	if a.head != noSlot {
		a.slots[a.head].prev = i
	}
	a.head = i
	if a.tail == noSlot {
		a.tail = i
	}
}

// unlink detaches slot i from the list. Neighbours keep their relative order.
func (a *arena[K, V]) unlink(i int) {
	e := &a.slots[i]
	if e.prev != noSlot {
		a.slots[e.prev].next = e.next
	} else {
		a.head = e.next
	}
	if e.next != noSlot {
		a.slots[e.next].prev = e.prev
	} else {
		a.tail = e.prev
	}
	e.prev = noSlot
	e.next = noSlot
}

// moveToFront makes slot i the most recently used entry.
func (a *arena[K, V]) moveToFront(i int) {
	if a.head == i {
		return
	}
	a.unlink(i)
	a.pushFront(i)
}

// reset drops every slot. The backing array is kept but zeroed.
func (a *arena[K, V]) reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.head = noSlot
	a.tail = noSlot
	a.free = noSlot
}
