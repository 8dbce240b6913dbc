package fibheap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	// ErrStaleHandle is returned when an operation receives a handle whose
	// node has already been removed from the heap.
	ErrStaleHandle = errors.New("fibheap: stale handle")

	// ErrKeyIncrease is returned when DecreaseKey is called with a key
	// greater than the node's current key.
	ErrKeyIncrease = errors.New("fibheap: new key is greater than current key")
)

// Heap is a Fibonacci heap: a min-priority queue keyed by K with opaque
// payloads of type V. The zero value is not usable; create heaps with [New].
// See the package documentation for the complexity of each operation.
type Heap[K constraints.Ordered, V any] struct {
	min  *node[K, V] // a root with the globally smallest key, nil when empty
	size int
}

// New creates an empty heap.
func New[K constraints.Ordered, V any]() *Heap[K, V] {
	return &Heap[K, V]{}
}

// Len returns the number of entries in the heap.
func (h *Heap[K, V]) Len() int {
	return h.size
}

// IsEmpty reports whether the heap has no entries.
func (h *Heap[K, V]) IsEmpty() bool {
	return h.size == 0
}

// Minimum returns the key and value of the smallest entry without removing it.
// The boolean is false if the heap is empty.
func (h *Heap[K, V]) Minimum() (K, V, bool) {
	if h.min == nil {
		var k K
		var v V
		return k, v, false
	}
	return h.min.key, h.min.value, true
}

// Insert adds a new entry and returns a [Handle] to it, which can be used
// later with [Heap.DecreaseKey] and [Heap.Delete]. Duplicate keys are allowed.
func (h *Heap[K, V]) Insert(key K, value V) Handle[K, V] {
	n := newNode(key, value)
	h.addRoot(n)
	h.size++
	return Handle[K, V]{n: n}
}

// Union merges all entries of other into h in O(1) by concatenating the two
// root lists. It consumes other: other is left empty and must not be assumed
// to share state with h afterwards. Handles issued by either heap remain
// valid and now refer to entries of h.
func (h *Heap[K, V]) Union(other *Heap[K, V]) {
	if other == nil || other.min == nil {
		return
	}
	if h.min == nil {
		h.min = other.min
		h.size = other.size
	} else {
		spliceRings(h.min, other.min)
		if other.min.key < h.min.key {
			h.min = other.min
		}
		h.size += other.size
	}
	other.min = nil
	other.size = 0
}

// addRoot places the detached singleton n into the root list and advances the
// minimum pointer if needed.
func (h *Heap[K, V]) addRoot(n *node[K, V]) {
	n.parent = nil
	n.marked = false
	if h.min == nil {
		n.left = n
		n.right = n
		h.min = n
		return
	}
	spliceAfter(h.min, n)
	if n.key < h.min.key {
		h.min = n
	}
}
