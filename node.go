package fibheap

import "golang.org/x/exp/constraints"

// node is a single heap entry and its place in the forest. Sibling links form
// a circular doubly-linked ring: a detached node is a singleton ring pointing
// at itself. The parent link is purely structural and never the only path to
// a node.
type node[K constraints.Ordered, V any] struct {
	key   K
	value V

	degree int  // number of children
	marked bool // lost a child since it last became a child; roots are never marked

	parent *node[K, V]
	child  *node[K, V] // arbitrary member of the child ring, nil for leaves
	left   *node[K, V]
	right  *node[K, V]

	removed bool // set once the node leaves the heap, makes handles stale
}

func newNode[K constraints.Ordered, V any](key K, value V) *node[K, V] {
	n := &node[K, V]{key: key, value: value}
	n.left = n
	n.right = n
	return n
}

// spliceOut removes n from its current ring, re-linking its neighbors to each
// other, and leaves n as a singleton ring. A no-op for a node that is already
// a singleton.
func (n *node[K, V]) spliceOut() {
	n.left.right = n.right
	n.right.left = n.left
	n.left = n
	n.right = n
}

// spliceAfter inserts the singleton node n into anchor's ring, immediately
// after anchor.
func spliceAfter[K constraints.Ordered, V any](anchor, n *node[K, V]) {
	n.left = anchor
	n.right = anchor.right
	anchor.right.left = n
	anchor.right = n
}

// spliceRings concatenates the ring containing a with the ring containing b.
// Four pointer rewrites; both rings may be of any size.
func spliceRings[K constraints.Ordered, V any](a, b *node[K, V]) {
	ar := a.right
	bl := b.left
	a.right = b
	b.left = a
	bl.right = ar
	ar.left = bl
}

// Handle is a non-owning reference to a node in a [Heap], returned by
// [Heap.Insert]. It is the way to target a specific entry in [Heap.DecreaseKey]
// and [Heap.Delete]. A handle stays valid for as long as its node is in the
// heap (surviving [Heap.Union]) and becomes stale once the node is removed.
// Handles are small and can be freely copied; the zero Handle is stale.
type Handle[K constraints.Ordered, V any] struct {
	n *node[K, V]
}

func (h Handle[K, V]) resolve() (*node[K, V], bool) {
	if h.n == nil || h.n.removed {
		return nil, false
	}
	return h.n, true
}

// Key returns the current key of the handle's node.
// The boolean is false if the handle is stale.
func (h Handle[K, V]) Key() (K, bool) {
	n, ok := h.resolve()
	if !ok {
		var zero K
		return zero, false
	}
	return n.key, true
}

// Value returns the value stored in the handle's node.
// The boolean is false if the handle is stale.
func (h Handle[K, V]) Value() (V, bool) {
	n, ok := h.resolve()
	if !ok {
		var zero V
		return zero, false
	}
	return n.value, true
}
