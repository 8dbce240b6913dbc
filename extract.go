package fibheap

import "math/bits"

// ExtractMin removes the smallest entry and returns its key and value.
// The boolean is false if the heap is empty.
//
// This is the operation that repairs the forest: after removing the minimum
// it consolidates trees of equal degree, which is where the deferred cost of
// the cheap operations is paid off.
func (h *Heap[K, V]) ExtractMin() (K, V, bool) {
	z := h.min
	if z == nil {
		var k K
		var v V
		return k, v, false
	}

	// Promote z's children to the root list. Splicing the whole child ring
	// next to z is O(1); clearing the parent links costs O(degree).
	if c := z.child; c != nil {
		for {
			c.parent = nil
			c.marked = false
			c = c.right
			if c == z.child {
				break
			}
		}
		spliceRings(z, z.child)
		z.child = nil
	}

	succ := z.right
	z.spliceOut()
	z.removed = true
	z.degree = 0
	h.size--

	if succ == z {
		h.min = nil
	} else {
		h.min = succ // provisional, consolidate picks the true minimum
		h.consolidate()
	}

	return z.key, z.value, true
}

// consolidate merges roots of equal degree until at most one tree of each
// degree remains, then rebuilds the root list and the minimum pointer from
// the survivors.
func (h *Heap[K, V]) consolidate() {
	// Snapshot the roots first: linking rearranges the ring mid-walk.
	var roots []*node[K, V]
	for x := h.min; ; {
		roots = append(roots, x)
		x = x.right
		if x == h.min {
			break
		}
	}

	table := make([]*node[K, V], h.degreeBound())

	for _, x := range roots {
		d := x.degree
		for {
			if d >= len(table) {
				table = append(table, make([]*node[K, V], d+1-len(table))...)
			}
			y := table[d]
			if y == nil {
				break
			}
			if x.key > y.key {
				x, y = y, x
			}
			h.link(y, x)
			table[d] = nil
			d = x.degree
		}
		table[d] = x
	}

	h.min = nil
	for _, x := range table {
		if x == nil {
			continue
		}
		x.left = x
		x.right = x
		h.addRoot(x)
	}
}

// link makes the root y a child of the root x. Requires key(x) <= key(y).
func (h *Heap[K, V]) link(y, x *node[K, V]) {
	y.spliceOut()
	y.parent = x
	y.marked = false
	if x.child == nil {
		x.child = y
	} else {
		spliceAfter(x.child, y)
	}
	x.degree++
}

// degreeBound returns the initial consolidation table size. The tight bound
// is the log base golden ratio of the node count; floor(log2 n)+2 is close
// enough as a starting size because the table grows on demand.
func (h *Heap[K, V]) degreeBound() int {
	return bits.Len(uint(h.size)) + 2
}
