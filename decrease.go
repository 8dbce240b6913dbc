package fibheap

// DecreaseKey lowers the key of the entry referenced by handle to key.
// It returns [ErrStaleHandle] if the entry is no longer in the heap, and
// [ErrKeyIncrease] if key is greater than the entry's current key. Lowering
// to the current key is allowed and never restructures the forest. A rejected
// call leaves the heap unchanged.
func (h *Heap[K, V]) DecreaseKey(handle Handle[K, V], key K) error {
	x, ok := handle.resolve()
	if !ok {
		return ErrStaleHandle
	}
	if key > x.key {
		return ErrKeyIncrease
	}

	x.key = key
	if p := x.parent; p != nil && x.key < p.key {
		h.cut(x, p)
		h.cascadingCut(p)
	}
	if x.key < h.min.key {
		h.min = x
	}
	return nil
}

// Delete removes the entry referenced by handle, wherever it sits in the
// forest, and returns its key and value. It returns [ErrStaleHandle] if the
// entry has already been removed. Equivalent to decreasing the key below
// every other key and extracting, done structurally so it works for any
// ordered key type.
func (h *Heap[K, V]) Delete(handle Handle[K, V]) (K, V, error) {
	x, ok := handle.resolve()
	if !ok {
		var k K
		var v V
		return k, v, ErrStaleHandle
	}

	if p := x.parent; p != nil {
		h.cut(x, p)
		h.cascadingCut(p)
	}
	h.min = x // force x into the minimum position regardless of its key
	k, v, _ := h.ExtractMin()
	return k, v, nil
}

// cut detaches x from its parent p and promotes it to the root list,
// clearing its mark.
func (h *Heap[K, V]) cut(x, p *node[K, V]) {
	if p.child == x {
		if x.right == x {
			p.child = nil
		} else {
			p.child = x.right
		}
	}
	x.spliceOut()
	p.degree--
	h.addRoot(x)
}

// cascadingCut walks up from x, cutting every marked ancestor until it
// reaches a root or an unmarked node, which it marks. Each iteration either
// clears a mark or creates a root, which is what keeps the amortized cost of
// the whole chain constant.
func (h *Heap[K, V]) cascadingCut(x *node[K, V]) {
	for {
		p := x.parent
		if p == nil {
			return
		}
		if !x.marked {
			x.marked = true
			return
		}
		h.cut(x, p)
		x = p
	}
}
