package fibheap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// verifyStructure walks the whole forest and checks every structural
// invariant: ring consistency, min-heap order, degree accuracy, mark
// discipline, the size counter and the minimum pointer. It returns all
// reachable keys.
func verifyStructure[K interface{ ~int }, V any](t *testing.T, h *Heap[K, V]) []K {
	t.Helper()

	if h.min == nil {
		require.Equal(t, 0, h.size, "an empty heap must report size 0")
		return nil
	}
	require.Nil(t, h.min.parent, "the minimum pointer must designate a root")

	var keys []K

	var walkRing func(start, parent *node[K, V]) int
	walkRing = func(start, parent *node[K, V]) int {
		ringLen := 0
		n := start
		for {
			ringLen++
			keys = append(keys, n.key)

			require.True(t, n.left.right == n, "left/right must be mutual inverses")
			require.True(t, n.right.left == n, "right/left must be mutual inverses")
			require.True(t, n.parent == parent, "parent link must match the owning ring")
			require.False(t, n.removed, "a removed node must not be reachable")

			if parent != nil {
				require.LessOrEqual(t, parent.key, n.key, "min-heap order must hold")
			} else {
				require.False(t, n.marked, "a root must never be marked")
			}

			if n.child != nil {
				childRingLen := walkRing(n.child, n)
				require.Equal(t, n.degree, childRingLen, "degree must equal the child ring length")
			} else {
				require.Equal(t, 0, n.degree, "a leaf must have degree 0")
			}

			n = n.right
			if n == start {
				break
			}
		}
		return ringLen
	}

	walkRing(h.min, nil)

	require.Equal(t, h.size, len(keys), "size must equal the number of reachable nodes")
	for _, k := range keys {
		require.LessOrEqual(t, h.min.key, k, "the minimum pointer must hold the smallest key")
	}
	return keys
}

// model tracks what the heap should contain: entry id -> current key.
type model map[int]int

func (m model) minKey() int {
	first := true
	min := 0
	for _, k := range m {
		if first || k < min {
			min = k
			first = false
		}
	}
	return min
}

func TestInvariantsUnderRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	h := New[int, int]()
	m := model{}
	handles := map[int]Handle[int, int]{}
	nextID := 0

	for i := 0; i < 3000; i++ {
		switch op := rnd.Intn(10); {
		case op < 5: // insert
			key := rnd.Intn(10000)
			handles[nextID] = h.Insert(key, nextID)
			m[nextID] = key
			nextID++

		case op < 7: // extract min
			k, id, ok := h.ExtractMin()
			if len(m) == 0 {
				require.False(t, ok)
				break
			}
			require.True(t, ok)
			require.Equal(t, m.minKey(), k, "extracted key must be the model minimum")
			require.Equal(t, m[id], k, "extracted key must match the entry it came with")
			delete(m, id)
			delete(handles, id)

		case op < 9: // decrease key
			id, ok := anyID(rnd, m)
			if !ok {
				break
			}
			newKey := m[id] - rnd.Intn(5000)
			require.NoError(t, h.DecreaseKey(handles[id], newKey))
			m[id] = newKey

		default: // delete
			id, ok := anyID(rnd, m)
			if !ok {
				break
			}
			k, v, err := h.Delete(handles[id])
			require.NoError(t, err)
			require.Equal(t, m[id], k)
			require.Equal(t, id, v)
			delete(m, id)
			delete(handles, id)
		}

		require.Equal(t, len(m), h.Len())
		verifyStructure(t, h)
	}

	// Drain and compare against the sorted model.
	var want []int
	for _, k := range m {
		want = append(want, k)
	}
	sort.Ints(want)

	var got []int
	for {
		k, _, ok := h.ExtractMin()
		if !ok {
			break
		}
		got = append(got, k)
		verifyStructure(t, h)
	}
	require.Equal(t, want, got)
}

func TestInvariantsAfterUnions(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	h := New[int, int]()
	var want []int

	for round := 0; round < 20; round++ {
		other := New[int, int]()
		for i := 0; i < rnd.Intn(30); i++ {
			key := rnd.Intn(1000)
			other.Insert(key, key)
			want = append(want, key)
		}

		h.Union(other)
		verifyStructure(t, h)
		require.Equal(t, len(want), h.Len())

		// Mix in some extractions between unions.
		for i := 0; i < rnd.Intn(5) && len(want) > 0; i++ {
			sort.Ints(want)
			k, _, ok := h.ExtractMin()
			require.True(t, ok)
			require.Equal(t, want[0], k)
			want = want[1:]
			verifyStructure(t, h)
		}
	}
}

func TestDecreaseKeyAboveParentNeverCuts(t *testing.T) {
	h := New[int, int]()
	var handles []Handle[int, int]
	for k := 0; k < 16; k++ {
		handles = append(handles, h.Insert(k*10, k))
	}

	// Consolidate into a proper forest.
	_, _, ok := h.ExtractMin()
	require.True(t, ok)

	trees := countRoots(h)

	// Decreases that keep every key at or above its parent's key must leave
	// the tree shapes untouched.
	for i := 1; i < 16; i++ {
		x := handles[i].n
		newKey := x.key
		if x.parent != nil {
			newKey = x.parent.key // lowest value that still upholds heap order
		}
		require.NoError(t, h.DecreaseKey(handles[i], newKey))
		require.Equal(t, trees, countRoots(h), "a decrease that keeps heap order must not cut")
		require.False(t, x.marked)
	}

	verifyStructure(t, h)
}

func countRoots[K interface{ ~int }, V any](h *Heap[K, V]) int {
	if h.min == nil {
		return 0
	}
	count := 0
	for n := h.min; ; {
		count++
		n = n.right
		if n == h.min {
			break
		}
	}
	return count
}

func anyID(rnd *rand.Rand, m model) (int, bool) {
	if len(m) == 0 {
		return 0, false
	}
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids[rnd.Intn(len(ids))], true
}
