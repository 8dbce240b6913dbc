// Package fibheap provides a mergeable min-priority queue backed by a Fibonacci heap.
// It supports O(1) amortized [Heap.Insert], [Heap.Union] and [Heap.DecreaseKey],
// and O(log n) amortized [Heap.ExtractMin], making it a good fit for algorithms
// that relax priorities many more times than they pop, such as Dijkstra's
// shortest paths or Prim's minimum spanning tree.
//
// # Structure
//
// The heap is a forest of min-heap-ordered trees. Roots form a circular
// doubly-linked list, and so do the children of every node, which makes
// attaching and detaching subtrees a constant-time splice. Most operations do
// the least work possible and leave the forest untidy; the cleanup is deferred
// to [Heap.ExtractMin], which merges trees of equal degree until degrees are
// unique. This laziness is what the amortized bounds are built on.
//
// # Handles
//
// [Heap.Insert] returns a [Handle]: a non-owning reference to the inserted
// node. Handles exist so that [Heap.DecreaseKey] and [Heap.Delete] can target
// a specific entry in O(1) without searching. A handle stays valid while its
// node is in the heap, including across [Heap.Union], and becomes stale once
// the node is removed. Operations on a stale handle return [ErrStaleHandle];
// they never corrupt the heap.
//
// # Complexity
//
//	Insert       O(1) amortized
//	Minimum      O(1)
//	Union        O(1)
//	DecreaseKey  O(1) amortized
//	ExtractMin   O(log n) amortized
//	Delete       O(log n) amortized
//
// # Errors
//
// Absence is not an error: [Heap.Minimum] and [Heap.ExtractMin] report an
// empty heap through their boolean result. Misuse is an error: decreasing a
// key upwards returns [ErrKeyIncrease], and using a handle whose node has
// already been removed returns [ErrStaleHandle]. All precondition checks run
// before any pointer is rewritten, so a rejected call leaves the heap
// unchanged.
//
// # Concurrency
//
// A Heap is not safe for concurrent use. It is a single-owner structure:
// wrap it with a mutex if it must be shared between goroutines.
package fibheap
