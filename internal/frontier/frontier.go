// Package frontier implements a duplicate-tolerant min-priority queue keyed
// by a real-valued priority, values are opaque cell identifiers.
//
// Frontier uses the same "lazy decrease-key" pattern as
// github.com/katalvlaran/lvlath/dijkstra: rather than locating and updating
// an existing heap entry in O(log n), callers simply Insert a new entry
// whenever a better priority is found. Stale entries are left in the heap
// and discarded by the caller at PopMin time via a visited set.
package frontier

import "container/heap"

// item is a single (cell, priority) pair stored in the heap.
type item struct {
	cell     int
	priority float64
}

// heapSlice is the container/heap backing store, ordered by ascending
// priority. Ties are broken by insertion order is not guaranteed by
// container/heap, but remain deterministic within a single run because the
// heap never reorders on ties beyond what sift-up/sift-down requires.
type heapSlice []item

func (h heapSlice) Len() int            { return len(h) }
func (h heapSlice) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h heapSlice) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *heapSlice) Push(x interface{}) { *h = append(*h, x.(item)) }
func (h *heapSlice) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Frontier is a min-priority queue of cell ids. The zero value is not
// usable; construct with New.
type Frontier struct {
	h heapSlice
}

// New returns an empty Frontier with room for n entries pre-allocated.
func New(n int) *Frontier {
	f := &Frontier{h: make(heapSlice, 0, n)}
	heap.Init(&f.h)
	return f
}

// Insert adds cell with the given priority. Duplicates of the same cell
// with different priorities are permitted; Insert is O(log n).
func (f *Frontier) Insert(cell int, priority float64) {
	heap.Push(&f.h, item{cell: cell, priority: priority})
}

// PopMin removes and returns the cell with the least priority. It panics
// if the frontier is empty; callers must check Len first.
func (f *Frontier) PopMin() (cell int, priority float64) {
	it := heap.Pop(&f.h).(item)
	return it.cell, it.priority
}

// Len reports the number of entries currently queued, including any stale
// duplicates not yet popped.
func (f *Frontier) Len() int { return f.h.Len() }
