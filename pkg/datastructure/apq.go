package datastructure

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	ErrQueueEmpty    = errors.New("adaptable priority queue is empty")
	ErrInvalidHandle = errors.New("entry is not attached to the queue")
)

// detachedPos marks an entry that has left the heap. Every operation on a
// detached handle fails with ErrInvalidHandle.
const detachedPos = -1

// PQEntry is the live handle returned by Add. pos equals the entry's slot in
// the backing array for as long as the entry is attached.
type PQEntry[K constraints.Ordered, V any] struct {
	key   K
	value V
	pos   int
}

func (e *PQEntry[K, V]) GetKey() K {
	return e.key
}

func (e *PQEntry[K, V]) GetValue() V {
	return e.value
}

func (e *PQEntry[K, V]) GetPos() int {
	return e.pos
}

func (e *PQEntry[K, V]) setPos(i int) {
	e.pos = i
}

// AdaptablePriorityQueue is a d-ary min-heap (binary by default) whose
// entries can have their key updated or be removed from any position in
// O(log n), located through the handle's slot index rather than a search.
//
// Invariant: heap[entry.pos] == entry after every mutating call. swap rewrites
// the slot index of both entries involved; that is what keeps handles live.
type AdaptablePriorityQueue[K constraints.Ordered, V any] struct {
	heap []*PQEntry[K, V]
	d    int
}

func NewAdaptablePriorityQueue[K constraints.Ordered, V any]() *AdaptablePriorityQueue[K, V] {
	return NewDAryPriorityQueue[K, V](2)
}

func NewDAryPriorityQueue[K constraints.Ordered, V any](d int) *AdaptablePriorityQueue[K, V] {
	return &AdaptablePriorityQueue[K, V]{
		heap: make([]*PQEntry[K, V], 0),
		d:    d,
	}
}

func (q *AdaptablePriorityQueue[K, V]) Preallocate(maxSearchSize int) {
	q.heap = make([]*PQEntry[K, V], 0, maxSearchSize)
}

func (q *AdaptablePriorityQueue[K, V]) parent(index int) int {
	return (index - 1) / q.d
}

// bubbleUp restores the heap property upward. O(logN) tree height.
func (q *AdaptablePriorityQueue[K, V]) bubbleUp(index int) {
	for index != 0 && q.heap[index].key < q.heap[q.parent(index)].key {
		q.swap(index, q.parent(index))
		index = q.parent(index)
	}
}

// bubbleDown restores the heap property downward, comparing against the
// smallest existing child (a lone child when the slot has no sibling).
// O(logN) tree height.
func (q *AdaptablePriorityQueue[K, V]) bubbleDown(index int) {
	leftMostChild := index*q.d + 1
	if leftMostChild >= len(q.heap) {
		return
	}

	sentinel := leftMostChild + q.d
	if sentinel > len(q.heap) {
		sentinel = len(q.heap)
	}

	smallest := leftMostChild
	for i := leftMostChild + 1; i < sentinel; i++ {
		if q.heap[i].key < q.heap[smallest].key {
			smallest = i
		}
	}

	if q.heap[smallest].key < q.heap[index].key {
		q.swap(index, smallest)

		q.bubbleDown(smallest)
	}
}

func (q *AdaptablePriorityQueue[K, V]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]

	q.heap[i].setPos(i)
	q.heap[j].setPos(j)
}

// attached reports whether entry currently lives in this queue.
func (q *AdaptablePriorityQueue[K, V]) attached(entry *PQEntry[K, V]) bool {
	return entry != nil && entry.pos >= 0 && entry.pos < len(q.heap) && q.heap[entry.pos] == entry
}

func (q *AdaptablePriorityQueue[K, V]) IsEmpty() bool {
	return len(q.heap) == 0
}

func (q *AdaptablePriorityQueue[K, V]) Size() int {
	return len(q.heap)
}

func (q *AdaptablePriorityQueue[K, V]) Clear() {
	for _, entry := range q.heap {
		entry.setPos(detachedPos)
	}
	q.heap = make([]*PQEntry[K, V], 0)
}

// Add inserts value with the given key and returns the handle for later
// UpdateKey/Remove calls. O(logN).
func (q *AdaptablePriorityQueue[K, V]) Add(key K, value V) *PQEntry[K, V] {
	entry := &PQEntry[K, V]{key: key, value: value}
	q.heap = append(q.heap, entry)
	entry.setPos(q.Size() - 1)
	q.bubbleUp(entry.pos)
	return entry
}

// Min peeks the minimum entry without removing it. O(1).
func (q *AdaptablePriorityQueue[K, V]) Min() (*PQEntry[K, V], error) {
	if q.IsEmpty() {
		return nil, ErrQueueEmpty
	}
	return q.heap[0], nil
}

// ExtractMin removes and returns the minimum entry. The returned handle is
// detached afterwards. O(logN).
func (q *AdaptablePriorityQueue[K, V]) ExtractMin() (*PQEntry[K, V], error) {
	if q.IsEmpty() {
		return nil, ErrQueueEmpty
	}
	root := q.heap[0]

	q.swap(0, q.Size()-1)

	q.heap = q.heap[:q.Size()-1]
	root.setPos(detachedPos)
	if len(q.heap) > 0 {
		q.bubbleDown(0)
	}

	return root, nil
}

// UpdateKey rewrites the key of an attached entry and restores the heap
// property in whichever direction the change requires. An equal key is a
// no-op. O(logN).
func (q *AdaptablePriorityQueue[K, V]) UpdateKey(entry *PQEntry[K, V], newKey K) error {
	if !q.attached(entry) {
		return ErrInvalidHandle
	}

	switch {
	case newKey < entry.key:
		entry.key = newKey
		q.bubbleUp(entry.pos)
	case newKey > entry.key:
		entry.key = newKey
		q.bubbleDown(entry.pos)
	}
	return nil
}

// Remove detaches an arbitrary attached entry. The vacated slot inherits the
// previous last entry, which may violate the heap property in either
// direction; both bubble passes self-check, at most one of them acts. O(logN).
func (q *AdaptablePriorityQueue[K, V]) Remove(entry *PQEntry[K, V]) error {
	if !q.attached(entry) {
		return ErrInvalidHandle
	}

	index := entry.pos
	q.swap(index, q.Size()-1)
	q.heap = q.heap[:q.Size()-1]
	entry.setPos(detachedPos)

	if index < q.Size() {
		q.bubbleDown(index)
		q.bubbleUp(index)
	}
	return nil
}

// Key returns the current key of an attached entry. O(1).
func (q *AdaptablePriorityQueue[K, V]) Key(entry *PQEntry[K, V]) (K, error) {
	if !q.attached(entry) {
		var zero K
		return zero, ErrInvalidHandle
	}
	return entry.key, nil
}
