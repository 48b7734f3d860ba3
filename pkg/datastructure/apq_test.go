package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// verifyHeap checks the two queue invariants: every entry's position field
// matches its true slot, and every non-root key is >= its parent's key.
func verifyHeap(t *testing.T, q *AdaptablePriorityQueue[float64, int]) {
	t.Helper()
	for i, entry := range q.heap {
		require.Equal(t, i, entry.GetPos(), "entry at slot %d carries a stale position", i)
		if i > 0 {
			parent := q.heap[q.parent(i)]
			require.LessOrEqual(t, parent.key, entry.key, "heap property violated at slot %d", i)
		}
	}
}

func TestAPQSingleton(t *testing.T) {
	q := NewAdaptablePriorityQueue[float64, int]()

	entry := q.Add(7, 42)
	require.Equal(t, 0, entry.GetPos())

	min, err := q.Min()
	require.NoError(t, err)
	require.Same(t, entry, min)

	popped, err := q.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, 42, popped.GetValue())
	require.True(t, q.IsEmpty())
}

func TestAPQEmpty(t *testing.T) {
	q := NewAdaptablePriorityQueue[float64, int]()

	_, err := q.Min()
	require.ErrorIs(t, err, ErrQueueEmpty)

	_, err = q.ExtractMin()
	require.ErrorIs(t, err, ErrQueueEmpty)
}

func TestAPQExtractionOrder(t *testing.T) {
	q := NewAdaptablePriorityQueue[float64, int]()

	keys := []float64{5, 3, 8, 1, 9, 2, 7, 4, 6, 0}
	for i, k := range keys {
		q.Add(k, i)
		verifyHeap(t, q)
	}

	prev := -1.0
	for !q.IsEmpty() {
		entry, err := q.ExtractMin()
		require.NoError(t, err)
		require.GreaterOrEqual(t, entry.GetKey(), prev)
		require.Equal(t, detachedPos, entry.GetPos())
		prev = entry.GetKey()
		verifyHeap(t, q)
	}
}

func TestAPQUpdateKey(t *testing.T) {
	q := NewAdaptablePriorityQueue[float64, int]()

	handles := make([]*PQEntry[float64, int], 0, 8)
	for i := 1; i <= 8; i++ {
		handles = append(handles, q.Add(float64(i), i))
	}

	t.Run("decrease moves entry to the front", func(t *testing.T) {
		last := handles[7]
		require.NoError(t, q.UpdateKey(last, 0))
		verifyHeap(t, q)

		min, err := q.Min()
		require.NoError(t, err)
		require.Same(t, last, min)
	})

	t.Run("increase pushes entry down", func(t *testing.T) {
		demoted := handles[7]
		require.NoError(t, q.UpdateKey(demoted, 10))
		verifyHeap(t, q)

		min, err := q.Min()
		require.NoError(t, err)
		require.NotSame(t, demoted, min)
		require.Equal(t, 1.0, min.GetKey())
	})

	t.Run("equal key is a no-op", func(t *testing.T) {
		min, err := q.Min()
		require.NoError(t, err)
		require.NoError(t, q.UpdateKey(min, min.GetKey()))
		verifyHeap(t, q)

		still, err := q.Min()
		require.NoError(t, err)
		require.Same(t, min, still)
	})
}

// A decrease must never raise the reported minimum, an increase must never
// lower it.
func TestAPQUpdateKeyMinMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := NewAdaptablePriorityQueue[float64, int]()

	handles := make([]*PQEntry[float64, int], 0, 64)
	for i := 0; i < 64; i++ {
		handles = append(handles, q.Add(rng.Float64()*100, i))
	}

	for i := 0; i < 500; i++ {
		before, err := q.Min()
		require.NoError(t, err)
		beforeKey := before.GetKey()

		handle := handles[rng.Intn(len(handles))]
		oldKey, err := q.Key(handle)
		require.NoError(t, err)

		delta := rng.Float64()*20 - 10
		require.NoError(t, q.UpdateKey(handle, oldKey+delta))
		verifyHeap(t, q)

		after, err := q.Min()
		require.NoError(t, err)
		if delta < 0 {
			require.LessOrEqual(t, after.GetKey(), beforeKey)
		} else {
			require.GreaterOrEqual(t, after.GetKey(), beforeKey)
		}
	}
}

func TestAPQRemoveArbitrary(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	q := NewAdaptablePriorityQueue[float64, int]()

	handles := make(map[int]*PQEntry[float64, int])
	for i := 0; i < 32; i++ {
		handles[i] = q.Add(rng.Float64()*100, i)
	}

	removed := map[int]bool{}
	for _, i := range []int{3, 17, 0, 31, 8, 8} {
		err := q.Remove(handles[i])
		if removed[i] {
			require.ErrorIs(t, err, ErrInvalidHandle)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, detachedPos, handles[i].GetPos())
		removed[i] = true
		verifyHeap(t, q)
	}

	require.Equal(t, 32-len(removed), q.Size())
	for !q.IsEmpty() {
		entry, err := q.ExtractMin()
		require.NoError(t, err)
		require.False(t, removed[entry.GetValue()], "removed value %d resurfaced", entry.GetValue())
	}
}

func TestAPQDetachedHandle(t *testing.T) {
	q := NewAdaptablePriorityQueue[float64, int]()
	q.Add(1, 1)
	entry := q.Add(2, 2)

	require.NoError(t, q.Remove(entry))

	require.ErrorIs(t, q.Remove(entry), ErrInvalidHandle)
	require.ErrorIs(t, q.UpdateKey(entry, 0), ErrInvalidHandle)
	_, err := q.Key(entry)
	require.ErrorIs(t, err, ErrInvalidHandle)

	popped, err := q.ExtractMin()
	require.NoError(t, err)
	require.ErrorIs(t, q.UpdateKey(popped, 0), ErrInvalidHandle)
}

// Randomized mix of every mutating operation; the invariants must hold after
// each step and the surviving keys must drain in sorted order.
func TestAPQRandomizedInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	q := NewAdaptablePriorityQueue[float64, int]()

	live := make([]*PQEntry[float64, int], 0)
	next := 0

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(4); {
		case op == 0 || q.Size() == 0:
			live = append(live, q.Add(rng.Float64()*1000, next))
			next++
		case op == 1:
			entry, err := q.ExtractMin()
			require.NoError(t, err)
			live = dropHandle(live, entry)
		case op == 2:
			handle := live[rng.Intn(len(live))]
			require.NoError(t, q.UpdateKey(handle, rng.Float64()*1000))
		default:
			handle := live[rng.Intn(len(live))]
			require.NoError(t, q.Remove(handle))
			live = dropHandle(live, handle)
		}
		verifyHeap(t, q)
	}

	rest := make([]float64, 0, q.Size())
	for !q.IsEmpty() {
		entry, err := q.ExtractMin()
		require.NoError(t, err)
		rest = append(rest, entry.GetKey())
	}
	require.True(t, sort.Float64sAreSorted(rest))
}

func dropHandle(live []*PQEntry[float64, int], gone *PQEntry[float64, int]) []*PQEntry[float64, int] {
	for i, handle := range live {
		if handle == gone {
			live[i] = live[len(live)-1]
			return live[:len(live)-1]
		}
	}
	return live
}

func TestDAryHeapBranchingFactors(t *testing.T) {
	for _, d := range []int{2, 3, 4} {
		q := NewDAryPriorityQueue[float64, int](d)
		for i := 0; i < 50; i++ {
			q.Add(float64((i * 37) % 50), i)
		}
		prev := -1.0
		for !q.IsEmpty() {
			entry, err := q.ExtractMin()
			require.NoError(t, err)
			require.GreaterOrEqual(t, entry.GetKey(), prev)
			prev = entry.GetKey()
		}
	}
}
