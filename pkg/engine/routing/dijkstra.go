package routing

import (
	"errors"
	"fmt"

	da "github.com/waymark-routing/waymark/pkg/datastructure"
)

var (
	// ErrNegativeWeight rejects graphs that violate the non-negative weight
	// precondition up front, instead of producing silently wrong distances.
	ErrNegativeWeight = errors.New("dijkstra requires non-negative edge weights")

	ErrUnreachable = errors.New("destination is not reachable from source")
)

// WeightedGraph is the graph capability the search needs.
// *datastructure.Graph satisfies it with a linear label scan,
// *datastructure.RouteMap with an indexed O(1) lookup.
type WeightedGraph[T comparable] interface {
	GetVertexByLabel(element T) (*da.Vertex[T], bool)
	GetEdges(v *da.Vertex[T]) ([]*da.Edge[T], error)
	Edges() []*da.Edge[T]
	NumVertices() int
}

// PathInfo is one finalized row of a shortest-path result.
type PathInfo[T comparable] struct {
	dist    float64
	pred    T
	hasPred bool
}

func (p PathInfo[T]) GetDist() float64 {
	return p.dist
}

// GetPred returns the predecessor label on the shortest path. ok is false
// only for the source vertex.
func (p PathInfo[T]) GetPred() (T, bool) {
	return p.pred, p.hasPred
}

// Result maps every reachable label to its finalized distance and
// predecessor. Rows never change once written; unreachable labels are absent.
type Result[T comparable] struct {
	source T
	closed map[T]PathInfo[T]
}

func (r *Result[T]) GetSource() T {
	return r.source
}

func (r *Result[T]) Get(label T) (PathInfo[T], bool) {
	info, ok := r.closed[label]
	return info, ok
}

func (r *Result[T]) Size() int {
	return len(r.closed)
}

func (r *Result[T]) ForEach(fn func(label T, info PathInfo[T])) {
	for label, info := range r.closed {
		fn(label, info)
	}
}

// Dijkstra computes single-source shortest paths over a WeightedGraph,
// driven by the adaptable priority queue: one queue entry per open vertex,
// improved in place through UpdateKey rather than lazy duplicate pushes.
//
// Ties between equal-cost paths resolve by heap order; the distances are
// deterministic, the chosen predecessors are not.
// Complexity: O((V + E) log V).
type Dijkstra[T comparable] struct {
	graph WeightedGraph[T]

	pq     *da.AdaptablePriorityQueue[float64, T]
	open   map[T]*da.PQEntry[float64, T]
	pred   map[T]T
	closed map[T]PathInfo[T]

	numSettledNodes int
}

func NewDijkstra[T comparable](graph WeightedGraph[T]) *Dijkstra[T] {
	return &Dijkstra[T]{
		graph: graph,
		pq:    da.NewAdaptablePriorityQueue[float64, T](),
	}
}

// ShortestPath runs from source until every reachable vertex is finalized.
func (d *Dijkstra[T]) ShortestPath(source T) (*Result[T], error) {
	if _, ok := d.graph.GetVertexByLabel(source); !ok {
		return nil, fmt.Errorf("source %v: %w", source, da.ErrVertexNotFound)
	}

	for _, e := range d.graph.Edges() {
		if e.GetWeight() < 0 {
			return nil, fmt.Errorf("edge %v-%v weight=%v: %w",
				e.GetStart().GetElement(), e.GetEnd().GetElement(), e.GetWeight(), ErrNegativeWeight)
		}
	}

	d.preallocate()
	d.open[source] = d.pq.Add(0, source)

	for !d.pq.IsEmpty() {
		if err := d.settleMin(); err != nil {
			return nil, err
		}
		d.numSettledNodes++
	}

	return &Result[T]{source: source, closed: d.closed}, nil
}

func (d *Dijkstra[T]) preallocate() {
	n := d.graph.NumVertices()
	d.pq.Preallocate(n)
	d.open = make(map[T]*da.PQEntry[float64, T], n)
	d.pred = make(map[T]T, n)
	d.closed = make(map[T]PathInfo[T], n)
	d.numSettledNodes = 0
}

// settleMin pops the open vertex with the smallest tentative distance,
// finalizes it and relaxes its incident edges.
func (d *Dijkstra[T]) settleMin() error {
	entry, err := d.pq.ExtractMin()
	if err != nil {
		return err
	}
	u := entry.GetValue()
	dist := entry.GetKey()
	delete(d.open, u)

	info := PathInfo[T]{dist: dist}
	if pred, ok := d.pred[u]; ok {
		info.pred, info.hasPred = pred, true
		delete(d.pred, u)
	}
	d.closed[u] = info

	uv, ok := d.graph.GetVertexByLabel(u)
	if !ok {
		return fmt.Errorf("settled vertex %v: %w", u, da.ErrVertexNotFound)
	}
	edges, err := d.graph.GetEdges(uv)
	if err != nil {
		return err
	}

	for _, e := range edges {
		wv, err := e.Opposite(uv)
		if err != nil {
			return err
		}
		w := wv.GetElement()
		if _, settled := d.closed[w]; settled {
			continue
		}

		candidate := dist + e.GetWeight()

		if handle, seen := d.open[w]; !seen {
			// first sight of w: open it with the candidate distance
			d.pred[w] = u
			d.open[w] = d.pq.Add(candidate, w)
		} else if candidate < handle.GetKey() {
			// strictly better path through u: lower w's key in place
			d.pred[w] = u
			if err := d.pq.UpdateKey(handle, candidate); err != nil {
				return err
			}
		}
	}

	return nil
}
