package datastructure

import (
	"github.com/waymark-routing/waymark/pkg/geo"
)

// RouteMap is a Graph specialization for coordinate-labelled road networks:
// every vertex carries a write-once coordinate, and label lookup goes through
// a side index instead of the Graph linear scan. Purely a performance and
// reporting specialization; the adjacency semantics are unchanged.
type RouteMap[T comparable] struct {
	*Graph[T]
	coords  map[*Vertex[T]]geo.Coordinate
	byLabel map[T]*Vertex[T]
}

func NewRouteMap[T comparable]() *RouteMap[T] {
	return &RouteMap[T]{
		Graph:   NewGraph[T](),
		coords:  make(map[*Vertex[T]]geo.Coordinate),
		byLabel: make(map[T]*Vertex[T]),
	}
}

// AddVertex registers a fresh vertex together with its coordinate. As with
// Graph.AddVertex a new vertex is always created; when labels collide the
// index keeps the most recent vertex.
func (rm *RouteMap[T]) AddVertex(element T, lat, lon float64) *Vertex[T] {
	v := rm.Graph.AddVertex(element)
	rm.coords[v] = geo.NewCoordinate(lat, lon)
	rm.byLabel[element] = v
	return v
}

// GetVertexByLabel resolves a label in O(1) through the side index.
func (rm *RouteMap[T]) GetVertexByLabel(element T) (*Vertex[T], bool) {
	v, ok := rm.byLabel[element]
	return v, ok
}

func (rm *RouteMap[T]) GetVertexCoordinates(v *Vertex[T]) (geo.Coordinate, bool) {
	coord, ok := rm.coords[v]
	return coord, ok
}

// ForVertices visits every vertex with its coordinate, for index builders.
func (rm *RouteMap[T]) ForVertices(fn func(v *Vertex[T], coord geo.Coordinate)) {
	for v := range rm.structure {
		fn(v, rm.coords[v])
	}
}
