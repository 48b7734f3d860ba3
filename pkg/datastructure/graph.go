package datastructure

import (
	"errors"
	"fmt"
)

var ErrVertexNotFound = errors.New("vertex not found in graph")

// Vertex is an identity-bearing wrapper around a caller element. Graph
// membership is keyed by the *Vertex pointer, never by element value, so two
// vertices created from equal elements stay distinct.
type Vertex[T comparable] struct {
	element T
}

func (v *Vertex[T]) GetElement() T {
	return v.element
}

// Edge is an immutable ordered pair of vertex references plus a weight.
type Edge[T comparable] struct {
	start  *Vertex[T]
	end    *Vertex[T]
	weight float64
}

func (e *Edge[T]) GetStart() *Vertex[T] {
	return e.start
}

func (e *Edge[T]) GetEnd() *Vertex[T] {
	return e.end
}

func (e *Edge[T]) GetWeight() float64 {
	return e.weight
}

func (e *Edge[T]) Vertices() (*Vertex[T], *Vertex[T]) {
	return e.start, e.end
}

// Opposite returns the endpoint of e that is not v.
func (e *Edge[T]) Opposite(v *Vertex[T]) (*Vertex[T], error) {
	switch v {
	case e.start:
		return e.end, nil
	case e.end:
		return e.start, nil
	}
	return nil, fmt.Errorf("edge %v-%v: %w", e.start.element, e.end.element, ErrVertexNotFound)
}

// Graph is an adjacency-map weighted graph: vertex -> (neighbor -> edge).
//
// Invariant: a two-way edge is the same *Edge in both endpoints' maps; a
// one-way edge or self-loop appears only in the start vertex's map. One-way
// edges model a directed connection inside an otherwise undirected graph.
type Graph[T comparable] struct {
	structure map[*Vertex[T]]map[*Vertex[T]]*Edge[T]
}

func NewGraph[T comparable]() *Graph[T] {
	return &Graph[T]{
		structure: make(map[*Vertex[T]]map[*Vertex[T]]*Edge[T]),
	}
}

func (g *Graph[T]) NumVertices() int {
	return len(g.structure)
}

// NumEdges counts deduplicated edges. A two-way edge sits in both adjacency
// maps but is only counted at its start vertex; a one-way edge sits in one
// map only, so summing adjacency sizes and halving would undercount it.
func (g *Graph[T]) NumEdges() int {
	return len(g.Edges())
}

func (g *Graph[T]) HasVertex(v *Vertex[T]) bool {
	_, ok := g.structure[v]
	return ok
}

func (g *Graph[T]) Vertices() []*Vertex[T] {
	vertices := make([]*Vertex[T], 0, len(g.structure))
	for v := range g.structure {
		vertices = append(vertices, v)
	}
	return vertices
}

// GetVertexByLabel returns some vertex whose element equals the label.
// Linear scan; RouteMap shadows this with an O(1) index.
func (g *Graph[T]) GetVertexByLabel(element T) (*Vertex[T], bool) {
	for v := range g.structure {
		if v.element == element {
			return v, true
		}
	}
	return nil, false
}

// Edges returns every edge exactly once: an edge is emitted only when the
// iterated adjacency key equals its start vertex.
func (g *Graph[T]) Edges() []*Edge[T] {
	edges := make([]*Edge[T], 0)
	for v, adjacent := range g.structure {
		for _, e := range adjacent {
			if e.start == v {
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// GetEdges returns all edges incident on v.
func (g *Graph[T]) GetEdges(v *Vertex[T]) ([]*Edge[T], error) {
	adjacent, ok := g.structure[v]
	if !ok {
		return nil, fmt.Errorf("get edges of %v: %w", v.element, ErrVertexNotFound)
	}
	edges := make([]*Edge[T], 0, len(adjacent))
	for _, e := range adjacent {
		edges = append(edges, e)
	}
	return edges, nil
}

func (g *Graph[T]) GetEdge(v, w *Vertex[T]) (*Edge[T], bool) {
	adjacent, ok := g.structure[v]
	if !ok {
		return nil, false
	}
	e, ok := adjacent[w]
	return e, ok
}

func (g *Graph[T]) Degree(v *Vertex[T]) (int, error) {
	adjacent, ok := g.structure[v]
	if !ok {
		return 0, fmt.Errorf("degree of %v: %w", v.element, ErrVertexNotFound)
	}
	return len(adjacent), nil
}

// AddVertex always creates a fresh vertex, even when another vertex already
// wraps an equal element.
func (g *Graph[T]) AddVertex(element T) *Vertex[T] {
	v := &Vertex[T]{element: element}
	g.structure[v] = make(map[*Vertex[T]]*Edge[T])
	return v
}

// AddVertexIfNew returns an existing vertex wrapping element, creating one
// only on a miss.
func (g *Graph[T]) AddVertexIfNew(element T) *Vertex[T] {
	if v, ok := g.GetVertexByLabel(element); ok {
		return v
	}
	return g.AddVertex(element)
}

// AddEdge connects v and w with the given weight. Re-adding between the same
// ordered pair replaces the prior edge. A oneway edge (and any self-loop) is
// recorded only in v's adjacency map.
func (g *Graph[T]) AddEdge(v, w *Vertex[T], weight float64, oneway bool) (*Edge[T], error) {
	if !g.HasVertex(v) || !g.HasVertex(w) {
		return nil, fmt.Errorf("add edge %v-%v: %w", v.element, w.element, ErrVertexNotFound)
	}

	e := &Edge[T]{start: v, end: w, weight: weight}
	g.structure[v][w] = e
	if !oneway && v != w {
		g.structure[w][v] = e
	}
	return e, nil
}
