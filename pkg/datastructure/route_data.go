package datastructure

import (
	"github.com/waymark-routing/waymark/pkg/geo"
	"github.com/waymark-routing/waymark/pkg/util"
)

// RouteHop is one reporting record of a reconstructed route: a vertex label
// with its coordinate and the cumulative cost from the source.
type RouteHop[T comparable] struct {
	point geo.Coordinate
	label T
	cost  float64
}

func NewRouteHop[T comparable](point geo.Coordinate, label T, cost float64) RouteHop[T] {
	return RouteHop[T]{
		point: point,
		label: label,
		cost:  cost,
	}
}

func (h RouteHop[T]) GetPoint() geo.Coordinate {
	return h.point
}

func (h RouteHop[T]) GetLabel() T {
	return h.label
}

func (h RouteHop[T]) GetCost() float64 {
	return h.cost
}

// Route is a reconstructed shortest route. Hops are stored in reporting
// order, destination first, exactly as the predecessor walk discovers them.
// The source vertex itself is not a hop.
type Route[T comparable] struct {
	hops []RouteHop[T]
	cost float64
}

func NewRoute[T comparable](hops []RouteHop[T], cost float64) *Route[T] {
	return &Route[T]{
		hops: hops,
		cost: cost,
	}
}

// GetHops returns the hops in reporting order (destination first).
func (r *Route[T]) GetHops() []RouteHop[T] {
	return r.hops
}

// GetCost returns the total cost from source to destination.
func (r *Route[T]) GetCost() float64 {
	return r.cost
}

// TravelOrder returns the hops reordered source side first.
func (r *Route[T]) TravelOrder() []RouteHop[T] {
	return util.ReverseG(r.hops)
}
