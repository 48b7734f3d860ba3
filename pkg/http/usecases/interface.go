package usecases

import (
	da "github.com/waymark-routing/waymark/pkg/datastructure"
)

type Router interface {
	Route(source, dest string) (*da.Route[string], error)
	GetRouteMap() *da.RouteMap[string]
}

type SpatialIndex interface {
	SnapToVertex(lat, lon, radius float64) (string, bool)
}
