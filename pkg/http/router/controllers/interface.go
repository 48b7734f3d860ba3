package controllers

import (
	da "github.com/waymark-routing/waymark/pkg/datastructure"
)

type RoutingService interface {
	Route(source, target string) ([]da.RouteHop[string], string, float64, float64, error)
	SnapRoute(origLat, origLon, dstLat, dstLon float64) (string, string,
		[]da.RouteHop[string], string, float64, float64, error)
	TravelTimeTable(sources, targets []string) ([][]float64, error)
}
