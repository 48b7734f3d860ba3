package controllers

import (
	da "github.com/waymark-routing/waymark/pkg/datastructure"
)

type routeRequest struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
}

type snapRouteRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"required,min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"required,min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"required,min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"required,min=-180,max=180"`
}

type travelTimeTableRequest struct {
	Sources []string `json:"sources" validate:"required,min=1"`
	Targets []string `json:"targets" validate:"required,min=1"`
}

type routeHopResponse struct {
	Type      string  `json:"type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Element   string  `json:"element"`
	Cost      float64 `json:"cost"`
}

type routeResponse struct {
	Source     string             `json:"source"`
	Target     string             `json:"target"`
	Cost       float64            `json:"cost"`
	DistanceKm float64            `json:"distance_km"`
	Path       string             `json:"path"`
	Hops       []routeHopResponse `json:"hops"`
}

func NewRouteResponse(source, target string, hops []da.RouteHop[string],
	path string, cost, distKm float64) routeResponse {
	hopDTOs := make([]routeHopResponse, 0, len(hops))
	for _, hop := range hops {
		point := hop.GetPoint()
		hopDTOs = append(hopDTOs, routeHopResponse{
			Type:      "W",
			Latitude:  point.GetLat(),
			Longitude: point.GetLon(),
			Element:   hop.GetLabel(),
			Cost:      hop.GetCost(),
		})
	}
	return routeResponse{
		Source:     source,
		Target:     target,
		Cost:       cost,
		DistanceKm: distKm,
		Path:       path,
		Hops:       hopDTOs,
	}
}

type travelTimeTableResponse struct {
	Durations [][]float64 `json:"durations"`
}

func NewTravelTimeTableResponse(durations [][]float64) travelTimeTableResponse {
	return travelTimeTableResponse{Durations: durations}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
