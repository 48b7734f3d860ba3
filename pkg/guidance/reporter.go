package guidance

import (
	"fmt"
	"io"
	"strconv"

	"github.com/twpayne/go-polyline"

	da "github.com/waymark-routing/waymark/pkg/datastructure"
	"github.com/waymark-routing/waymark/pkg/geo"
)

// RouteHeader is the literal header of the route report contract.
const RouteHeader = "Type,Latitude,Longitude,element,cost"

// hopRole tags every emitted record as a waypoint.
const hopRole = "W"

// WriteRoute writes the textual route report: the literal header followed by
// one "W,<lat>,<lon>,<label>,<cost>" row per hop, destination first.
func WriteRoute[T comparable](w io.Writer, route *da.Route[T]) error {
	if _, err := fmt.Fprintln(w, RouteHeader); err != nil {
		return err
	}
	for _, hop := range route.GetHops() {
		point := hop.GetPoint()
		row := hopRole + "," +
			formatFloat(point.GetLat()) + "," +
			formatFloat(point.GetLon()) + "," +
			fmt.Sprintf("%v", hop.GetLabel()) + "," +
			formatFloat(hop.GetCost())
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EncodePolyline returns the route geometry as an encoded polyline, in travel
// order (source side first).
func EncodePolyline[T comparable](route *da.Route[T]) string {
	hops := route.TravelOrder()
	coords := make([][]float64, 0, len(hops))
	for _, hop := range hops {
		point := hop.GetPoint()
		coords = append(coords, []float64{point.GetLat(), point.GetLon()})
	}
	return string(polyline.EncodeCoords(coords))
}

// RouteDistance returns the geodesic length of the route in km.
func RouteDistance[T comparable](route *da.Route[T]) float64 {
	hops := route.TravelOrder()
	coords := make([]geo.Coordinate, 0, len(hops))
	for _, hop := range hops {
		coords = append(coords, hop.GetPoint())
	}
	return geo.RouteLength(coords)
}
