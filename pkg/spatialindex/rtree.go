package spatialindex

import (
	"math"

	"github.com/tidwall/rtree"
	"go.uber.org/zap"

	da "github.com/waymark-routing/waymark/pkg/datastructure"
	"github.com/waymark-routing/waymark/pkg/geo"
)

type Rtree[T comparable] struct {
	tr *rtree.RTreeG[vertexPoint[T]]
}

type vertexPoint[T comparable] struct {
	label T
	coord geo.Coordinate
}

func NewRtree[T comparable]() *Rtree[T] {
	var tr rtree.RTreeG[vertexPoint[T]]
	return &Rtree[T]{
		tr: &tr,
	}
}

// Build indexes every route-map vertex as a point box.
func (rt *Rtree[T]) Build(rm *da.RouteMap[T], log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	rm.ForVertices(func(v *da.Vertex[T], coord geo.Coordinate) {
		point := [2]float64{coord.GetLon(), coord.GetLat()}
		rt.tr.Insert(point, point, vertexPoint[T]{label: v.GetElement(), coord: coord})
	})
	log.Info("R-tree spatial index built.", zap.Int("vertices", rt.tr.Len()))
}

// SnapToVertex returns the label of the vertex nearest to the query point
// (qLat, qLon) among those within radius km.
func (rt *Rtree[T]) SnapToVertex(qLat, qLon, radius float64) (T, bool) {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	var (
		best     T
		bestDist = math.MaxFloat64
		found    bool
	)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data vertexPoint[T]) bool {
			dist := geo.HaversineDistance(qLat, qLon, data.coord.GetLat(), data.coord.GetLon())
			if dist <= radius && dist < bestDist {
				best, bestDist, found = data.label, dist, true
			}
			return true
		})
	return best, found
}
