package usecases

import (
	"errors"

	"go.uber.org/zap"

	"github.com/waymark-routing/waymark/pkg"
	"github.com/waymark-routing/waymark/pkg/concurrent"
	da "github.com/waymark-routing/waymark/pkg/datastructure"
	"github.com/waymark-routing/waymark/pkg/engine/routing"
	"github.com/waymark-routing/waymark/pkg/guidance"
	"github.com/waymark-routing/waymark/pkg/util"
)

type RoutingService struct {
	log        *zap.Logger
	router     Router
	snapIndex  SpatialIndex
	snapRadius float64
	numWorkers int
}

// NewRoutingService wires the route-map router and the spatial index behind
// the API. snapRadius is the snap-to-vertex search radius in km.
func NewRoutingService(log *zap.Logger, router Router, snapIndex SpatialIndex,
	snapRadius float64, numWorkers int) *RoutingService {
	return &RoutingService{
		log:        log,
		router:     router,
		snapIndex:  snapIndex,
		snapRadius: snapRadius,
		numWorkers: numWorkers,
	}
}

// Route computes the shortest route between two vertex labels and returns
// the hops, the encoded polyline, the total cost and the geodesic length in
// km.
func (s *RoutingService) Route(source, target string) ([]da.RouteHop[string], string, float64, float64, error) {
	route, err := s.router.Route(source, target)
	if err != nil {
		switch {
		case errors.Is(err, routing.ErrUnreachable), errors.Is(err, da.ErrVertexNotFound):
			return nil, "", 0, 0, util.WrapErrorf(err, util.ErrNotFound,
				"no route from %s to %s", source, target)
		default:
			s.log.Error("route query failed", zap.Error(err),
				zap.String("source", source), zap.String("target", target))
			return nil, "", 0, 0, util.WrapErrorf(err, util.ErrInternalServerError,
				util.MessageInternalServerError)
		}
	}

	return route.GetHops(), guidance.EncodePolyline(route), route.GetCost(),
		guidance.RouteDistance(route), nil
}

// SnapRoute snaps the origin and destination coordinates to their nearest
// route-map vertices and routes between them. The snapped labels are
// returned alongside the route.
func (s *RoutingService) SnapRoute(origLat, origLon, dstLat, dstLon float64) (string, string,
	[]da.RouteHop[string], string, float64, float64, error) {
	sourceLabel, ok := s.snapIndex.SnapToVertex(origLat, origLon, s.snapRadius)
	if !ok {
		return "", "", nil, "", 0, 0, util.WrapErrorf(da.ErrVertexNotFound, util.ErrNotFound,
			"no vertex within %.2f km of origin", s.snapRadius)
	}
	targetLabel, ok := s.snapIndex.SnapToVertex(dstLat, dstLon, s.snapRadius)
	if !ok {
		return "", "", nil, "", 0, 0, util.WrapErrorf(da.ErrVertexNotFound, util.ErrNotFound,
			"no vertex within %.2f km of destination", s.snapRadius)
	}

	hops, poly, cost, dist, err := s.Route(sourceLabel, targetLabel)
	return sourceLabel, targetLabel, hops, poly, cost, dist, err
}

type tableJob struct {
	row    int
	source string
}

type tableRow struct {
	row   int
	cells []float64
	err   error
}

// TravelTimeTable computes the len(sources) x len(targets) cost matrix, one
// single-source run per row, fanned out over the worker pool. Unreachable
// cells hold pkg.INF_WEIGHT.
func (s *RoutingService) TravelTimeTable(sources, targets []string) ([][]float64, error) {
	pool := concurrent.NewWorkerPool[tableJob, tableRow](s.numWorkers, len(sources))

	pool.Start(func(job tableJob) tableRow {
		res, err := routing.NewDijkstra[string](s.router.GetRouteMap()).ShortestPath(job.source)
		if err != nil {
			return tableRow{row: job.row, err: err}
		}
		cells := make([]float64, len(targets))
		for j, target := range targets {
			if info, ok := res.Get(target); ok {
				cells[j] = info.GetDist()
			} else {
				cells[j] = pkg.INF_WEIGHT
			}
		}
		return tableRow{row: job.row, cells: cells}
	})

	for i, source := range sources {
		pool.AddJob(tableJob{row: i, source: source})
	}
	pool.Close()
	pool.Wait()

	table := make([][]float64, len(sources))
	var firstErr error
	for row := range pool.CollectResults() {
		if row.err != nil {
			if firstErr == nil {
				firstErr = row.err
			}
			continue
		}
		table[row.row] = row.cells
	}
	if firstErr != nil {
		if errors.Is(firstErr, da.ErrVertexNotFound) {
			return nil, util.WrapErrorf(firstErr, util.ErrBadParamInput, "unknown source vertex")
		}
		s.log.Error("travel time table failed", zap.Error(firstErr))
		return nil, util.WrapErrorf(firstErr, util.ErrInternalServerError, util.MessageInternalServerError)
	}
	return table, nil
}
