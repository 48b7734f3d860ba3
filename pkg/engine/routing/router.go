package routing

import (
	"fmt"

	da "github.com/waymark-routing/waymark/pkg/datastructure"
	"go.uber.org/zap"
)

// Router reconstructs reportable routes on a RouteMap.
type Router[T comparable] struct {
	rm  *da.RouteMap[T]
	log *zap.Logger
}

func NewRouter[T comparable](rm *da.RouteMap[T], log *zap.Logger) *Router[T] {
	return &Router[T]{rm: rm, log: log}
}

func (r *Router[T]) GetRouteMap() *da.RouteMap[T] {
	return r.rm
}

// Route runs a shortest-path search from source and walks the predecessor
// chain backward from dest, one hop per vertex (the source itself is not a
// hop). The walk is bounded by the closed-set size, so a missing or cyclic
// chain fails with ErrUnreachable instead of looping.
func (r *Router[T]) Route(source, dest T) (*da.Route[T], error) {
	res, err := NewDijkstra[T](r.rm).ShortestPath(source)
	if err != nil {
		return nil, err
	}

	destInfo, ok := res.Get(dest)
	if !ok {
		return nil, fmt.Errorf("no route %v -> %v: %w", source, dest, ErrUnreachable)
	}

	hops := make([]da.RouteHop[T], 0)
	cur, info := dest, destInfo
	for steps := 0; cur != source; steps++ {
		if steps >= res.Size() {
			return nil, fmt.Errorf("predecessor chain %v -> %v is cyclic: %w", source, dest, ErrUnreachable)
		}

		v, okv := r.rm.GetVertexByLabel(cur)
		if !okv {
			return nil, fmt.Errorf("route hop %v: %w", cur, da.ErrVertexNotFound)
		}
		coord, _ := r.rm.GetVertexCoordinates(v)
		hops = append(hops, da.NewRouteHop(coord, cur, info.GetDist()))

		pred, okp := info.GetPred()
		if !okp {
			return nil, fmt.Errorf("predecessor chain %v -> %v is broken at %v: %w", source, dest, cur, ErrUnreachable)
		}
		cur = pred
		if info, ok = res.Get(cur); !ok {
			return nil, fmt.Errorf("predecessor %v was never finalized: %w", cur, ErrUnreachable)
		}
	}

	if r.log != nil {
		r.log.Debug("route reconstructed",
			zap.Int("hops", len(hops)), zap.Float64("cost", destInfo.GetDist()))
	}

	return da.NewRoute(hops, destInfo.GetDist()), nil
}
