package routing

import (
	"testing"

	"github.com/stretchr/testify/require"

	da "github.com/waymark-routing/waymark/pkg/datastructure"
)

func lineRouteMap(t *testing.T) *da.RouteMap[string] {
	t.Helper()
	rm := da.NewRouteMap[string]()
	a := rm.AddVertex("A", 53.3498, -6.2603)
	b := rm.AddVertex("B", 53.3436, -6.2571)
	c := rm.AddVertex("C", 53.3382, -6.2591)

	_, err := rm.AddEdge(a, b, 1, false)
	require.NoError(t, err)
	_, err = rm.AddEdge(b, c, 2, false)
	require.NoError(t, err)
	_, err = rm.AddEdge(a, c, 4, false)
	require.NoError(t, err)
	return rm
}

func TestRouteHopOrderAndCosts(t *testing.T) {
	router := NewRouter(lineRouteMap(t), nil)

	route, err := router.Route("A", "C")
	require.NoError(t, err)
	require.Equal(t, 3.0, route.GetCost())

	hops := route.GetHops()
	require.Len(t, hops, 2, "the source itself is not a hop")

	// destination first, cumulative costs from the source
	require.Equal(t, "C", hops[0].GetLabel())
	require.Equal(t, 3.0, hops[0].GetCost())
	require.Equal(t, "B", hops[1].GetLabel())
	require.Equal(t, 1.0, hops[1].GetCost())

	require.InDelta(t, 53.3382, hops[0].GetPoint().GetLat(), 1e-9)
	require.InDelta(t, -6.2591, hops[0].GetPoint().GetLon(), 1e-9)

	travel := route.TravelOrder()
	require.Equal(t, "B", travel[0].GetLabel())
	require.Equal(t, "C", travel[1].GetLabel())
}

func TestRouteSourceEqualsDest(t *testing.T) {
	router := NewRouter(lineRouteMap(t), nil)

	route, err := router.Route("A", "A")
	require.NoError(t, err)
	require.Empty(t, route.GetHops())
	require.Equal(t, 0.0, route.GetCost())
}

func TestRouteUnreachable(t *testing.T) {
	rm := da.NewRouteMap[string]()
	rm.AddVertex("A", 0, 0)
	rm.AddVertex("island", 1, 1)
	router := NewRouter(rm, nil)

	_, err := router.Route("A", "island")
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestRouteUnknownSource(t *testing.T) {
	router := NewRouter(lineRouteMap(t), nil)

	_, err := router.Route("nowhere", "C")
	require.ErrorIs(t, err, da.ErrVertexNotFound)
}

func TestRouteUnknownDest(t *testing.T) {
	router := NewRouter(lineRouteMap(t), nil)

	_, err := router.Route("A", "nowhere")
	require.ErrorIs(t, err, ErrUnreachable)
}
