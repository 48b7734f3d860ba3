package usecases

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/waymark-routing/waymark/pkg"
	da "github.com/waymark-routing/waymark/pkg/datastructure"
	"github.com/waymark-routing/waymark/pkg/engine/routing"
	"github.com/waymark-routing/waymark/pkg/util"
)

// fixedSnapIndex snaps any query to a canned label sequence.
type fixedSnapIndex struct {
	labels []string
	calls  int
}

func (f *fixedSnapIndex) SnapToVertex(lat, lon, radius float64) (string, bool) {
	if f.calls >= len(f.labels) {
		return "", false
	}
	label := f.labels[f.calls]
	f.calls++
	return label, label != ""
}

func testService(t *testing.T, snap SpatialIndex) *RoutingService {
	t.Helper()
	rm := da.NewRouteMap[string]()
	a := rm.AddVertex("A", 53.3498, -6.2603)
	b := rm.AddVertex("B", 53.3436, -6.2571)
	c := rm.AddVertex("C", 53.3382, -6.2591)
	rm.AddVertex("island", 53.5, -6.5)

	_, err := rm.AddEdge(a, b, 1, false)
	require.NoError(t, err)
	_, err = rm.AddEdge(b, c, 2, false)
	require.NoError(t, err)

	router := routing.NewRouter(rm, zap.NewNop())
	return NewRoutingService(zap.NewNop(), router, snap, 0.5, 2)
}

func requireErrorCode(t *testing.T, err error, code error) {
	t.Helper()
	var svcErr *util.Error
	require.True(t, errors.As(err, &svcErr))
	require.Equal(t, code, svcErr.Code())
}

func TestRouteService(t *testing.T) {
	svc := testService(t, nil)

	hops, poly, cost, dist, err := svc.Route("A", "C")
	require.NoError(t, err)
	require.Len(t, hops, 2)
	require.Equal(t, "C", hops[0].GetLabel())
	require.Equal(t, 3.0, cost)
	require.NotEmpty(t, poly)
	require.Greater(t, dist, 0.0)
}

func TestRouteServiceUnreachable(t *testing.T) {
	svc := testService(t, nil)

	_, _, _, _, err := svc.Route("A", "island")
	requireErrorCode(t, err, util.ErrNotFound)
	require.ErrorIs(t, err, routing.ErrUnreachable)
}

func TestRouteServiceUnknownVertex(t *testing.T) {
	svc := testService(t, nil)

	_, _, _, _, err := svc.Route("nowhere", "C")
	requireErrorCode(t, err, util.ErrNotFound)
	require.ErrorIs(t, err, da.ErrVertexNotFound)
}

func TestSnapRoute(t *testing.T) {
	snap := &fixedSnapIndex{labels: []string{"A", "C"}}
	svc := testService(t, snap)

	source, target, hops, poly, cost, _, err := svc.SnapRoute(53.3499, -6.2604, 53.3383, -6.2592)
	require.NoError(t, err)
	require.Equal(t, "A", source)
	require.Equal(t, "C", target)
	require.Len(t, hops, 2)
	require.NotEmpty(t, poly)
	require.Equal(t, 3.0, cost)
}

func TestSnapRouteNoVertexNearby(t *testing.T) {
	snap := &fixedSnapIndex{labels: nil}
	svc := testService(t, snap)

	_, _, _, _, _, _, err := svc.SnapRoute(0, 0, 0, 0)
	requireErrorCode(t, err, util.ErrNotFound)
}

func TestTravelTimeTable(t *testing.T) {
	svc := testService(t, nil)

	table, err := svc.TravelTimeTable([]string{"A", "C"}, []string{"A", "B", "island"})
	require.NoError(t, err)
	require.Len(t, table, 2)

	require.Equal(t, []float64{0, 1, pkg.INF_WEIGHT}, table[0])
	require.Equal(t, []float64{3, 2, pkg.INF_WEIGHT}, table[1])
}

func TestTravelTimeTableUnknownSource(t *testing.T) {
	svc := testService(t, nil)

	_, err := svc.TravelTimeTable([]string{"nowhere"}, []string{"A"})
	requireErrorCode(t, err, util.ErrBadParamInput)
}
