package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversineDistance(t *testing.T) {
	// Dublin to Cork, roughly 220 km
	dist := HaversineDistance(53.3498, -6.2603, 51.8985, -8.4756)
	require.InDelta(t, 220, dist, 5)

	require.Zero(t, HaversineDistance(53.3498, -6.2603, 53.3498, -6.2603))
}

func TestRouteLength(t *testing.T) {
	coords := []Coordinate{
		NewCoordinate(53.3498, -6.2603),
		NewCoordinate(53.3436, -6.2571),
		NewCoordinate(53.3382, -6.2591),
	}

	leg1 := HaversineDistance(coords[0].Lat, coords[0].Lon, coords[1].Lat, coords[1].Lon)
	leg2 := HaversineDistance(coords[1].Lat, coords[1].Lon, coords[2].Lat, coords[2].Lon)
	require.InDelta(t, leg1+leg2, RouteLength(coords), 1e-12)

	require.Zero(t, RouteLength(nil))
	require.Zero(t, RouteLength(coords[:1]))
}

func TestGetDestinationPoint(t *testing.T) {
	// 1 km due north barely moves longitude and raises latitude by ~0.009 deg
	lat, lon := GetDestinationPoint(53.3498, -6.2603, 0, 1)
	require.InDelta(t, 53.3498+0.008993, lat, 1e-4)
	require.InDelta(t, -6.2603, lon, 1e-4)

	// the round trip back lands on the start
	backLat, backLon := GetDestinationPoint(lat, lon, 180, 1)
	require.InDelta(t, 53.3498, backLat, 1e-6)
	require.InDelta(t, -6.2603, backLon, 1e-6)
}
