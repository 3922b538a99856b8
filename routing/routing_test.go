package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	origin      = LatLng{Lat: 24.7150, Lng: 46.6750}
	destination = LatLng{Lat: 24.7300, Lng: 46.7000}
)

func TestZoneAround(t *testing.T) {
	z := ZoneAround(LatLng{Lat: 24.71, Lng: 46.67}, 0.01)

	assert.True(t, z.Active)
	assert.True(t, z.contains(LatLng{Lat: 24.71, Lng: 46.67}))
	assert.True(t, z.contains(LatLng{Lat: 24.719, Lng: 46.679}))
	assert.False(t, z.contains(LatLng{Lat: 24.73, Lng: 46.67}))
}

func TestCrosses(t *testing.T) {
	hazard := ZoneAround(LatLng{Lat: 24.71, Lng: 46.68}, 0.005)

	inside := Path{Name: "through", Waypoints: []LatLng{{24.70, 46.66}, {24.71, 46.68}}}
	outside := Path{Name: "around", Waypoints: []LatLng{{24.70, 46.66}, {24.68, 46.70}}}

	assert.True(t, inside.Crosses(hazard))
	assert.False(t, outside.Crosses(hazard))

	// inactive zone never blocks anything
	assert.False(t, inside.Crosses(HazardZone{}))
}

func TestSafestRouteAvoidsHazard(t *testing.T) {
	// box sits on Route A's middle waypoint
	hazard := ZoneAround(LatLng{Lat: 24.71, Lng: 46.68}, 0.001)

	name, ok := SafestRoute(origin, destination, hazard, DefaultPaths)

	require.True(t, ok)
	assert.NotEqual(t, "Route A", name)
}

func TestSafestRoutePrefersCheapest(t *testing.T) {
	waypoints := []LatLng{{24.72, 46.68}, {24.72, 46.69}}
	paths := []Path{
		{Name: "penalized", Waypoints: waypoints, Penalty: 3.0},
		{Name: "clear", Waypoints: waypoints},
	}

	name, ok := SafestRoute(origin, destination, HazardZone{}, paths)

	require.True(t, ok)
	assert.Equal(t, "clear", name)
}

func TestSafestRouteNoneAvailable(t *testing.T) {
	// hazard box swallowing the whole event area
	hazard := ZoneAround(LatLng{Lat: 24.71, Lng: 46.68}, 1.0)

	name, ok := SafestRoute(origin, destination, hazard, DefaultPaths)

	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestSafestRouteSkipsEmptyPaths(t *testing.T) {
	paths := []Path{
		{Name: "empty"},
		{Name: "real", Waypoints: []LatLng{{24.72, 46.68}}},
	}

	name, ok := SafestRoute(origin, destination, HazardZone{}, paths)

	require.True(t, ok)
	assert.Equal(t, "real", name)
}

func TestAffectedRoutes(t *testing.T) {
	hazard := ZoneAround(LatLng{Lat: 24.71, Lng: 46.68}, 0.001)
	assert.Equal(t, []string{"Route A"}, AffectedRoutes(hazard, DefaultPaths))

	everything := ZoneAround(LatLng{Lat: 24.71, Lng: 46.68}, 1.0)
	assert.Equal(t, []string{"Route A", "Route B", "Route C"}, AffectedRoutes(everything, DefaultPaths))

	assert.Empty(t, AffectedRoutes(HazardZone{}, DefaultPaths))
}
