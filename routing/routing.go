// Package routing recommends alternate crowd routes around an active hazard
// zone. The candidate paths are a fixed set of known pedestrian corridors;
// cost is path length plus a per-path penalty, and any path touching the
// hazard bounding box is excluded outright.
package routing

import "math"

type LatLng struct {
	Lat float64
	Lng float64
}

type HazardZone struct {
	Active bool
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// ZoneAround builds an active hazard box around a point. Roughly one
// kilometer per 0.009 degrees at these latitudes.
func ZoneAround(center LatLng, degrees float64) HazardZone {
	return HazardZone{
		Active: true,
		MinLat: center.Lat - degrees,
		MaxLat: center.Lat + degrees,
		MinLng: center.Lng - degrees,
		MaxLng: center.Lng + degrees,
	}
}

func (z HazardZone) contains(p LatLng) bool {
	return p.Lat >= z.MinLat && p.Lat <= z.MaxLat && p.Lng >= z.MinLng && p.Lng <= z.MaxLng
}

type Path struct {
	Name      string
	Waypoints []LatLng
	Penalty   float64 // congestion/closure penalty added to the distance cost
}

// DefaultPaths are the corridors around the central event area.
var DefaultPaths = []Path{
	{Name: "Route A", Waypoints: []LatLng{{24.71, 46.67}, {24.71, 46.68}, {24.70, 46.69}}},
	{Name: "Route B", Waypoints: []LatLng{{24.72, 46.66}, {24.70, 46.67}, {24.69, 46.68}}},
	{Name: "Route C", Waypoints: []LatLng{{24.73, 46.69}, {24.71, 46.69}, {24.70, 46.70}}, Penalty: 3.0},
}

// Crosses reports whether any waypoint of the path lies inside the hazard.
func (p Path) Crosses(z HazardZone) bool {
	if !z.Active {
		return false
	}
	for _, wp := range p.Waypoints {
		if z.contains(wp) {
			return true
		}
	}
	return false
}

// SafestRoute picks the cheapest path from origin to destination that avoids
// the hazard zone. ok is false when every path crosses the hazard, in which
// case crowds should be held rather than rerouted.
func SafestRoute(origin, destination LatLng, hazard HazardZone, paths []Path) (name string, ok bool) {
	minCost := math.Inf(1)

	for _, path := range paths {
		if len(path.Waypoints) == 0 || path.Crosses(hazard) {
			continue
		}

		cost := distance(origin, path.Waypoints[0])
		for i := 0; i < len(path.Waypoints)-1; i++ {
			cost += distance(path.Waypoints[i], path.Waypoints[i+1])
		}
		cost += distance(path.Waypoints[len(path.Waypoints)-1], destination)
		cost += path.Penalty

		if cost < minCost {
			minCost = cost
			name = path.Name
			ok = true
		}
	}
	return name, ok
}

// AffectedRoutes lists the paths that cross the hazard zone.
func AffectedRoutes(hazard HazardZone, paths []Path) []string {
	var affected []string
	for _, path := range paths {
		if path.Crosses(hazard) {
			affected = append(affected, path.Name)
		}
	}
	return affected
}

// planar distance in degree space; fine for ranking nearby paths against
// each other, not a real-world length.
func distance(a, b LatLng) float64 {
	return math.Sqrt((a.Lat-b.Lat)*(a.Lat-b.Lat) + (a.Lng-b.Lng)*(a.Lng-b.Lng))
}
