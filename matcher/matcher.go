package matcher

import (
	"math"
	"sort"
	"time"

	"go-sentinel/types"
)

const earthRadiusM = 6371000.0

// QualifyingByUID groups the location records that qualify as exposure
// touchpoints for the case, keyed by uid. A record qualifies when its
// location id equals the case's suspected source and its timestamp lies
// within windowHours of the event time. A case without a suspected source
// simply has no matches.
func QualifyingByUID(c types.Case, pool []types.LocationRecord, windowHours int) map[string][]types.LocationRecord {
	byUID := make(map[string][]types.LocationRecord)
	if c.SuspectedSourceID == "" {
		return byUID
	}

	window := time.Duration(windowHours) * time.Hour
	for _, rec := range pool {
		if rec.LocationID != c.SuspectedSourceID {
			continue
		}
		diff := c.EventTime.Sub(rec.Timestamp)
		if diff < 0 {
			diff = -diff
		}
		if diff > window {
			continue
		}
		byUID[rec.UID] = append(byUID[rec.UID], rec)
	}
	return byUID
}

// Match returns one MatchedExposure per uid co-located with the case's
// suspected source within the window. The matched touchpoint is the earliest
// qualifying record for that uid, so the result does not depend on pool
// order.
func Match(c types.Case, pool []types.LocationRecord, windowHours int) []types.MatchedExposure {
	byUID := QualifyingByUID(c, pool, windowHours)

	uids := make([]string, 0, len(byUID))
	for uid := range byUID {
		uids = append(uids, uid)
	}
	sort.Strings(uids)

	matches := make([]types.MatchedExposure, 0, len(uids))
	for _, uid := range uids {
		touch := byUID[uid][0]
		for _, rec := range byUID[uid][1:] {
			if rec.Timestamp.Before(touch.Timestamp) {
				touch = rec
			}
		}
		matches = append(matches, types.MatchedExposure{
			CaseID:              c.ID,
			UID:                 uid,
			MatchedLocationID:   touch.LocationID,
			MatchedLocationName: touch.LocationName,
			MatchedTimestamp:    touch.Timestamp,
		})
	}
	return matches
}

// RadiusQuery is the geofence reverse query: which uids checked in within
// radiusMeters of the center during the window.
type RadiusQuery struct {
	CenterLat    float64
	CenterLng    float64
	RadiusMeters float64
	Start        time.Time
	End          time.Time
}

type RadiusResult struct {
	UIDs         []string
	Scanned      int
	TimeFiltered int
	Geofenced    int
}

// QueryRadius applies the same two-stage pattern as Match: time window
// first, then the spatial filter. Returned uids are unique and sorted.
func QueryRadius(pool []types.LocationRecord, q RadiusQuery) RadiusResult {
	res := RadiusResult{Scanned: len(pool)}

	seen := make(map[string]bool)
	for _, rec := range pool {
		if rec.Timestamp.Before(q.Start) || rec.Timestamp.After(q.End) {
			continue
		}
		res.TimeFiltered++

		if HaversineMeters(q.CenterLat, q.CenterLng, rec.Lat, rec.Lng) > q.RadiusMeters {
			continue
		}
		res.Geofenced++

		if !seen[rec.UID] {
			seen[rec.UID] = true
			res.UIDs = append(res.UIDs, rec.UID)
		}
	}
	sort.Strings(res.UIDs)
	return res
}

// HaversineMeters calculates the great-circle distance between two points
// on the earth (specified in decimal degrees).
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	radLat1 := lat1 * math.Pi / 180
	radLat2 := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radLat1)*math.Cos(radLat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}
