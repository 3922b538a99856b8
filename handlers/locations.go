package handlers

import (
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-sentinel/db"
	"go-sentinel/matcher"
	"go-sentinel/types"
)

// newest records considered by the reverse query
const reverseQueryScanLimit = 10000

type ingestRequest struct {
	UID          string   `json:"uid"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	LocationID   string   `json:"location_id"`
	LocationName string   `json:"location_name"`
}

// IngestLocation accepts one anonymized check-in. Data minimization: only
// the uid, coordinates, timestamp and location id ever get stored.
func IngestLocation(c *gin.Context, fs *firestore.Client) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.UID == "" || req.Lat == nil || req.Lng == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields: uid, lat, lng"})
		return
	}
	if *req.Lat < -90 || *req.Lat > 90 || *req.Lng < -180 || *req.Lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid GPS coordinates"})
		return
	}

	locationID := req.LocationID
	if locationID == "" {
		locationID = fmt.Sprintf("LOC_%.4f_%.4f", *req.Lat, *req.Lng)
	}

	rec := types.LocationRecord{
		UID:          req.UID,
		LocationID:   locationID,
		LocationName: req.LocationName,
		Timestamp:    time.Now().UTC(),
		Lat:          *req.Lat,
		Lng:          *req.Lng,
	}

	created, err := db.CreateLocationRecord(c.Request.Context(), fs, rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "location ingestion failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"record_id": created.ID,
		"timestamp": created.Timestamp.Format(time.RFC3339),
	})
}

type reverseQueryRequest struct {
	CenterLat       *float64 `json:"center_lat"`
	CenterLng       *float64 `json:"center_lng"`
	RadiusMeters    *float64 `json:"radius_meters"`
	TimeWindowStart string   `json:"time_window_start"`
	TimeWindowEnd   string   `json:"time_window_end"`
}

// QueryExposedUIDs runs the geofence reverse query: unique uids inside the
// radius during the window. Only uids leave this endpoint, never location
// history.
func QueryExposedUIDs(c *gin.Context, fs *firestore.Client) {
	var req reverseQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.CenterLat == nil || req.CenterLng == nil || req.RadiusMeters == nil ||
		req.TimeWindowStart == "" || req.TimeWindowEnd == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required parameters: center_lat, center_lng, radius_meters, time_window_start, time_window_end"})
		return
	}

	start, err := time.Parse(time.RFC3339, req.TimeWindowStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time_window_start must be RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.TimeWindowEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time_window_end must be RFC3339"})
		return
	}

	pool, err := db.ListLocationRecords(c.Request.Context(), fs, reverseQueryScanLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query execution failed"})
		return
	}

	result := matcher.QueryRadius(pool, matcher.RadiusQuery{
		CenterLat:    *req.CenterLat,
		CenterLng:    *req.CenterLng,
		RadiusMeters: *req.RadiusMeters,
		Start:        start,
		End:          end,
	})

	c.JSON(http.StatusOK, gin.H{
		"exposed_uids": result.UIDs,
		"count":        len(result.UIDs),
		"query_metadata": gin.H{
			"total_locations_scanned": result.Scanned,
			"time_filtered_count":     result.TimeFiltered,
			"geofence_filtered_count": result.Geofenced,
			"queried_at":              time.Now().UTC().Format(time.RFC3339),
		},
	})
}
