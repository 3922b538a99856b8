package handlers

import (
	"net/http"

	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"

	"go-sentinel/geocode"
	"go-sentinel/nlp"
	"go-sentinel/surge"
)

type surgeRequest struct {
	TemperatureC *float64 `json:"temperature_c"`
	CrowdDensity *float64 `json:"crowd_density"` // persons per square meter, 0-10
}

// PredictSurge runs the case-surge model for ad-hoc what-if queries from
// the dashboard.
func PredictSurge(c *gin.Context) {
	var req surgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.TemperatureC == nil || req.CrowdDensity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields: temperature_c, crowd_density"})
		return
	}

	predicted := surge.Predict(*req.TemperatureC, *req.CrowdDensity)
	c.JSON(http.StatusOK, gin.H{
		"predicted_surge": predicted,
		"risk_band":       surge.Band(predicted),
		"hospital_alert":  predicted >= surge.SurgeAlertThreshold,
	})
}

type suggestSourcesRequest struct {
	Notes string `json:"notes"`
}

// SuggestSources extracts candidate exposure sources from free-text case
// notes. Unavailable when the language client was not configured.
func SuggestSources(c *gin.Context, langClient *language.Client) {
	if langClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "source suggestion is not configured"})
		return
	}

	var req suggestSourcesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Notes == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field: notes"})
		return
	}

	candidates, err := nlp.SuggestSources(c.Request.Context(), langClient, req.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "entity extraction failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// GeocodeSource resolves a source name to coordinates so the geofence
// query can be centered on it.
func GeocodeSource(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter: name"})
		return
	}

	lat, lng, formatted, err := geocode.SourceCoordinates(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"lat":               lat,
		"lng":               lng,
		"formatted_address": formatted,
	})
}
