package handlers

import (
	"errors"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-sentinel/db"
	"go-sentinel/pipeline"
	"go-sentinel/types"
)

type createCaseRequest struct {
	HospitalID          string  `json:"hospital_id"`
	CaseType            string  `json:"case_type"`
	Confirmed           bool    `json:"confirmed"`
	AbnormalCluster     bool    `json:"abnormal_cluster"`
	Severity            string  `json:"severity"`
	SuspectedSourceID   string  `json:"suspected_source_id"`
	SuspectedSourceName string  `json:"suspected_source_name"`
	EventTime           string  `json:"event_time"` // RFC3339
	PatientCount        int     `json:"patient_count"`
	Notes               string  `json:"notes"`
	Lat                 float64 `json:"lat"`
	Lng                 float64 `json:"lng"`
}

// CreateCase registers a new hospital report. Cases always start at
// pending_check; the danger check is a separate explicit call.
func CreateCase(c *gin.Context, fs *firestore.Client) {
	var req createCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	eventTime, err := time.Parse(time.RFC3339, req.EventTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_time must be RFC3339"})
		return
	}

	newCase := types.Case{
		HospitalID:          req.HospitalID,
		CaseType:            types.CaseType(req.CaseType),
		Confirmed:           req.Confirmed,
		AbnormalCluster:     req.AbnormalCluster,
		Severity:            types.Severity(req.Severity),
		SuspectedSourceID:   req.SuspectedSourceID,
		SuspectedSourceName: req.SuspectedSourceName,
		EventTime:           eventTime,
		PatientCount:        req.PatientCount,
		Notes:               req.Notes,
		Lat:                 req.Lat,
		Lng:                 req.Lng,
	}
	if err := pipeline.ValidateCase(newCase); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := db.CreateCase(c.Request.Context(), fs, newCase)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create case"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"case_id": created.ID, "status": created.Status})
}

// GetCase returns the case with everything the pipeline derived from it.
func GetCase(c *gin.Context, fs *firestore.Client) {
	caseID := c.Param("id")
	ctx := c.Request.Context()

	theCase, err := db.GetCase(ctx, fs, caseID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}

	exposures, err := db.ListExposuresByCase(ctx, fs, caseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list exposures"})
		return
	}
	scores, err := db.ListRiskScoresByCase(ctx, fs, caseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list risk scores"})
		return
	}
	predictions, err := db.ListPredictionsByCase(ctx, fs, caseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list predictions"})
		return
	}
	alertRecords, err := db.ListAlertsByCase(ctx, fs, caseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"case":        theCase,
		"exposures":   exposures,
		"risk_scores": scores,
		"predictions": predictions,
		"alerts":      alertRecords,
	})
}

// RunCheck triggers the exposure pipeline for a pending case and returns
// the run summary.
func RunCheck(c *gin.Context, orc *pipeline.Orchestrator) {
	caseID := c.Param("id")

	summary, err := orc.RunCheck(c.Request.Context(), caseID)
	if err != nil {
		var vErr *pipeline.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, pipeline.ErrWrongState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// CloseCase marks a fully processed case as closed.
func CloseCase(c *gin.Context, orc *pipeline.Orchestrator) {
	caseID := c.Param("id")

	if err := orc.Close(c.Request.Context(), caseID); err != nil {
		if errors.Is(err, pipeline.ErrWrongState) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"case_id": caseID, "status": types.StatusClosed})
}
