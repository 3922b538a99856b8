package types

import (
	"strings"
	"time"
)

type CaseType string

const (
	HeatStroke         CaseType = "heat_stroke"
	FoodPoisoning      CaseType = "food_poisoning"
	RespiratoryIllness CaseType = "respiratory_illness"
	WaterborneDisease  CaseType = "waterborne_disease"
	OtherCase          CaseType = "other"
)

// Label returns the human readable form used in alert messages.
func (ct CaseType) Label() string {
	return strings.ReplaceAll(string(ct), "_", " ")
}

func (ct CaseType) Valid() bool {
	switch ct {
	case HeatStroke, FoodPoisoning, RespiratoryIllness, WaterborneDisease, OtherCase:
		return true
	}
	return false
}

type Severity string

const (
	Low      Severity = "low"
	Medium   Severity = "medium"
	High     Severity = "high"
	Critical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case Low, Medium, High, Critical:
		return true
	}
	return false
}

// CaseStatus is the lifecycle state of a hospital case. The machine only
// moves forward: pending_check -> {no_alert_needed | processing ->
// alerts_generated -> closed}.
type CaseStatus string

const (
	StatusPendingCheck    CaseStatus = "pending_check"
	StatusNoAlertNeeded   CaseStatus = "no_alert_needed"
	StatusProcessing      CaseStatus = "processing"
	StatusAlertsGenerated CaseStatus = "alerts_generated"
	StatusClosed          CaseStatus = "closed"
)

type Case struct {
	ID                  string     `firestore:"-"` // tell firestore to ignore
	HospitalID          string     `firestore:"hospitalId"`
	CaseType            CaseType   `firestore:"caseType"`
	Confirmed           bool       `firestore:"confirmed"`
	AbnormalCluster     bool       `firestore:"abnormalCluster"`
	Severity            Severity   `firestore:"severity"`
	SuspectedSourceID   string     `firestore:"suspectedSourceId"`
	SuspectedSourceName string     `firestore:"suspectedSourceName,omitempty"`
	EventTime           time.Time  `firestore:"eventTime"`
	PatientCount        int        `firestore:"patientCount"`
	Status              CaseStatus `firestore:"status"`
	Notes               string     `firestore:"notes,omitempty"`
	Lat                 float64    `firestore:"lat,omitempty"`
	Lng                 float64    `firestore:"lng,omitempty"`
	Advisory            string     `firestore:"advisory,omitempty"` // filled later by LLM
}

// SourceLabel prefers the human readable source name over the raw id.
func (c Case) SourceLabel() string {
	if c.SuspectedSourceName != "" {
		return c.SuspectedSourceName
	}
	return c.SuspectedSourceID
}
