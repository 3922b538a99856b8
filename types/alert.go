package types

import "time"

type AlertType string

const (
	AuthorityAlert   AlertType = "authority_alert"
	UserNotification AlertType = "user_notification"
)

type AlertStatus string

const (
	AlertSent    AlertStatus = "sent"
	AlertFailed  AlertStatus = "failed"
	AlertPending AlertStatus = "pending"
)

// AlertRecord is the append-only audit log entry for every alert attempt.
// Delivery failures are recorded with status failed, never dropped.
type AlertRecord struct {
	ID         string      `firestore:"-"`
	CaseID     string      `firestore:"caseId"`
	AlertType  AlertType   `firestore:"alertType"`
	Target     string      `firestore:"target"`
	TargetType string      `firestore:"targetType"`
	Message    string      `firestore:"message"`
	Status     AlertStatus `firestore:"status"`
	CaseType   CaseType    `firestore:"caseType"`
	Severity   Severity    `firestore:"severity"`
	CreatedAt  time.Time   `firestore:"createdAt"`
}

// CrowdAlert asks field staff to divert crowds away from a hazard zone.
type CrowdAlert struct {
	ID               string    `firestore:"-"`
	AlertTime        time.Time `firestore:"alertTime"`
	AlertType        string    `firestore:"alertType"` // e.g. heat_stress
	AffectedRoutes   []string  `firestore:"affectedRoutes"`
	RecommendedRoute string    `firestore:"recommendedRoute"`
	Severity         Severity  `firestore:"severity"`
	Message          string    `firestore:"message"`
	TargetRecipients []string  `firestore:"targetRecipients"`
	Status           string    `firestore:"status"`
	LinkedCaseID     string    `firestore:"linkedCaseId"`
}

// ContributingFactors are explanatory metadata attached to a spread
// prediction. They are stored for operators but are not inputs to the
// probability formula.
type ContributingFactors struct {
	DensityTrend  string  `firestore:"densityTrend"`
	TimeOverlap   int     `firestore:"timeOverlap"`
	HeatIndexC    float64 `firestore:"heatIndexC"`
	HumidityPct   float64 `firestore:"humidityPct"`
	WindSpeedKmh  float64 `firestore:"windSpeedKmh"`
	CrowdMovement string  `firestore:"crowdMovement"`
}

// SpreadPrediction is a short-horizon forecast of which zone the risk may
// propagate to. Three are generated per run, one per horizon.
type SpreadPrediction struct {
	ID                  string              `firestore:"-"`
	CaseID              string              `firestore:"caseId"`
	PredictionTime      time.Time           `firestore:"predictionTime"`
	ForecastHours       int                 `firestore:"forecastHours"` // 1, 2 or 3
	ZoneID              string              `firestore:"zoneId"`
	ZoneName            string              `firestore:"zoneName"`
	ProbabilityPct      int                 `firestore:"probabilityPct"`
	RiskLevel           RiskLevel           `firestore:"riskLevel"`
	ContributingFactors ContributingFactors `firestore:"contributingFactors"`
	Lat                 float64             `firestore:"lat"`
	Lng                 float64             `firestore:"lng"`
}
