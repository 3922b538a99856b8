package types

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

type NotificationPriority string

const (
	PriorityAdvisory NotificationPriority = "advisory"
	PriorityStandard NotificationPriority = "standard"
	PriorityUrgent   NotificationPriority = "urgent"
	PriorityCritical NotificationPriority = "critical"
)

// PriorityFor maps a risk level 1:1 onto its notification priority.
func PriorityFor(level RiskLevel) NotificationPriority {
	switch level {
	case RiskCritical:
		return PriorityCritical
	case RiskHigh:
		return PriorityUrgent
	case RiskMedium:
		return PriorityStandard
	default:
		return PriorityAdvisory
	}
}

// RiskScore is the per-uid exposure assessment for a case. One per
// (case, uid); saves upsert so re-scoring overwrites deterministically.
type RiskScore struct {
	ID                     string               `firestore:"-"`
	CaseID                 string               `firestore:"caseId"`
	UID                    string               `firestore:"uid"`
	DurationMinutes        int                  `firestore:"durationMinutes"`
	DurationEstimated      bool                 `firestore:"durationEstimated"` // single check-in, simulated dwell time
	DistanceMeters         float64              `firestore:"distanceMeters"`
	CrowdIntensityPct      float64              `firestore:"crowdIntensityPct"`
	DurationScore          float64              `firestore:"durationScore"`
	DistanceScore          float64              `firestore:"distanceScore"`
	DensityScore           float64              `firestore:"densityScore"`
	ExposureIntensityScore float64              `firestore:"exposureIntensityScore"`
	RiskLevel              RiskLevel            `firestore:"riskLevel"`
	NotificationPriority   NotificationPriority `firestore:"notificationPriority"`
	RiskFactors            []string             `firestore:"riskFactors"`
}
