package alerts

import (
	"fmt"
	"strings"
	"time"

	"go-sentinel/types"
)

// CrowdRoutingThreshold is the matched-uid count above which a heat case
// also triggers a crowd diversion alert.
const CrowdRoutingThreshold = 5

var crowdAlertRecipients = []string{"crowd_supervisors", "volunteers", "field_control", "ems"}

type authorityTarget struct {
	Target     string
	TargetType string
}

// Which authority hears about which case type. Case types without an entry
// deliberately produce no authority alert; extend the table when onboarding
// a new authority.
var authorityRouting = map[types.CaseType]authorityTarget{
	types.HeatStroke:    {Target: "Red Crescent / EMS", TargetType: "red_crescent"},
	types.FoodPoisoning: {Target: "Restaurant Regulatory Authority", TargetType: "restaurant_authority"},
}

// ComposeAuthorityAlert builds the alert for the authority responsible for
// the case type. ok is false when no authority is mapped.
func ComposeAuthorityAlert(c types.Case) (types.AlertRecord, bool) {
	route, mapped := authorityRouting[c.CaseType]
	if !mapped {
		return types.AlertRecord{}, false
	}

	patients := c.PatientCount
	if patients < 1 {
		patients = 1
	}

	var message string
	switch c.CaseType {
	case types.HeatStroke:
		message = fmt.Sprintf("HEAT STROKE ALERT: %d patient(s) reported at %s. Severity: %s. Event time: %s",
			patients, c.SourceLabel(), c.Severity, c.EventTime.Format(time.RFC1123))
	case types.FoodPoisoning:
		message = fmt.Sprintf("FOOD POISONING ALERT: %d case(s) linked to %s. Immediate inspection recommended. Severity: %s",
			patients, c.SourceLabel(), c.Severity)
	}

	return types.AlertRecord{
		CaseID:     c.ID,
		AlertType:  types.AuthorityAlert,
		Target:     route.Target,
		TargetType: route.TargetType,
		Message:    message,
		Status:     types.AlertPending,
		CaseType:   c.CaseType,
		Severity:   c.Severity,
	}, true
}

// ComposeUserAlert builds the notification for one exposed uid. The message
// tier follows the uid's risk level; a missing score falls back to the
// generic notice.
func ComposeUserAlert(c types.Case, uid string, score *types.RiskScore) types.AlertRecord {
	var message string
	switch {
	case score != nil && (score.RiskLevel == types.RiskCritical || score.RiskLevel == types.RiskHigh):
		message = fmt.Sprintf("⚠️ HIGH RISK ALERT: Your exposure level is %s due to extended stay (%d min) in a high-density zone. You may have been exposed to %s at %s. Please seek medical attention and monitor for symptoms immediately.",
			strings.ToUpper(string(score.RiskLevel)), score.DurationMinutes, c.CaseType.Label(), c.SourceLabel())
	case score != nil && score.RiskLevel == types.RiskMedium:
		message = fmt.Sprintf("⚠️ HEALTH ALERT: You may have been exposed to %s at %s on %s. Your exposure risk is MEDIUM (%d min exposure). Please monitor for symptoms and follow health guidelines.",
			c.CaseType.Label(), c.SourceLabel(), c.EventTime.Format("January 2, 2006"), score.DurationMinutes)
	case score != nil:
		message = fmt.Sprintf("ℹ️ ADVISORY: You were near a reported %s incident at %s. Your risk level is LOW. Stay informed and monitor for symptoms as a precaution.",
			c.CaseType.Label(), c.SourceLabel())
	default:
		message = fmt.Sprintf("HEALTH ALERT: You may have been exposed to %s at %s on %s. Please monitor for symptoms and follow health guidelines.",
			c.CaseType.Label(), c.SourceLabel(), c.EventTime.Format("January 2, 2006"))
	}

	return types.AlertRecord{
		CaseID:     c.ID,
		AlertType:  types.UserNotification,
		Target:     uid,
		TargetType: "user",
		Message:    message,
		Status:     types.AlertPending,
		CaseType:   c.CaseType,
		Severity:   c.Severity,
	}
}

// ComposeCrowdAlert builds the diversion order for field staff when a heat
// case has drawn a large matched population. recommendedRoute may be empty,
// meaning no safe route was found and crowds should be held in place.
func ComposeCrowdAlert(c types.Case, matchedCount int, recommendedRoute string, affectedRoutes []string) types.CrowdAlert {
	message := fmt.Sprintf("Heat stress detected at %s. High density with %d affected individuals. Recommend diverting crowds to alternative routes.",
		c.SourceLabel(), matchedCount)
	if recommendedRoute == "" {
		message = fmt.Sprintf("Heat stress detected at %s. High density with %d affected individuals. No safe alternate route available; hold crowd movement.",
			c.SourceLabel(), matchedCount)
	}

	return types.CrowdAlert{
		AlertTime:        time.Now().UTC(),
		AlertType:        "heat_stress",
		AffectedRoutes:   affectedRoutes,
		RecommendedRoute: recommendedRoute,
		Severity:         c.Severity,
		Message:          message,
		TargetRecipients: crowdAlertRecipients,
		Status:           "active",
		LinkedCaseID:     c.ID,
	}
}

// ComposeSurgeAlert warns the reporting hospital that the predicted case
// surge crossed the alert threshold.
func ComposeSurgeAlert(c types.Case, predictedSurge int) types.AlertRecord {
	return types.AlertRecord{
		CaseID:     c.ID,
		AlertType:  types.AuthorityAlert,
		Target:     c.HospitalID,
		TargetType: "hospital",
		Message: fmt.Sprintf("SURGE FORECAST: expecting an increase of ~%d cases in the next 4 hours linked to the %s incident at %s. Prepare intake capacity.",
			predictedSurge, c.CaseType.Label(), c.SourceLabel()),
		Status:   types.AlertPending,
		CaseType: c.CaseType,
		Severity: c.Severity,
	}
}
