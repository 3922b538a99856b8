package types

import "time"

// LocationRecord is a single anonymized check-in. Only the opaque uid, the
// coordinates and the timestamp are ever stored; no PII reaches this system.
type LocationRecord struct {
	ID           string    `firestore:"-"`
	UID          string    `firestore:"uid"`
	LocationID   string    `firestore:"locationId"`
	LocationName string    `firestore:"locationName,omitempty"`
	Timestamp    time.Time `firestore:"timestamp"`
	Lat          float64   `firestore:"lat"`
	Lng          float64   `firestore:"lng"`
}

// MatchedExposure links one uid to one case, created at most once per
// (case, uid) pair per pipeline run.
type MatchedExposure struct {
	ID                  string    `firestore:"-"`
	CaseID              string    `firestore:"caseId"`
	UID                 string    `firestore:"uid"`
	MatchedLocationID   string    `firestore:"matchedLocationId"`
	MatchedLocationName string    `firestore:"matchedLocationName,omitempty"`
	MatchedTimestamp    time.Time `firestore:"matchedTimestamp"`
	NotificationSent    bool      `firestore:"notificationSent"`
}
