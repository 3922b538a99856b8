package db

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// Collection names. One collection per record kind, keyed by opaque doc ids.
const (
	casesCollection       = "hospital_cases"
	locationsCollection   = "location_tracking"
	exposuresCollection   = "matched_exposures"
	scoresCollection      = "risk_scores"
	predictionsCollection = "spread_predictions"
	alertsCollection      = "alert_logs"
	crowdAlertsCollection = "crowd_alerts"
)

// HashString hashes a given string using SHA-256 and returns its hex
// representation. Used to derive stable doc ids from natural keys.
func HashString(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// client is a singleton Firestore client instance.
var (
	client     *firestore.Client
	clientOnce sync.Once
	initErr    error
)

// InitFirestore initializes and returns a Firestore client.
func InitFirestore() (*firestore.Client, error) {
	clientOnce.Do(func() {
		encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			initErr = fmt.Errorf("failed to decode Firestore credentials: %w", err)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			initErr = fmt.Errorf("error initializing Firebase app: %w", err)
			return
		}

		client, initErr = app.Firestore(context.Background())
	})

	return client, initErr
}

// CloseFirestore closes the Firestore client.
func CloseFirestore() {
	if client != nil {
		client.Close()
	}
}
