package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"go-sentinel/types"
)

// CreateAlertRecord appends one entry to the alert audit log. Records are
// never rewritten after creation.
func CreateAlertRecord(ctx context.Context, client *firestore.Client, rec types.AlertRecord) (types.AlertRecord, error) {
	rec.ID = uuid.NewString()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := client.Collection(alertsCollection).Doc(rec.ID).Set(ctx, rec)
	if err != nil {
		return types.AlertRecord{}, fmt.Errorf("failed to create alert record: %w", err)
	}
	return rec, nil
}

func ListAlertsByCase(ctx context.Context, client *firestore.Client, caseID string) ([]types.AlertRecord, error) {
	docs, err := client.Collection(alertsCollection).
		Where("caseId", "==", caseID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts for case %s: %w", caseID, err)
	}

	var records []types.AlertRecord
	for _, doc := range docs {
		var rec types.AlertRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("error converting document to AlertRecord: %w", err)
		}
		rec.ID = doc.Ref.ID
		records = append(records, rec)
	}
	return records, nil
}

func CreateCrowdAlert(ctx context.Context, client *firestore.Client, alert types.CrowdAlert) (types.CrowdAlert, error) {
	alert.ID = uuid.NewString()
	_, err := client.Collection(crowdAlertsCollection).Doc(alert.ID).Set(ctx, alert)
	if err != nil {
		return types.CrowdAlert{}, fmt.Errorf("failed to create crowd alert: %w", err)
	}
	return alert, nil
}
