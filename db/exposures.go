package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"go-sentinel/types"
)

// exposureDocID derives the doc id from the (case, uid) pair so a re-run
// can never duplicate the exposure row.
func exposureDocID(caseID, uid string) string {
	return HashString(caseID + ":" + uid)
}

func SaveMatchedExposure(ctx context.Context, client *firestore.Client, exp types.MatchedExposure) error {
	docID := exposureDocID(exp.CaseID, exp.UID)
	_, err := client.Collection(exposuresCollection).Doc(docID).Set(ctx, exp)
	if err != nil {
		return fmt.Errorf("failed to save matched exposure %s/%s: %w", exp.CaseID, exp.UID, err)
	}
	return nil
}

func MarkExposureNotified(ctx context.Context, client *firestore.Client, caseID, uid string) error {
	docID := exposureDocID(caseID, uid)
	_, err := client.Collection(exposuresCollection).Doc(docID).Update(ctx, []firestore.Update{
		{Path: "notificationSent", Value: true},
	})
	if err != nil {
		return fmt.Errorf("failed to mark exposure notified %s/%s: %w", caseID, uid, err)
	}
	return nil
}

func ListExposuresByCase(ctx context.Context, client *firestore.Client, caseID string) ([]types.MatchedExposure, error) {
	docs, err := client.Collection(exposuresCollection).
		Where("caseId", "==", caseID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list exposures for case %s: %w", caseID, err)
	}

	var exposures []types.MatchedExposure
	for _, doc := range docs {
		var exp types.MatchedExposure
		if err := doc.DataTo(&exp); err != nil {
			return nil, fmt.Errorf("error converting document to MatchedExposure: %w", err)
		}
		exp.ID = doc.Ref.ID
		exposures = append(exposures, exp)
	}
	return exposures, nil
}
