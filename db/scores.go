package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"go-sentinel/types"
)

// SaveRiskScore upserts the score for a (case, uid) pair. The doc id is
// derived from the pair, so re-scoring overwrites instead of duplicating.
func SaveRiskScore(ctx context.Context, client *firestore.Client, score types.RiskScore) error {
	docID := HashString(score.CaseID + ":" + score.UID)
	_, err := client.Collection(scoresCollection).Doc(docID).Set(ctx, score)
	if err != nil {
		return fmt.Errorf("failed to save risk score %s/%s: %w", score.CaseID, score.UID, err)
	}
	return nil
}

func ListRiskScoresByCase(ctx context.Context, client *firestore.Client, caseID string) ([]types.RiskScore, error) {
	docs, err := client.Collection(scoresCollection).
		Where("caseId", "==", caseID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list risk scores for case %s: %w", caseID, err)
	}

	var scores []types.RiskScore
	for _, doc := range docs {
		var score types.RiskScore
		if err := doc.DataTo(&score); err != nil {
			return nil, fmt.Errorf("error converting document to RiskScore: %w", err)
		}
		score.ID = doc.Ref.ID
		scores = append(scores, score)
	}
	return scores, nil
}
