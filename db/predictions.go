package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"go-sentinel/types"
)

func CreateSpreadPrediction(ctx context.Context, client *firestore.Client, pred types.SpreadPrediction) (types.SpreadPrediction, error) {
	pred.ID = uuid.NewString()
	_, err := client.Collection(predictionsCollection).Doc(pred.ID).Set(ctx, pred)
	if err != nil {
		return types.SpreadPrediction{}, fmt.Errorf("failed to create spread prediction: %w", err)
	}
	return pred, nil
}

func ListPredictionsByCase(ctx context.Context, client *firestore.Client, caseID string) ([]types.SpreadPrediction, error) {
	docs, err := client.Collection(predictionsCollection).
		Where("caseId", "==", caseID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions for case %s: %w", caseID, err)
	}

	var preds []types.SpreadPrediction
	for _, doc := range docs {
		var pred types.SpreadPrediction
		if err := doc.DataTo(&pred); err != nil {
			return nil, fmt.Errorf("error converting document to SpreadPrediction: %w", err)
		}
		pred.ID = doc.Ref.ID
		preds = append(preds, pred)
	}
	return preds, nil
}
