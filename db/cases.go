package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"go-sentinel/types"
)

// CreateCase stores a new hospital case. The id is generated here; intake
// always starts a case at pending_check.
func CreateCase(ctx context.Context, client *firestore.Client, c types.Case) (types.Case, error) {
	c.ID = uuid.NewString()
	c.Status = types.StatusPendingCheck

	_, err := client.Collection(casesCollection).Doc(c.ID).Set(ctx, c)
	if err != nil {
		return types.Case{}, fmt.Errorf("failed to create case: %w", err)
	}
	return c, nil
}

func GetCase(ctx context.Context, client *firestore.Client, caseID string) (types.Case, error) {
	doc, err := client.Collection(casesCollection).Doc(caseID).Get(ctx)
	if err != nil {
		return types.Case{}, fmt.Errorf("failed to get case %s: %w", caseID, err)
	}

	var c types.Case
	if err := doc.DataTo(&c); err != nil {
		return types.Case{}, fmt.Errorf("error converting document to Case: %w", err)
	}
	c.ID = doc.Ref.ID
	return c, nil
}

func UpdateCaseStatus(ctx context.Context, client *firestore.Client, caseID string, status types.CaseStatus) error {
	_, err := client.Collection(casesCollection).Doc(caseID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
	})
	if err != nil {
		return fmt.Errorf("failed to update status for case %s: %w", caseID, err)
	}
	return nil
}

func SetCaseAdvisory(ctx context.Context, client *firestore.Client, caseID, advisory string) error {
	_, err := client.Collection(casesCollection).Doc(caseID).Update(ctx, []firestore.Update{
		{Path: "advisory", Value: advisory},
	})
	if err != nil {
		return fmt.Errorf("failed to update advisory for case %s: %w", caseID, err)
	}
	return nil
}

// ListCasesByStatus returns cases in the given lifecycle state. Used by the
// sweep to find pending cases.
func ListCasesByStatus(ctx context.Context, client *firestore.Client, status types.CaseStatus) ([]types.Case, error) {
	docs, err := client.Collection(casesCollection).
		Where("status", "==", string(status)).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list cases by status %s: %w", status, err)
	}

	var cases []types.Case
	for _, doc := range docs {
		var c types.Case
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("error converting document to Case: %w", err)
		}
		c.ID = doc.Ref.ID
		cases = append(cases, c)
	}
	return cases, nil
}
