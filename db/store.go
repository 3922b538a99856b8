package db

import (
	"context"

	"cloud.google.com/go/firestore"

	"go-sentinel/pipeline"
	"go-sentinel/types"
)

// FirestoreStore adapts the collection helpers in this package to the
// pipeline's persistence port.
type FirestoreStore struct {
	Client *firestore.Client
}

var _ pipeline.Store = (*FirestoreStore)(nil)

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{Client: client}
}

func (s *FirestoreStore) GetCase(ctx context.Context, caseID string) (types.Case, error) {
	return GetCase(ctx, s.Client, caseID)
}

func (s *FirestoreStore) UpdateCaseStatus(ctx context.Context, caseID string, status types.CaseStatus) error {
	return UpdateCaseStatus(ctx, s.Client, caseID, status)
}

func (s *FirestoreStore) SetCaseAdvisory(ctx context.Context, caseID, advisory string) error {
	return SetCaseAdvisory(ctx, s.Client, caseID, advisory)
}

func (s *FirestoreStore) ListPendingCases(ctx context.Context) ([]types.Case, error) {
	return ListCasesByStatus(ctx, s.Client, types.StatusPendingCheck)
}

func (s *FirestoreStore) ListLocationRecords(ctx context.Context, limit int) ([]types.LocationRecord, error) {
	return ListLocationRecords(ctx, s.Client, limit)
}

func (s *FirestoreStore) SaveMatchedExposure(ctx context.Context, exp types.MatchedExposure) error {
	return SaveMatchedExposure(ctx, s.Client, exp)
}

func (s *FirestoreStore) MarkExposureNotified(ctx context.Context, caseID, uid string) error {
	return MarkExposureNotified(ctx, s.Client, caseID, uid)
}

func (s *FirestoreStore) SaveRiskScore(ctx context.Context, score types.RiskScore) error {
	return SaveRiskScore(ctx, s.Client, score)
}

func (s *FirestoreStore) SaveSpreadPrediction(ctx context.Context, pred types.SpreadPrediction) error {
	_, err := CreateSpreadPrediction(ctx, s.Client, pred)
	return err
}

func (s *FirestoreStore) SaveAlertRecord(ctx context.Context, rec types.AlertRecord) error {
	_, err := CreateAlertRecord(ctx, s.Client, rec)
	return err
}

func (s *FirestoreStore) SaveCrowdAlert(ctx context.Context, alert types.CrowdAlert) error {
	_, err := CreateCrowdAlert(ctx, s.Client, alert)
	return err
}
