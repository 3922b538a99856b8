package pipeline

import (
	"context"

	"go-sentinel/types"
)

// Store is the persistence port for the pipeline. The Firestore adapter in
// db/ is the production implementation; tests inject a fake. RiskScore and
// MatchedExposure saves must upsert on (case_id, uid).
type Store interface {
	GetCase(ctx context.Context, caseID string) (types.Case, error)
	UpdateCaseStatus(ctx context.Context, caseID string, status types.CaseStatus) error
	SetCaseAdvisory(ctx context.Context, caseID, advisory string) error
	ListPendingCases(ctx context.Context) ([]types.Case, error)

	ListLocationRecords(ctx context.Context, limit int) ([]types.LocationRecord, error)

	SaveMatchedExposure(ctx context.Context, exp types.MatchedExposure) error
	MarkExposureNotified(ctx context.Context, caseID, uid string) error
	SaveRiskScore(ctx context.Context, score types.RiskScore) error
	SaveSpreadPrediction(ctx context.Context, pred types.SpreadPrediction) error
	SaveAlertRecord(ctx context.Context, rec types.AlertRecord) error
	SaveCrowdAlert(ctx context.Context, alert types.CrowdAlert) error
}
