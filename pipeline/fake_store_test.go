package pipeline

import (
	"context"
	"fmt"
	"sync"

	"go-sentinel/types"
)

// fakeStore is an in-memory Store for pipeline tests. Methods lock because
// scoring fans out across goroutines.
type fakeStore struct {
	mu          sync.Mutex
	cases       map[string]types.Case
	locations   []types.LocationRecord
	exposures   map[string]types.MatchedExposure
	scores      map[string]types.RiskScore
	predictions []types.SpreadPrediction
	alertLog    []types.AlertRecord
	crowdAlerts []types.CrowdAlert

	failScoreSaves bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cases:     make(map[string]types.Case),
		exposures: make(map[string]types.MatchedExposure),
		scores:    make(map[string]types.RiskScore),
	}
}

func pairKey(caseID, uid string) string { return caseID + ":" + uid }

func (f *fakeStore) GetCase(_ context.Context, caseID string) (types.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cases[caseID]
	if !ok {
		return types.Case{}, fmt.Errorf("case %s not found", caseID)
	}
	return c, nil
}

func (f *fakeStore) UpdateCaseStatus(_ context.Context, caseID string, status types.CaseStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cases[caseID]
	if !ok {
		return fmt.Errorf("case %s not found", caseID)
	}
	c.Status = status
	f.cases[caseID] = c
	return nil
}

func (f *fakeStore) SetCaseAdvisory(_ context.Context, caseID, advisory string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.cases[caseID]
	if !ok {
		return fmt.Errorf("case %s not found", caseID)
	}
	c.Advisory = advisory
	f.cases[caseID] = c
	return nil
}

func (f *fakeStore) ListPendingCases(_ context.Context) ([]types.Case, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var pending []types.Case
	for _, c := range f.cases {
		if c.Status == types.StatusPendingCheck {
			pending = append(pending, c)
		}
	}
	return pending, nil
}

func (f *fakeStore) ListLocationRecords(_ context.Context, limit int) ([]types.LocationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.locations) > limit {
		return f.locations[:limit], nil
	}
	return f.locations, nil
}

func (f *fakeStore) SaveMatchedExposure(_ context.Context, exp types.MatchedExposure) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exposures[pairKey(exp.CaseID, exp.UID)] = exp
	return nil
}

func (f *fakeStore) MarkExposureNotified(_ context.Context, caseID, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	exp, ok := f.exposures[pairKey(caseID, uid)]
	if !ok {
		return fmt.Errorf("exposure %s/%s not found", caseID, uid)
	}
	exp.NotificationSent = true
	f.exposures[pairKey(caseID, uid)] = exp
	return nil
}

func (f *fakeStore) SaveRiskScore(_ context.Context, score types.RiskScore) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failScoreSaves {
		return fmt.Errorf("score save rejected")
	}
	f.scores[pairKey(score.CaseID, score.UID)] = score
	return nil
}

func (f *fakeStore) SaveSpreadPrediction(_ context.Context, pred types.SpreadPrediction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.predictions = append(f.predictions, pred)
	return nil
}

func (f *fakeStore) SaveAlertRecord(_ context.Context, rec types.AlertRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alertLog = append(f.alertLog, rec)
	return nil
}

func (f *fakeStore) SaveCrowdAlert(_ context.Context, alert types.CrowdAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.crowdAlerts = append(f.crowdAlerts, alert)
	return nil
}

func (f *fakeStore) caseStatus(caseID string) types.CaseStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cases[caseID].Status
}

func (f *fakeStore) exposure(caseID, uid string) (types.MatchedExposure, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	exp, ok := f.exposures[pairKey(caseID, uid)]
	return exp, ok
}

func (f *fakeStore) score(caseID, uid string) (types.RiskScore, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.scores[pairKey(caseID, uid)]
	return s, ok
}

func (f *fakeStore) alertsOfType(at types.AlertType) []types.AlertRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []types.AlertRecord
	for _, rec := range f.alertLog {
		if rec.AlertType == at {
			out = append(out, rec)
		}
	}
	return out
}
