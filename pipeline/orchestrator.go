package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"go-sentinel/advisory"
	"go-sentinel/alerts"
	"go-sentinel/forecast"
	"go-sentinel/matcher"
	"go-sentinel/routing"
	"go-sentinel/scoring"
	"go-sentinel/surge"
	"go-sentinel/types"
)

// Endpoints of the main pedestrian corridor, used as origin/destination
// when ranking alternate crowd routes.
var (
	corridorStart = routing.LatLng{Lat: 24.7150, Lng: 46.6750}
	corridorEnd   = routing.LatLng{Lat: 24.7300, Lng: 46.7000}
)

// fallback hazard center when the case carries no coordinates
var defaultHazardCenter = routing.LatLng{Lat: 24.7136, Lng: 46.6753}

const hazardBoxDegrees = 0.01

// RunSummary is what a pipeline run reports back to the caller. Per-uid
// failures never abort the run; they are counted here instead.
type RunSummary struct {
	CaseID     string           `json:"case_id"`
	Status     types.CaseStatus `json:"status"`
	Matched    int              `json:"matched"`
	Scored     int              `json:"scored"`
	Failed     int              `json:"failed"`
	AlertsSent int              `json:"alerts_sent"`
}

// Config tunes an Orchestrator. Zero values fall back to sane defaults.
type Config struct {
	WindowHours       int
	Workers           int
	LocationScanLimit int
	OpenAI            *openai.Client // nil disables advisory summaries
	SurgeModelURL     string         // optional remote surge model
}

// Orchestrator drives a case through the exposure pipeline:
// match -> score -> forecast -> alerts, then flips the lifecycle state.
type Orchestrator struct {
	store      Store
	dispatcher alerts.Dispatcher
	sampler    scoring.Sampler
	forecaster *forecast.Forecaster
	log        *zap.Logger
	cfg        Config
	surgeModel *surge.RemoteModel // nil -> local linear model

	// one lock per case id; serializes concurrent runs for the same case
	caseLocks sync.Map
}

func New(store Store, dispatcher alerts.Dispatcher, sampler scoring.Sampler, forecaster *forecast.Forecaster, log *zap.Logger, cfg Config) *Orchestrator {
	if cfg.WindowHours <= 0 {
		cfg.WindowHours = 24
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.LocationScanLimit <= 0 {
		cfg.LocationScanLimit = 500
	}
	if log == nil {
		log = zap.NewNop()
	}
	o := &Orchestrator{
		store:      store,
		dispatcher: dispatcher,
		sampler:    sampler,
		forecaster: forecaster,
		log:        log,
		cfg:        cfg,
	}
	if cfg.SurgeModelURL != "" {
		o.surgeModel = &surge.RemoteModel{URL: cfg.SurgeModelURL}
	}
	return o
}

func (o *Orchestrator) lockCase(caseID string) func() {
	mu, _ := o.caseLocks.LoadOrStore(caseID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// RunCheck executes the danger check for one case. The whole run is a
// single logical unit of work: no two runs execute concurrently for the
// same case id. If the context is cancelled mid-run the case is left in
// processing so operators can detect and retry.
func (o *Orchestrator) RunCheck(ctx context.Context, caseID string) (RunSummary, error) {
	unlock := o.lockCase(caseID)
	defer unlock()

	summary := RunSummary{CaseID: caseID}

	c, err := o.store.GetCase(ctx, caseID)
	if err != nil {
		return summary, err
	}
	if err := ValidateCase(c); err != nil {
		return summary, err
	}
	if c.Status != types.StatusPendingCheck {
		return summary, fmt.Errorf("run check on case %s in state %s: %w", caseID, c.Status, ErrWrongState)
	}

	// Not confirmed and no abnormal cluster: nothing to do.
	if !c.Confirmed && !c.AbnormalCluster {
		if err := o.store.UpdateCaseStatus(ctx, caseID, types.StatusNoAlertNeeded); err != nil {
			return summary, err
		}
		summary.Status = types.StatusNoAlertNeeded
		o.log.Info("no alert needed", zap.String("case_id", caseID))
		return summary, nil
	}

	if err := o.store.UpdateCaseStatus(ctx, caseID, types.StatusProcessing); err != nil {
		return summary, err
	}
	summary.Status = types.StatusProcessing
	c.Status = types.StatusProcessing

	pool, err := o.store.ListLocationRecords(ctx, o.cfg.LocationScanLimit)
	if err != nil {
		return summary, fmt.Errorf("listing location records: %w", err)
	}

	byUID := matcher.QualifyingByUID(c, pool, o.cfg.WindowHours)
	matches := matcher.Match(c, pool, o.cfg.WindowHours)
	summary.Matched = len(matches)
	o.log.Info("matched exposed uids",
		zap.String("case_id", caseID),
		zap.Int("matched", len(matches)),
		zap.Int("pool", len(pool)))

	saved := make([]types.MatchedExposure, 0, len(matches))
	for _, exp := range matches {
		if err := o.store.SaveMatchedExposure(ctx, exp); err != nil {
			summary.Failed++
			o.log.Warn("saving matched exposure failed",
				zap.String("case_id", caseID), zap.String("uid", exp.UID), zap.Error(err))
			continue
		}
		saved = append(saved, exp)
	}

	scores := o.scoreAll(ctx, c, saved, byUID, &summary)
	if ctx.Err() != nil {
		return summary, ctx.Err()
	}

	predictions := o.forecaster.Forecast(c, len(saved))
	for _, pred := range predictions {
		if err := o.store.SaveSpreadPrediction(ctx, pred); err != nil {
			summary.Failed++
			o.log.Warn("saving spread prediction failed",
				zap.String("case_id", caseID), zap.Int("horizon", pred.ForecastHours), zap.Error(err))
		}
	}

	o.composeAlerts(ctx, c, saved, scores, predictions, &summary)
	if ctx.Err() != nil {
		return summary, ctx.Err()
	}

	if o.cfg.OpenAI != nil {
		text, err := advisory.GenerateSummary(ctx, o.cfg.OpenAI, c, scores, predictions)
		if err != nil {
			o.log.Warn("advisory generation failed", zap.String("case_id", caseID), zap.Error(err))
		} else if err := o.store.SetCaseAdvisory(ctx, caseID, text); err != nil {
			o.log.Warn("saving advisory failed", zap.String("case_id", caseID), zap.Error(err))
		}
	}

	if err := o.store.UpdateCaseStatus(ctx, caseID, types.StatusAlertsGenerated); err != nil {
		return summary, err
	}
	summary.Status = types.StatusAlertsGenerated

	o.log.Info("pipeline run complete",
		zap.String("case_id", caseID),
		zap.Int("matched", summary.Matched),
		zap.Int("scored", summary.Scored),
		zap.Int("failed", summary.Failed),
		zap.Int("alerts_sent", summary.AlertsSent))
	return summary, nil
}

// scoreAll fans scoring out across a bounded worker pool. Uids are
// independent; record creation order is not guaranteed.
func (o *Orchestrator) scoreAll(ctx context.Context, c types.Case, saved []types.MatchedExposure, byUID map[string][]types.LocationRecord, summary *RunSummary) []types.RiskScore {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		scores []types.RiskScore
	)
	sem := make(chan struct{}, o.cfg.Workers)

	for _, exp := range saved {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(exp types.MatchedExposure) {
			defer wg.Done()
			defer func() { <-sem }()

			score := scoring.Score(c, exp.UID, byUID[exp.UID], o.sampler)
			if err := o.store.SaveRiskScore(ctx, score); err != nil {
				mu.Lock()
				summary.Failed++
				mu.Unlock()
				o.log.Warn("saving risk score failed",
					zap.String("case_id", c.ID), zap.String("uid", exp.UID), zap.Error(err))
				return
			}

			mu.Lock()
			summary.Scored++
			scores = append(scores, score)
			mu.Unlock()
		}(exp)
	}
	wg.Wait()
	return scores
}

// composeAlerts emits the crowd-routing alert, the authority alert, the
// hospital surge alert and the per-uid notifications. Best effort
// throughout: a failed save or dispatch is logged and counted, never
// raised.
func (o *Orchestrator) composeAlerts(ctx context.Context, c types.Case, saved []types.MatchedExposure, scores []types.RiskScore, predictions []types.SpreadPrediction, summary *RunSummary) {
	scoreByUID := make(map[string]types.RiskScore, len(scores))
	for _, s := range scores {
		scoreByUID[s.UID] = s
	}

	// crowd diversion only applies to heat cases with a large matched population
	if c.CaseType == types.HeatStroke && len(saved) > alerts.CrowdRoutingThreshold {
		center := defaultHazardCenter
		if c.Lat != 0 || c.Lng != 0 {
			center = routing.LatLng{Lat: c.Lat, Lng: c.Lng}
		}
		hazard := routing.ZoneAround(center, hazardBoxDegrees)
		route, _ := routing.SafestRoute(corridorStart, corridorEnd, hazard, routing.DefaultPaths)
		affected := routing.AffectedRoutes(hazard, routing.DefaultPaths)

		crowdAlert := alerts.ComposeCrowdAlert(c, len(saved), route, affected)
		if err := o.store.SaveCrowdAlert(ctx, crowdAlert); err != nil {
			summary.Failed++
			o.log.Warn("saving crowd alert failed", zap.String("case_id", c.ID), zap.Error(err))
		} else {
			summary.AlertsSent++
		}
	}

	if rec, ok := alerts.ComposeAuthorityAlert(c); ok {
		o.sendAndRecord(ctx, rec, summary)
	}

	// proactive hospital surge warning for heat cases; the heat index from
	// the forecast stands in for a live weather feed, crowd intensity is
	// mapped onto the 0-10 persons per square meter scale
	if c.CaseType == types.HeatStroke && len(predictions) > 0 {
		heatIndex := predictions[0].ContributingFactors.HeatIndexC
		density := meanCrowdDensity(scores)

		predicted := surge.Predict(heatIndex, density)
		if o.surgeModel != nil {
			remote, err := o.surgeModel.Predict(ctx, heatIndex, density)
			if err != nil {
				o.log.Warn("remote surge model failed, using local fit",
					zap.String("case_id", c.ID), zap.Error(err))
			} else {
				predicted = remote
			}
		}
		if predicted >= surge.SurgeAlertThreshold {
			o.sendAndRecord(ctx, alerts.ComposeSurgeAlert(c, predicted), summary)
		}
	}

	for _, exp := range saved {
		if ctx.Err() != nil {
			return
		}

		var score *types.RiskScore
		if s, ok := scoreByUID[exp.UID]; ok {
			score = &s
		}
		rec := alerts.ComposeUserAlert(c, exp.UID, score)
		sent := o.sendAndRecord(ctx, rec, summary)
		if sent {
			if err := o.store.MarkExposureNotified(ctx, c.ID, exp.UID); err != nil {
				o.log.Warn("marking exposure notified failed",
					zap.String("case_id", c.ID), zap.String("uid", exp.UID), zap.Error(err))
			}
		}
	}
}

// sendAndRecord dispatches one alert and appends the outcome to the audit
// log. Transport failure becomes a failed record, not an error.
func (o *Orchestrator) sendAndRecord(ctx context.Context, rec types.AlertRecord, summary *RunSummary) bool {
	rec.Status = o.dispatcher.Dispatch(ctx, alerts.DispatchRequest{
		CaseID:   rec.CaseID,
		Target:   rec.Target,
		Message:  rec.Message,
		Severity: rec.Severity,
	})

	if err := o.store.SaveAlertRecord(ctx, rec); err != nil {
		summary.Failed++
		o.log.Warn("saving alert record failed",
			zap.String("case_id", rec.CaseID), zap.String("target", rec.Target), zap.Error(err))
		return false
	}
	if rec.Status != types.AlertSent {
		summary.Failed++
		return false
	}
	summary.AlertsSent++
	return true
}

// Close moves a case from alerts_generated to closed. Explicit operator
// action; no further computation happens.
func (o *Orchestrator) Close(ctx context.Context, caseID string) error {
	unlock := o.lockCase(caseID)
	defer unlock()

	c, err := o.store.GetCase(ctx, caseID)
	if err != nil {
		return err
	}
	if c.Status != types.StatusAlertsGenerated {
		return fmt.Errorf("close case %s in state %s: %w", caseID, c.Status, ErrWrongState)
	}
	return o.store.UpdateCaseStatus(ctx, caseID, types.StatusClosed)
}

// SweepPending runs the check for every case still in pending_check. Cases
// that fail to run are logged and skipped; the sweep itself never aborts.
func (o *Orchestrator) SweepPending(ctx context.Context) {
	cases, err := o.store.ListPendingCases(ctx)
	if err != nil {
		o.log.Warn("listing pending cases failed", zap.Error(err))
		return
	}

	for _, c := range cases {
		if ctx.Err() != nil {
			return
		}
		if _, err := o.RunCheck(ctx, c.ID); err != nil {
			o.log.Warn("sweep run failed", zap.String("case_id", c.ID), zap.Error(err))
		}
	}
}

func meanCrowdDensity(scores []types.RiskScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s.CrowdIntensityPct
	}
	// percent -> persons per square meter
	return sum / float64(len(scores)) / 10
}
