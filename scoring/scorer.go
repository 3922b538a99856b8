package scoring

import (
	"math"

	"go-sentinel/types"
)

const (
	durationWeight = 0.40
	distanceWeight = 0.35
	densityWeight  = 0.25

	saturationMinutes = 60.0 // an hour of exposure maxes the duration score

	// exposure intensity thresholds
	mediumScoreThreshold   = 40.0
	highScoreThreshold     = 60.0
	criticalScoreThreshold = 80.0
)

// Score computes the exposure assessment for one matched uid. records are
// the uid's qualifying touchpoints for this case; distance, crowd intensity
// and single-visit dwell time come from the sampler. Pure apart from the
// sampler reads.
func Score(c types.Case, uid string, records []types.LocationRecord, sampler Sampler) types.RiskScore {
	durationMinutes, estimated := dwellMinutes(uid, records, sampler)
	distanceMeters := sampler.DistanceMeters(uid)
	crowdIntensity := sampler.CrowdIntensityPct(uid)

	durationScore := math.Min(100, durationMinutes/saturationMinutes*100)
	distanceScore := math.Max(0, 100-distanceMeters/2) // linear decay, 0 at 200m
	densityScore := crowdIntensity

	intensity := durationScore*durationWeight + distanceScore*distanceWeight + densityScore*densityWeight
	level := levelForIntensity(intensity)

	var factors []string
	if durationMinutes > 30 {
		factors = append(factors, "Extended exposure")
	}
	if distanceMeters < 50 {
		factors = append(factors, "Close proximity")
	}
	if crowdIntensity > 70 {
		factors = append(factors, "High crowd density")
	}
	if c.Severity == types.High || c.Severity == types.Critical {
		factors = append(factors, "High severity case")
	}

	return types.RiskScore{
		CaseID:                 c.ID,
		UID:                    uid,
		DurationMinutes:        int(math.Round(durationMinutes)),
		DurationEstimated:      estimated,
		DistanceMeters:         distanceMeters,
		CrowdIntensityPct:      crowdIntensity,
		DurationScore:          durationScore,
		DistanceScore:          distanceScore,
		DensityScore:           densityScore,
		ExposureIntensityScore: intensity,
		RiskLevel:              level,
		NotificationPriority:   types.PriorityFor(level),
		RiskFactors:            factors,
	}
}

// dwellMinutes measures time spent at the source as the span between the
// uid's first and last touchpoint. A single check-in cannot measure dwell
// time, so the sampler supplies a bounded estimate and the score is flagged
// as estimated.
func dwellMinutes(uid string, records []types.LocationRecord, sampler Sampler) (float64, bool) {
	if len(records) < 2 {
		return sampler.SingleVisitMinutes(uid), true
	}
	earliest := records[0].Timestamp
	latest := records[0].Timestamp
	for _, rec := range records[1:] {
		if rec.Timestamp.Before(earliest) {
			earliest = rec.Timestamp
		}
		if rec.Timestamp.After(latest) {
			latest = rec.Timestamp
		}
	}
	return latest.Sub(earliest).Minutes(), false
}

func levelForIntensity(score float64) types.RiskLevel {
	switch {
	case score >= criticalScoreThreshold:
		return types.RiskCritical
	case score >= highScoreThreshold:
		return types.RiskHigh
	case score >= mediumScoreThreshold:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}
