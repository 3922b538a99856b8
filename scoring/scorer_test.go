package scoring

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-sentinel/types"
)

// stubSampler returns fixed per-uid signals so scores are exact.
type stubSampler struct {
	distance map[string]float64
	crowd    map[string]float64
	visit    map[string]float64
}

func (s *stubSampler) DistanceMeters(uid string) float64     { return s.distance[uid] }
func (s *stubSampler) CrowdIntensityPct(uid string) float64  { return s.crowd[uid] }
func (s *stubSampler) SingleVisitMinutes(uid string) float64 { return s.visit[uid] }

var visitTime = time.Date(2025, 6, 14, 16, 0, 0, 0, time.UTC)

func touchpoints(minutes ...int) []types.LocationRecord {
	recs := make([]types.LocationRecord, 0, len(minutes))
	for _, m := range minutes {
		recs = append(recs, types.LocationRecord{
			UID:        "user_a",
			LocationID: "REST-001",
			Timestamp:  visitTime.Add(time.Duration(m) * time.Minute),
		})
	}
	return recs
}

func TestScoreComposite(t *testing.T) {
	c := types.Case{ID: "CASE-1", CaseType: types.FoodPoisoning, Severity: types.Medium}
	sampler := &stubSampler{
		distance: map[string]float64{"user_a": 10},
		crowd:    map[string]float64{"user_a": 80},
	}

	// touchpoints span 60 minutes, saturating the duration score
	score := Score(c, "user_a", touchpoints(0, 30, 60), sampler)

	assert.Equal(t, "CASE-1", score.CaseID)
	assert.Equal(t, "user_a", score.UID)
	assert.Equal(t, 60, score.DurationMinutes)
	assert.False(t, score.DurationEstimated)
	assert.InDelta(t, 100.0, score.DurationScore, 1e-9)
	assert.InDelta(t, 95.0, score.DistanceScore, 1e-9)
	assert.InDelta(t, 80.0, score.DensityScore, 1e-9)
	// 0.40*100 + 0.35*95 + 0.25*80
	assert.InDelta(t, 93.25, score.ExposureIntensityScore, 1e-9)
	assert.Equal(t, types.RiskCritical, score.RiskLevel)
	assert.Equal(t, types.PriorityCritical, score.NotificationPriority)
}

func TestScoreLevelBoundaries(t *testing.T) {
	c := types.Case{ID: "CASE-1", Severity: types.Low}

	tests := []struct {
		name     string
		visitMin float64
		distance float64
		crowd    float64
		want     types.RiskLevel
	}{
		// distance 200 zeroes the distance score, crowd 0 zeroes density,
		// so the composite is 0.40 * duration score
		{"just below medium", 59.9, 200, 0, types.RiskLow},
		{"exactly medium", 60, 200, 0, types.RiskMedium},
		// 0.40*100 + 0.35*100 + 0.25*20 = 80.0
		{"exactly critical", 60, 0, 20, types.RiskCritical},
		// 0.40*100 + 0.35*100 + 0.25*19 = 79.75
		{"just below critical", 60, 0, 19, types.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := &stubSampler{
				distance: map[string]float64{"user_a": tt.distance},
				crowd:    map[string]float64{"user_a": tt.crowd},
				visit:    map[string]float64{"user_a": tt.visitMin},
			}
			score := Score(c, "user_a", touchpoints(0), sampler)
			assert.Equal(t, tt.want, score.RiskLevel)
			assert.GreaterOrEqual(t, score.ExposureIntensityScore, 0.0)
			assert.LessOrEqual(t, score.ExposureIntensityScore, 100.0)
		})
	}
}

func TestScoreDurationSaturates(t *testing.T) {
	sampler := &stubSampler{
		distance: map[string]float64{"user_a": 100},
		crowd:    map[string]float64{"user_a": 50},
	}

	// three hours at the source still caps the duration score at 100
	score := Score(types.Case{}, "user_a", touchpoints(0, 180), sampler)

	assert.Equal(t, 180, score.DurationMinutes)
	assert.InDelta(t, 100.0, score.DurationScore, 1e-9)
}

func TestScoreSingleCheckinIsEstimated(t *testing.T) {
	sampler := &stubSampler{
		distance: map[string]float64{"user_a": 100},
		crowd:    map[string]float64{"user_a": 50},
		visit:    map[string]float64{"user_a": 22},
	}

	score := Score(types.Case{}, "user_a", touchpoints(0), sampler)

	assert.True(t, score.DurationEstimated)
	assert.Equal(t, 22, score.DurationMinutes)
}

func TestScoreRiskFactors(t *testing.T) {
	c := types.Case{ID: "CASE-1", Severity: types.High}
	sampler := &stubSampler{
		distance: map[string]float64{"user_a": 10}, // < 50
		crowd:    map[string]float64{"user_a": 85}, // > 70
	}

	// 45 minute span, > 30
	score := Score(c, "user_a", touchpoints(0, 45), sampler)

	require.Equal(t, []string{
		"Extended exposure",
		"Close proximity",
		"High crowd density",
		"High severity case",
	}, score.RiskFactors)
}

func TestScoreNoFactors(t *testing.T) {
	sampler := &stubSampler{
		distance: map[string]float64{"user_a": 150},
		crowd:    map[string]float64{"user_a": 40},
		visit:    map[string]float64{"user_a": 15},
	}

	score := Score(types.Case{Severity: types.Low}, "user_a", touchpoints(0), sampler)

	assert.Empty(t, score.RiskFactors)
}

func TestSimulatedSamplerConcurrentReads(t *testing.T) {
	sampler := NewSimulatedSampler(7)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sampler.DistanceMeters("user_a")
				sampler.CrowdIntensityPct("user_a")
				sampler.SingleVisitMinutes("user_a")
			}
		}()
	}
	wg.Wait()
}

func TestSimulatedSamplerRanges(t *testing.T) {
	sampler := NewSimulatedSampler(42)

	for i := 0; i < 100; i++ {
		d := sampler.DistanceMeters("user_a")
		assert.GreaterOrEqual(t, d, 0.0)
		assert.Less(t, d, 200.0)

		crowd := sampler.CrowdIntensityPct("user_a")
		assert.GreaterOrEqual(t, crowd, 40.0)
		assert.Less(t, crowd, 90.0)

		visit := sampler.SingleVisitMinutes("user_a")
		assert.GreaterOrEqual(t, visit, 15.0)
		assert.Less(t, visit, 45.0)
	}
}
