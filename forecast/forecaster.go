package forecast

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"go-sentinel/types"
)

// Zone is one of the fixed named districts the forecaster can point at.
type Zone struct {
	ID   string
	Name string
	Lat  float64
	Lng  float64
}

var zones = []Zone{
	{ID: "ZONE-A", Name: "North District", Lat: 24.7241, Lng: 46.6789},
	{ID: "ZONE-B", Name: "East Quarter", Lat: 24.7136, Lng: 46.6853},
	{ID: "ZONE-C", Name: "Central Plaza", Lat: 24.7050, Lng: 46.6700},
}

const (
	densityFactorThreshold = 5   // matched uids above this raise the probability
	densityFactor          = 1.2
	heatFactor             = 1.3
	probabilityCap         = 95.0

	criticalProbThreshold = 75.0
	highProbThreshold     = 60.0
	mediumProbThreshold   = 40.0
)

var crowdMovements = []string{"northward", "southward", "dispersing"}

// Forecaster produces the short-horizon spread predictions. The zone pick
// and environmental signals are simulated placeholders; a real
// implementation would derive both from spatial clustering of the matched
// records. One Forecaster serves all cases, so the rand source is guarded
// against concurrent runs.
type Forecaster struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func New(seed int64) *Forecaster {
	return &Forecaster{rng: rand.New(rand.NewSource(seed)), now: time.Now}
}

// NewWithClock pins the prediction timestamps, for tests.
func NewWithClock(seed int64, now func() time.Time) *Forecaster {
	return &Forecaster{rng: rand.New(rand.NewSource(seed)), now: now}
}

// Forecast returns one prediction per horizon (1h, 2h, 3h). Zones are
// assigned round-robin by horizon so re-runs with the same seed are
// reproducible. The contributing factors are explanatory metadata only;
// they do not feed back into the probability formula.
func (f *Forecaster) Forecast(c types.Case, matchedCount int) []types.SpreadPrediction {
	f.mu.Lock()
	defer f.mu.Unlock()

	predictionTime := f.now().UTC()

	density := 1.0
	trend := "stable"
	if matchedCount > densityFactorThreshold {
		density = densityFactor
		trend = "increasing"
	}
	heat := 1.0
	if c.CaseType == types.HeatStroke {
		heat = heatFactor
	}

	predictions := make([]types.SpreadPrediction, 0, 3)
	for _, hours := range []int{1, 2, 3} {
		zone := zones[(hours-1)%len(zones)]

		base := 30 + f.rng.Float64()*50
		probability := math.Min(probabilityCap, base*density*heat)

		predictions = append(predictions, types.SpreadPrediction{
			CaseID:         c.ID,
			PredictionTime: predictionTime,
			ForecastHours:  hours,
			ZoneID:         zone.ID,
			ZoneName:       zone.Name,
			ProbabilityPct: int(math.Round(probability)),
			RiskLevel:      levelForProbability(probability),
			ContributingFactors: types.ContributingFactors{
				DensityTrend:  trend,
				TimeOverlap:   f.rng.Intn(51),
				HeatIndexC:    35 + f.rng.Float64()*15,
				HumidityPct:   30 + f.rng.Float64()*50,
				WindSpeedKmh:  5 + f.rng.Float64()*15,
				CrowdMovement: crowdMovements[f.rng.Intn(len(crowdMovements))],
			},
			Lat: zone.Lat,
			Lng: zone.Lng,
		})
	}
	return predictions
}

func levelForProbability(p float64) types.RiskLevel {
	switch {
	case p > criticalProbThreshold:
		return types.RiskCritical
	case p > highProbThreshold:
		return types.RiskHigh
	case p > mediumProbThreshold:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}
