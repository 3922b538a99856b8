package scoring

import (
	"math/rand"
	"sync"
)

// Sampler supplies the exposure signals that no real sensor pipeline feeds
// us yet: proximity to the source, ambient crowd density, and a dwell-time
// estimate for uids with a single check-in. Swap in a real implementation
// when actual measurements become available.
type Sampler interface {
	DistanceMeters(uid string) float64      // 0-200
	CrowdIntensityPct(uid string) float64   // 0-100
	SingleVisitMinutes(uid string) float64  // [15, 45)
}

// SimulatedSampler draws the signals from bounded uniform ranges, matching
// the ranges the intake dashboard simulates. Scoring calls it from multiple
// goroutines, so the rand source is guarded.
type SimulatedSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedSampler(seed int64) *SimulatedSampler {
	return &SimulatedSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *SimulatedSampler) DistanceMeters(string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.rng.Intn(200))
}

func (s *SimulatedSampler) CrowdIntensityPct(string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(40 + s.rng.Intn(50))
}

func (s *SimulatedSampler) SingleVisitMinutes(string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return 15 + s.rng.Float64()*30
}
