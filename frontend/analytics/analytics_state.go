package analytics

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"orgconnect/infrastructure/records"
	"orgconnect/infrastructure/seed"
	"orgconnect/models"
)

// Bounds is the closed range a drifting metric is clamped to.
type Bounds struct {
	Min, Max float64
}

// Clamp bounds of each drifting metric.
var (
	CompletionRate = Bounds{60, 95}
	Duration       = Bounds{30, 60}
	Productivity   = Bounds{70, 95}
	Satisfaction   = Bounds{3.5, 5}
	RevenueGrowth  = Bounds{5, 25}
	Deadlines      = Bounds{3, 15}
)

type State struct {
	mu          sync.RWMutex
	rng         *rand.Rand
	metrics     models.AnalyticsMetrics
	predictions []models.Prediction
	performance []models.PerformanceMetric
	updatedAt   time.Time
}

func NewState(rng *rand.Rand) *State {
	return &State{
		rng:         rng,
		metrics:     seed.AnalyticsMetrics(),
		predictions: seed.Predictions(),
		performance: seed.PerformanceMetrics(),
	}
}

func (s *State) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = Drift(s.metrics, s.rng)
	s.updatedAt = now
}

// Drift returns m after one noisy step, every value clamped to its bounds.
func Drift(m models.AnalyticsMetrics, rng *rand.Rand) models.AnalyticsMetrics {
	m.ProjectCompletionRate = CompletionRate.clamp(m.ProjectCompletionRate + noise(rng, 1))
	m.AverageProjectDuration = Duration.clamp(m.AverageProjectDuration + noise(rng, 0.5))
	m.TeamProductivity = Productivity.clamp(m.TeamProductivity + noise(rng, 1))
	m.ClientSatisfaction = Satisfaction.clamp(m.ClientSatisfaction + noise(rng, 0.05))
	m.RevenueGrowth = RevenueGrowth.clamp(m.RevenueGrowth + noise(rng, 0.5))
	m.UpcomingDeadlines = int(Deadlines.clamp(float64(m.UpcomingDeadlines - rng.IntN(2))))
	return m
}

// noise is uniform on [-half, half).
func noise(rng *rand.Rand, half float64) float64 {
	return (rng.Float64()*2 - 1) * half
}

func (b Bounds) clamp(v float64) float64 {
	return min(max(v, b.Min), b.Max)
}

func (s *State) Metrics() models.AnalyticsMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Metrics:     s.metrics,
		Predictions: append([]models.Prediction(nil), s.predictions...),
		Performance: append([]models.PerformanceMetric(nil), s.performance...),
		UpdatedAt:   s.updatedAt,
	}
}

// ParseTimeframe maps the selector onto a known timeframe, month by default.
func ParseTimeframe(raw string) Timeframe {
	v := Timeframe(strings.ToLower(strings.TrimSpace(raw)))
	for _, tf := range Timeframes {
		if v == tf {
			return v
		}
	}
	return TimeframeMonth
}

// NeedsAttention reports predictions that are neither on track nor ahead.
func NeedsAttention(p models.Prediction) bool {
	return p.Status != "on-track" && p.Status != "ahead"
}

func Summarize(predictions []models.Prediction) Summary {
	return Summary{
		AverageProbability: records.Average(predictions, func(p models.Prediction) int { return p.CompletionProbability }),
		AtRisk:             records.Count(predictions, NeedsAttention),
	}
}
