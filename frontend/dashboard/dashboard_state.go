package dashboard

import (
	"math/rand/v2"
	"sync"
	"time"

	"orgconnect/infrastructure/seed"
	"orgconnect/models"
)

// State is one workspace's dashboard: the live counters plus its own
// project health list and activity feed.
type State struct {
	mu         sync.RWMutex
	rng        *rand.Rand
	metrics    models.DashboardMetrics
	projects   []models.ProjectHealth
	activities []models.Activity
	updatedAt  time.Time
}

func NewState(rng *rand.Rand) *State {
	return &State{
		rng:        rng,
		metrics:    seed.DashboardMetrics(),
		projects:   seed.ProjectHealth(),
		activities: seed.Activities(),
	}
}

// Tick applies one round of jitter to the counters.
func (s *State) Tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = Jitter(s.metrics, s.rng)
	s.updatedAt = now
}

// Jitter returns m after one random step. Counters never go below their
// floors: zero active projects and pending invoices, one team member.
func Jitter(m models.DashboardMetrics, rng *rand.Rand) models.DashboardMetrics {
	m.ActiveProjects = max(0, m.ActiveProjects+step(rng))
	m.CompletedTasks += rng.IntN(5)
	m.PendingInvoices = max(0, m.PendingInvoices+step(rng))
	m.TeamMembers = max(1, m.TeamMembers+step(rng))
	return m
}

// step is uniform over -1, 0, 1.
func step(rng *rand.Rand) int {
	return rng.IntN(3) - 1
}

func (s *State) Metrics() models.DashboardMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics
}

// Snapshot copies everything the page renders.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Metrics:    s.metrics,
		Projects:   append([]models.ProjectHealth(nil), s.projects...),
		Activities: append([]models.Activity(nil), s.activities...),
		UpdatedAt:  s.updatedAt,
	}
}
