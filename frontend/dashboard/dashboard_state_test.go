package dashboard

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJitter_StaysWithinFloorsAndSteps(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	s := NewState(rng)
	prev := s.Metrics()
	now := time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 2000; i++ {
		now = now.Add(5 * time.Second)
		s.Tick(now)
		m := s.Metrics()
		require.GreaterOrEqual(t, m.ActiveProjects, 0)
		require.GreaterOrEqual(t, m.PendingInvoices, 0)
		require.GreaterOrEqual(t, m.TeamMembers, 1)
		require.LessOrEqual(t, abs(m.ActiveProjects-prev.ActiveProjects), 1)
		require.LessOrEqual(t, abs(m.TeamMembers-prev.TeamMembers), 1)
		require.GreaterOrEqual(t, m.CompletedTasks-prev.CompletedTasks, 0)
		require.LessOrEqual(t, m.CompletedTasks-prev.CompletedTasks, 4)
		prev = m
	}
	require.Equal(t, now, s.Snapshot().UpdatedAt)
}

func TestJitter_FloorsHoldFromZero(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	s := NewState(rng)
	s.metrics.ActiveProjects = 0
	s.metrics.PendingInvoices = 0
	s.metrics.TeamMembers = 1
	for i := 0; i < 200; i++ {
		s.Tick(time.Now())
		m := s.Metrics()
		require.GreaterOrEqual(t, m.ActiveProjects, 0)
		require.GreaterOrEqual(t, m.PendingInvoices, 0)
		require.GreaterOrEqual(t, m.TeamMembers, 1)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := NewState(rand.New(rand.NewPCG(1, 1)))
	snap := s.Snapshot()
	require.Len(t, snap.Projects, 4)
	require.Len(t, snap.Activities, 4)
	snap.Projects[0].Name = "changed"
	require.Equal(t, "E-commerce Platform", s.Snapshot().Projects[0].Name)
	require.Equal(t, 8, snap.Metrics.ActiveProjects)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
