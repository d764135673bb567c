package analytics

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orgconnect/infrastructure/seed"
)

func TestDrift_StaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	m := seed.AnalyticsMetrics()
	for i := 0; i < 5000; i++ {
		m = Drift(m, rng)
		require.GreaterOrEqual(t, m.ProjectCompletionRate, CompletionRate.Min)
		require.LessOrEqual(t, m.ProjectCompletionRate, CompletionRate.Max)
		require.GreaterOrEqual(t, m.AverageProjectDuration, Duration.Min)
		require.LessOrEqual(t, m.AverageProjectDuration, Duration.Max)
		require.GreaterOrEqual(t, m.TeamProductivity, Productivity.Min)
		require.LessOrEqual(t, m.TeamProductivity, Productivity.Max)
		require.GreaterOrEqual(t, m.ClientSatisfaction, Satisfaction.Min)
		require.LessOrEqual(t, m.ClientSatisfaction, Satisfaction.Max)
		require.GreaterOrEqual(t, m.RevenueGrowth, RevenueGrowth.Min)
		require.LessOrEqual(t, m.RevenueGrowth, RevenueGrowth.Max)
		require.GreaterOrEqual(t, m.UpcomingDeadlines, 3)
		require.LessOrEqual(t, m.UpcomingDeadlines, 15)
	}
}

func TestDrift_DeadlinesNeverRise(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	m := seed.AnalyticsMetrics()
	prev := m.UpcomingDeadlines
	for i := 0; i < 200; i++ {
		m = Drift(m, rng)
		require.LessOrEqual(t, m.UpcomingDeadlines, prev)
		prev = m.UpcomingDeadlines
	}
	require.Equal(t, 3, m.UpcomingDeadlines)
}

func TestTick_RecordsTime(t *testing.T) {
	s := NewState(rand.New(rand.NewPCG(1, 1)))
	at := time.Date(2024, 1, 25, 10, 0, 3, 0, time.UTC)
	s.Tick(at)
	require.Equal(t, at, s.Snapshot().UpdatedAt)
}

func TestParseTimeframe(t *testing.T) {
	require.Equal(t, TimeframeQuarter, ParseTimeframe("Quarter"))
	require.Equal(t, TimeframeMonth, ParseTimeframe(""))
	require.Equal(t, TimeframeMonth, ParseTimeframe("decade"))
}

func TestSummarize(t *testing.T) {
	sum := Summarize(seed.Predictions())
	require.InDelta(t, 76.25, sum.AverageProbability, 1e-9)
	require.Equal(t, 2, sum.AtRisk)
}

func TestSnapshot_IsCopy(t *testing.T) {
	s := NewState(rand.New(rand.NewPCG(1, 1)))
	snap := s.Snapshot()
	snap.Predictions[0].Name = "changed"
	require.Equal(t, "E-commerce Platform", s.Snapshot().Predictions[0].Name)
}
