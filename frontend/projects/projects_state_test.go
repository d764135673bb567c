package projects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orgconnect/infrastructure/records"
	"orgconnect/models"
)

var now = time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)

var sarah = models.User{ID: "2", Name: "Sarah Johnson", Organization: "Innovate Ltd", Role: "Developer"}

func TestList_StatusFilter(t *testing.T) {
	s := NewState()
	got := s.List(records.Criteria{Category: models.ProjectInProgress}, now)
	require.Len(t, got, 3)
	for _, p := range got {
		require.Equal(t, models.ProjectInProgress, p.Status)
	}
}

func TestList_QuerySearchesDescription(t *testing.T) {
	s := NewState()
	got := s.List(records.Criteria{Query: "VULNERABILITY"}, now)
	require.Len(t, got, 1)
	require.Equal(t, "Security Audit", got[0].Name)
}

func TestList_IgnoresDateRange(t *testing.T) {
	s := NewState()
	got := s.List(records.Criteria{Range: records.RangeToday}, now)
	require.Len(t, got, 5)
}

func TestCreate_AppendsWithDefaults(t *testing.T) {
	s := NewState()
	p, err := s.Create(CreateInput{Name: "  Partner Portal ", Description: "Self-service portal", Deadline: "2024-04-01", Priority: "high"}, sarah)
	require.NoError(t, err)
	require.Equal(t, int64(6), p.ID)
	require.Equal(t, "Partner Portal", p.Name)
	require.Equal(t, 0, p.Progress)
	require.Equal(t, models.ProjectNotStarted, p.Status)
	require.Equal(t, models.PriorityHigh, p.Priority)
	require.Equal(t, "Innovate Ltd", p.Team)
	require.Equal(t, []string{"Sarah Johnson"}, p.Assignees)
	require.Zero(t, p.Budget)
	require.Zero(t, p.Spent)
	require.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), p.Deadline)

	all := s.List(records.Criteria{}, now)
	require.Len(t, all, 6)
	require.Equal(t, "Partner Portal", all[5].Name)
}

func TestCreate_OnlyNameRequired(t *testing.T) {
	s := NewState()
	p, err := s.Create(CreateInput{Name: "Bare"}, sarah)
	require.NoError(t, err)
	require.True(t, p.Deadline.IsZero())
	require.Equal(t, models.PriorityMedium, p.Priority)

	_, err = s.Create(CreateInput{Name: "   "}, sarah)
	require.ErrorIs(t, err, ErrNameRequired)
	_, err = s.Create(CreateInput{Name: "Bad date", Deadline: "15/02/2024"}, sarah)
	require.ErrorIs(t, err, ErrInvalidDeadline)
	require.Equal(t, 6, s.Len())
}

func TestSummarize(t *testing.T) {
	s := NewState()
	sum := Summarize(s.List(records.Criteria{}, now))
	require.Equal(t, 5, sum.Count)
	require.Equal(t, int64(360000), sum.Budget)
	require.Equal(t, int64(214950), sum.Spent)
	require.Equal(t, map[string]int{models.ProjectInProgress: 3, models.ProjectDelayed: 1, models.ProjectCompleted: 1}, sum.ByStatus)
}

func TestNormalizeStatusFilter(t *testing.T) {
	require.Equal(t, models.ProjectDelayed, NormalizeStatusFilter(" Delayed "))
	require.Equal(t, records.CategoryAll, NormalizeStatusFilter("archived"))
	require.Equal(t, records.CategoryAll, NormalizeStatusFilter(""))
}
