package auditlog

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orgconnect/infrastructure/audit"
	"orgconnect/infrastructure/records"
	"orgconnect/models"
)

var now = time.Date(2024, 1, 25, 23, 0, 0, 0, time.UTC)

func newTestState(onEvict func(int)) *State {
	return NewState(rand.New(rand.NewPCG(3, 4)), onEvict)
}

func TestList_Today(t *testing.T) {
	got := newTestState(nil).List(records.Criteria{Range: records.RangeToday}, now)
	require.Len(t, got, 3)
	for _, e := range got {
		require.Equal(t, 25, e.Timestamp.Day())
	}
}

func TestList_ActionFilter(t *testing.T) {
	s := newTestState(nil)
	got := s.List(records.Criteria{Category: s.NormalizeActionFilter("user_login")}, now)
	require.Len(t, got, 1)
	require.Equal(t, "Mike Chen", got[0].User)
}

func TestList_QueryMatchesResource(t *testing.T) {
	got := newTestState(nil).List(records.Criteria{Query: "inv-2024"}, now)
	require.Len(t, got, 2)
}

func TestNormalizeActionFilter_Unknown(t *testing.T) {
	require.Equal(t, records.CategoryAll, newTestState(nil).NormalizeActionFilter("drop_tables"))
}

func TestActions_SortedAndDistinct(t *testing.T) {
	require.Equal(t, []string{
		"feedback_submitted", "invoice_created", "payment_processed",
		"project_update", "security_scan", "user_login",
	}, newTestState(nil).Actions())
}

func TestTick_StaysBoundedAndReportsEvictions(t *testing.T) {
	evicted := 0
	s := newTestState(func(n int) { evicted += n })
	for i := 0; i < 100; i++ {
		s.Tick(now.Add(time.Duration(i) * 10 * time.Second))
		require.LessOrEqual(t, s.Len(), audit.MaxEntries)
	}
	require.Equal(t, audit.MaxEntries, s.Len())
	require.Equal(t, 106-audit.MaxEntries, evicted)

	newest := s.List(records.Criteria{}, now)[0]
	require.Equal(t, "E-commerce Platform", newest.Resource)
	require.Equal(t, now.Add(990*time.Second), newest.Timestamp)
}

func TestSummarize_BySeverity(t *testing.T) {
	sum := Summarize(newTestState(nil).List(records.Criteria{}, now))
	require.Equal(t, 6, sum.Count)
	require.Equal(t, map[string]int{models.SeverityLow: 3, models.SeverityMedium: 2, models.SeverityHigh: 1}, sum.BySeverity)
}
