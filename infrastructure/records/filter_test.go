package records_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orgconnect/infrastructure/records"
)

type note struct {
	title string
	body  string
	kind  string
	at    time.Time
}

func (n note) FilterText() []string   { return []string{n.title, n.body} }
func (n note) FilterCategory() string { return n.kind }
func (n note) FilterTime() time.Time  { return n.at }

var now = time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)

func sampleNotes() []note {
	return []note{
		{title: "Checkout flow", body: "Smoother experience", kind: "ux", at: now.Add(-2 * time.Hour)},
		{title: "iOS navigation", body: "Feels cramped", kind: "mobile", at: now.Add(-3 * 24 * time.Hour)},
		{title: "Real-time charts", body: "Exactly what we needed", kind: "ux", at: now.Add(-10 * 24 * time.Hour)},
		{title: "Sync issues", body: "Customer data not updating", kind: "crm", at: now.Add(-45 * 24 * time.Hour)},
	}
}

func TestFilter_ZeroCriteriaReturnsSourceInOrder(t *testing.T) {
	items := sampleNotes()

	got := records.Filter(items, records.Criteria{}, now)
	require.Equal(t, items, got)

	got = records.Filter(items, records.Criteria{Category: records.CategoryAll, Range: records.RangeAll}, now)
	require.Equal(t, items, got)

	got[0].title = "changed"
	require.Equal(t, "Checkout flow", items[0].title)
}

func TestFilter_CategoryOnlyKeepsThatCategory(t *testing.T) {
	items := sampleNotes()
	for _, category := range []string{"ux", "mobile", "crm", "missing"} {
		got := records.Filter(items, records.Criteria{Category: category}, now)
		for _, n := range got {
			require.Equal(t, category, n.kind)
		}
	}
	require.Len(t, records.Filter(items, records.Criteria{Category: "ux"}, now), 2)
	require.Empty(t, records.Filter(items, records.Criteria{Category: "missing"}, now))
}

func TestFilter_QueryIsCaseInsensitiveAcrossFields(t *testing.T) {
	items := sampleNotes()

	got := records.Filter(items, records.Criteria{Query: "CRAMPED"}, now)
	require.Len(t, got, 1)
	require.Equal(t, "iOS navigation", got[0].title)

	got = records.Filter(items, records.Criteria{Query: "  charts "}, now)
	require.Len(t, got, 1)
	require.Equal(t, "Real-time charts", got[0].title)
}

func TestFilter_IsIdempotent(t *testing.T) {
	items := sampleNotes()
	c := records.Criteria{Query: "e", Category: "ux", Range: records.RangeMonth}

	once := records.Filter(items, c, now)
	twice := records.Filter(once, c, now)
	require.Equal(t, once, twice)
}

func TestFilter_DateBuckets(t *testing.T) {
	items := sampleNotes()
	cases := []struct {
		r    records.DateRange
		want int
	}{
		{records.RangeAll, 4},
		{records.RangeToday, 1},
		{records.RangeWeek, 2},
		{records.RangeMonth, 3},
	}
	for _, tc := range cases {
		t.Run(string(tc.r), func(t *testing.T) {
			require.Len(t, records.Filter(items, records.Criteria{Range: tc.r}, now), tc.want)
		})
	}
}

func TestFilter_FutureTimestampsFallInsideEveryBucket(t *testing.T) {
	future := []note{{title: "later", at: now.Add(48 * time.Hour)}}
	require.Len(t, records.Filter(future, records.Criteria{Range: records.RangeToday}, now), 1)
}

func TestFilter_ResultDoesNotAliasSource(t *testing.T) {
	items := sampleNotes()
	got := records.Filter(items, records.Criteria{}, now)
	got[0].title = "changed"
	require.Equal(t, "Checkout flow", items[0].title)
}

func TestParseDateRange(t *testing.T) {
	require.Equal(t, records.RangeToday, records.ParseDateRange("Today"))
	require.Equal(t, records.RangeWeek, records.ParseDateRange(" week "))
	require.Equal(t, records.RangeMonth, records.ParseDateRange("month"))
	require.Equal(t, records.RangeAll, records.ParseDateRange("quarter"))
	require.Equal(t, records.RangeAll, records.ParseDateRange(""))
	require.Equal(t, 0, records.RangeAll.Days())
	require.Equal(t, 30, records.RangeMonth.Days())
}

func TestCriteria_IsZero(t *testing.T) {
	require.True(t, records.Criteria{}.IsZero())
	require.True(t, records.Criteria{Query: "  ", Category: "all", Range: "bogus"}.IsZero())
	require.False(t, records.Criteria{Query: "x"}.IsZero())
	require.False(t, records.Criteria{Category: "ux"}.IsZero())
}
