package records_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"orgconnect/infrastructure/records"
)

type line struct {
	status string
	amount int64
	score  float64
}

func TestAggregates(t *testing.T) {
	items := []line{
		{status: "paid", amount: 25000, score: 5},
		{status: "pending", amount: 18500, score: 3},
		{status: "paid", amount: 8500, score: 4},
	}
	amount := func(l line) int64 { return l.amount }
	paid := func(l line) bool { return l.status == "paid" }

	require.Equal(t, int64(52000), records.Sum(items, amount))
	require.Equal(t, int64(33500), records.SumWhere(items, paid, amount))
	require.Equal(t, 2, records.Count(items, paid))
	require.InDelta(t, 4.0, records.Average(items, func(l line) float64 { return l.score }), 1e-9)
	require.Equal(t, map[string]int{"paid": 2, "pending": 1}, records.CountBy(items, func(l line) string { return l.status }))
}

func TestAggregates_Empty(t *testing.T) {
	var items []line
	require.Zero(t, records.Sum(items, func(l line) int64 { return l.amount }))
	require.Zero(t, records.Average(items, func(l line) float64 { return l.score }))
	require.Zero(t, records.Count(items, func(line) bool { return true }))
	require.Empty(t, records.CountBy(items, func(l line) string { return l.status }))
}
