package invoices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orgconnect/infrastructure/records"
	"orgconnect/models"
)

var now = time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)

func TestSummarize_PaidFilter(t *testing.T) {
	s := NewState()
	list := s.List(records.Criteria{Category: models.InvoicePaid}, now)
	totals := Summarize(list)
	require.Equal(t, 2, totals.Count)
	require.Equal(t, int64(33500), totals.Paid)
	require.Equal(t, int64(33500), totals.Total)
	require.Zero(t, totals.Outstanding)
}

func TestSummarize_All(t *testing.T) {
	totals := Summarize(NewState().List(records.Criteria{}, now))
	require.Equal(t, int64(79000), totals.Total)
	require.Equal(t, int64(33500), totals.Paid)
	require.Equal(t, int64(45500), totals.Outstanding)
}

func TestList_QueryMatchesClientOrg(t *testing.T) {
	got := NewState().List(records.Criteria{Query: "innovate"}, now)
	require.Len(t, got, 2)
	for _, inv := range got {
		require.Equal(t, "Innovate Ltd", inv.ClientOrg)
	}
}

func TestList_QueryMatchesID(t *testing.T) {
	got := NewState().List(records.Criteria{Query: "inv-2024-003"}, now)
	require.Len(t, got, 1)
	require.Equal(t, models.InvoiceOverdue, got[0].Status)
}

func TestFind(t *testing.T) {
	s := NewState()
	inv, err := s.Find("inv-2024-002")
	require.NoError(t, err)
	require.Equal(t, "Mobile App Development", inv.ProjectName)
	require.Equal(t, int64(22175), ItemsTotal(inv))

	_, err = s.Find("INV-1999-999")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNormalizeStatusFilter(t *testing.T) {
	require.Equal(t, models.InvoiceOverdue, NormalizeStatusFilter("OVERDUE"))
	require.Equal(t, records.CategoryAll, NormalizeStatusFilter("void"))
}
