package seed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orgconnect/infrastructure/records"
	"orgconnect/infrastructure/seed"
	"orgconnect/models"
)

func TestInvoices_PaidTotal(t *testing.T) {
	paid := records.Filter(seed.Invoices(), records.Criteria{Category: models.InvoicePaid}, time.Now())
	require.Len(t, paid, 2)
	total := records.Sum(paid, func(i models.Invoice) int64 { return i.Amount })
	require.Equal(t, int64(33500), total)
}

func TestInvoices_LineItemsMatchRates(t *testing.T) {
	for _, inv := range seed.Invoices() {
		for _, item := range inv.Items {
			require.Equal(t, item.Quantity*item.Rate, item.Amount, "%s %s", inv.ID, item.Description)
		}
	}
}

func TestAuditEntries_NewestFirst(t *testing.T) {
	entries := seed.AuditEntries()
	require.Len(t, entries, 6)
	for i := 1; i < len(entries); i++ {
		require.True(t, entries[i-1].Timestamp.After(entries[i].Timestamp), entries[i].ID)
	}
}

func TestFeedback_ReferencesFeedbackProjects(t *testing.T) {
	names := map[int64]string{}
	for _, p := range seed.FeedbackProjects() {
		names[p.ID] = p.Name
	}
	for _, f := range seed.Feedback() {
		require.Equal(t, names[f.ProjectID], f.ProjectName)
		require.NotNil(t, f.Replies)
	}
}

func TestCopiesAreIndependent(t *testing.T) {
	a := seed.Projects()
	a[0].Assignees[0] = "changed"
	require.Equal(t, "John Smith", seed.Projects()[0].Assignees[0])
}

func TestDemoAccounts(t *testing.T) {
	accounts := seed.DemoAccounts()
	require.Len(t, accounts, 2)
	require.Equal(t, "john@techcorp.com", accounts[0].Email)
	require.Equal(t, "Innovate Ltd", accounts[1].Organization)
}
