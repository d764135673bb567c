package invoices

import (
	"context"

	"orgconnect/frontend/shared/nav"
	"orgconnect/models"
)

// StateFunc resolves the invoice list of the request's workspace.
type StateFunc func(ctx context.Context) (*State, bool)

var Statuses = []string{
	models.InvoiceDraft,
	models.InvoicePending,
	models.InvoicePaid,
	models.InvoiceOverdue,
}

type Totals struct {
	Count       int
	Total       int64
	Paid        int64
	Outstanding int64
}

type PageData struct {
	Nav      nav.TopNavData
	Query    string
	Status   string
	Error    string
	Invoices []models.Invoice
	Totals   Totals
}

type DetailPageData struct {
	Nav        nav.TopNavData
	Invoice    models.Invoice
	ItemsTotal int64
}
