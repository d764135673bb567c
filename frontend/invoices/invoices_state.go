package invoices

import (
	"errors"
	"strings"
	"time"

	"orgconnect/infrastructure/records"
	"orgconnect/infrastructure/seed"
	"orgconnect/models"
)

var ErrNotFound = errors.New("invoice not found")

// State is one workspace's invoice list. Invoices are read-only.
type State struct {
	store *records.Store[models.Invoice]
}

func NewState() *State {
	return &State{store: records.NewStore(seed.Invoices())}
}

// List returns the invoices matching c; there is no date filter.
func (s *State) List(c records.Criteria, now time.Time) []models.Invoice {
	c.Range = records.RangeAll
	return records.Filter(s.store.All(), c, now)
}

// Find looks an invoice up by id, ignoring case.
func (s *State) Find(id string) (models.Invoice, error) {
	id = strings.TrimSpace(id)
	inv, ok := s.store.Find(func(i models.Invoice) bool { return strings.EqualFold(i.ID, id) })
	if !ok {
		return models.Invoice{}, ErrNotFound
	}
	return inv, nil
}

// NormalizeStatusFilter maps unknown statuses to all.
func NormalizeStatusFilter(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	for _, status := range Statuses {
		if v == status {
			return v
		}
	}
	return records.CategoryAll
}

func isPaid(i models.Invoice) bool { return i.Status == models.InvoicePaid }

func amount(i models.Invoice) int64 { return i.Amount }

// Summarize totals the listed invoices. Outstanding is everything not paid.
func Summarize(list []models.Invoice) Totals {
	return Totals{
		Count:       len(list),
		Total:       records.Sum(list, amount),
		Paid:        records.SumWhere(list, isPaid, amount),
		Outstanding: records.SumWhere(list, func(i models.Invoice) bool { return !isPaid(i) }, amount),
	}
}

// ItemsTotal adds up the line items, which need not equal the invoice amount.
func ItemsTotal(inv models.Invoice) int64 {
	return records.Sum(inv.Items, func(l models.LineItem) int64 { return l.Amount })
}
