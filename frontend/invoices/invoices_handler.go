package invoices

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	sessioncontext "orgconnect/frontend/shared/context"
	"orgconnect/frontend/shared/nav"
	"orgconnect/infrastructure/metrics"
	"orgconnect/infrastructure/records"
)

func InvoicesPageQueryHandler(states StateFunc, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := sessioncontext.GetUserFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		state, ok := states(r.Context())
		if !ok {
			http.Error(w, "workspace not available", http.StatusInternalServerError)
			return
		}

		q := r.URL.Query()
		criteria := records.Criteria{
			Query:    strings.TrimSpace(q.Get("q")),
			Category: NormalizeStatusFilter(q.Get("status")),
		}
		list := state.List(criteria, now())

		data := PageData{
			Nav:      nav.BuildTopNavData(user, nav.ViewInvoices),
			Query:    criteria.Query,
			Status:   criteria.Category,
			Error:    strings.TrimSpace(q.Get("error")),
			Invoices: list,
			Totals:   Summarize(list),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := InvoicesPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render invoices page", http.StatusInternalServerError)
			return
		}
		metrics.ViewsRendered.WithLabelValues(string(nav.ViewInvoices)).Inc()
	}
}

func InvoiceDetailPageQueryHandler(states StateFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := sessioncontext.GetUserFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		state, ok := states(r.Context())
		if !ok {
			http.Error(w, "workspace not available", http.StatusInternalServerError)
			return
		}

		inv, err := state.Find(chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Redirect(w, r, "/app/invoices?error="+url.QueryEscape("Invoice not found"), http.StatusSeeOther)
				return
			}
			http.Error(w, "failed to load invoice", http.StatusInternalServerError)
			return
		}

		data := DetailPageData{
			Nav:        nav.BuildTopNavData(user, nav.ViewInvoices),
			Invoice:    inv,
			ItemsTotal: ItemsTotal(inv),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := InvoiceDetailPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render invoice", http.StatusInternalServerError)
			return
		}
	}
}

func InvoicePDFQueryHandler(states StateFunc, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, ok := states(r.Context())
		if !ok {
			http.Error(w, "workspace not available", http.StatusInternalServerError)
			return
		}
		inv, err := state.Find(chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Redirect(w, r, "/app/invoices?error="+url.QueryEscape("Invoice not found"), http.StatusSeeOther)
				return
			}
			http.Error(w, "failed to load invoice", http.StatusInternalServerError)
			return
		}

		pdfBytes, err := renderInvoicePDF(inv, now())
		if err != nil {
			slog.Error("render invoice pdf failed", slog.String("invoice", inv.ID), slog.Any("err", err))
			http.Error(w, "failed to render invoice pdf", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+inv.ID+`.pdf"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
		_, _ = w.Write(pdfBytes)
	}
}
