package auditlog

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	sessioncontext "orgconnect/frontend/shared/context"
	"orgconnect/frontend/shared/nav"
	"orgconnect/infrastructure/audit"
	"orgconnect/infrastructure/metrics"
	"orgconnect/infrastructure/records"
)

func criteriaFromQuery(state *State, q url.Values) records.Criteria {
	return records.Criteria{
		Query:    strings.TrimSpace(q.Get("q")),
		Category: state.NormalizeActionFilter(q.Get("action")),
		Range:    records.ParseDateRange(q.Get("range")),
	}
}

func AuditLogPageQueryHandler(states StateFunc, now func() time.Time) http.HandlerFunc {
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
		criteria := criteriaFromQuery(state, q)
		list := state.List(criteria, now())

		export := url.Values{}
		if criteria.Query != "" {
			export.Set("q", criteria.Query)
		}
		if criteria.Category != records.CategoryAll {
			export.Set("action", criteria.Category)
		}
		if criteria.Range != records.RangeAll {
			export.Set("range", string(criteria.Range))
		}
		exportURL := "/app/audit/export.csv"
		if len(export) > 0 {
			exportURL += "?" + export.Encode()
		}

		data := PageData{
			Nav:       nav.BuildTopNavData(user, nav.ViewAudit),
			Query:     criteria.Query,
			Action:    criteria.Category,
			Range:     criteria.Range,
			Error:     strings.TrimSpace(q.Get("error")),
			Actions:   state.Actions(),
			Entries:   list,
			Summary:   Summarize(list),
			ExportURL: exportURL,
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := AuditLogPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render audit log", http.StatusInternalServerError)
			return
		}
		metrics.ViewsRendered.WithLabelValues(string(nav.ViewAudit)).Inc()
	}
}

// ExportCSVQueryHandler downloads the entries matching the page filters.
func ExportCSVQueryHandler(states StateFunc, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := sessioncontext.GetUserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		state, ok := states(r.Context())
		if !ok {
			http.Error(w, "workspace not available", http.StatusInternalServerError)
			return
		}

		at := now()
		list := state.List(criteriaFromQuery(state, r.URL.Query()), at)

		var buf bytes.Buffer
		if err := audit.WriteCSV(&buf, list); err != nil {
			slog.Error("failed to write audit csv", slog.Any("err", err))
			http.Error(w, "failed to export audit log", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+audit.ExportFilename(at)+`"`)
		_, _ = w.Write(buf.Bytes())
	}
}
