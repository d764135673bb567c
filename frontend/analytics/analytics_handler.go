package analytics

import (
	"net/http"

	sessioncontext "orgconnect/frontend/shared/context"
	"orgconnect/frontend/shared/nav"
	"orgconnect/infrastructure/metrics"
)

func AnalyticsPageQueryHandler(states StateFunc) http.HandlerFunc {
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

		snap := state.Snapshot()
		data := PageData{
			Nav:       nav.BuildTopNavData(user, nav.ViewAnalytics),
			Timeframe: ParseTimeframe(r.URL.Query().Get("timeframe")),
			Summary:   Summarize(snap.Predictions),
			Snapshot:  snap,
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := AnalyticsPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render analytics", http.StatusInternalServerError)
			return
		}
		metrics.ViewsRendered.WithLabelValues(string(nav.ViewAnalytics)).Inc()
	}
}
