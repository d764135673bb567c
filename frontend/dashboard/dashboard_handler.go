package dashboard

import (
	"net/http"

	sessioncontext "orgconnect/frontend/shared/context"
	"orgconnect/frontend/shared/nav"
	"orgconnect/infrastructure/metrics"
)

func DashboardPageQueryHandler(states StateFunc) http.HandlerFunc {
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

		data := PageData{
			Nav:      nav.BuildTopNavData(user, nav.ViewDashboard),
			User:     user,
			Snapshot: state.Snapshot(),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := DashboardPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
			return
		}
		metrics.ViewsRendered.WithLabelValues(string(nav.ViewDashboard)).Inc()
	}
}
