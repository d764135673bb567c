package workspace

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	sessioncontext "orgconnect/frontend/shared/context"
	"orgconnect/models"
)

// MetricsResponse is the body of the polling endpoint.
type MetricsResponse struct {
	Dashboard models.DashboardMetrics `json:"dashboard"`
	Analytics models.AnalyticsMetrics `json:"analytics"`
}

// Middleware opens the workspace of the signed-in session and puts it on
// the request context. It must run after session loading.
func (r *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sess, ok := sessioncontext.GetSessionFromContext(req.Context())
		if !ok {
			http.Redirect(w, req, "/login", http.StatusSeeOther)
			return
		}
		ws, err := r.Open(sess.ID, sess.User)
		if errors.Is(err, ErrClosed) {
			http.Redirect(w, req, "/login", http.StatusSeeOther)
			return
		}
		if err != nil {
			slog.Error("failed to open workspace", slog.Any("err", err))
			http.Error(w, "workspace not available", http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, req.WithContext(NewContext(req.Context(), ws)))
	})
}

// MetricsQueryHandler returns the live counters of the caller's workspace.
func MetricsQueryHandler(w http.ResponseWriter, r *http.Request) {
	ws, ok := FromContext(r.Context())
	if !ok {
		http.Error(w, "workspace not available", http.StatusUnauthorized)
		return
	}
	resp := MetricsResponse{
		Dashboard: ws.Dashboard.Metrics(),
		Analytics: ws.Analytics.Metrics(),
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to write metrics", slog.Any("err", err))
	}
}
