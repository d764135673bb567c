package login

import (
	"log/slog"
	"net/http"

	"orgconnect/infrastructure/session"
)

// WorkspaceCloser drops the live state kept for a session token.
type WorkspaceCloser interface {
	Close(token string) bool
}

// LogoutHandler removes session state and clears cookie.
func LogoutHandler(sessions *session.Store, workspaces WorkspaceCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err == nil && cookie.Value != "" {
			if workspaces != nil {
				workspaces.Close(cookie.Value)
			}
			if err := sessions.Delete(r.Context(), cookie.Value); err != nil {
				slog.Error("failed to delete session", slog.Any("err", err))
			}
		}
		http.SetCookie(w, session.ClearCookie())
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
}
