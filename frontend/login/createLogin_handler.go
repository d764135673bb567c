package login

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"orgconnect/infrastructure/metrics"
	"orgconnect/infrastructure/password"
	"orgconnect/infrastructure/session"
	"orgconnect/infrastructure/sqlite"
	"orgconnect/models"
)

// InvalidCredentialsMessage is shown for any failed sign-in.
const InvalidCredentialsMessage = `Invalid credentials. Try john@techcorp.com or sarah@innovate.com with password "password"`

// CreateLoginHandler authenticates the user and issues a session cookie.
func CreateLoginHandler(db *sqlite.DB, sessions *session.Store, hasher *password.Hasher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/login?error="+url.QueryEscape("Invalid form data"), http.StatusSeeOther)
			return
		}

		email := strings.TrimSpace(r.FormValue("email"))
		rawPassword := r.FormValue("password")

		user, err := authenticate(r.Context(), db, hasher, email, rawPassword)
		if err != nil {
			if !errors.Is(err, ErrInvalidCredentials) {
				slog.Error("login failed", slog.Any("err", err))
				metrics.Logins.WithLabelValues("error").Inc()
			} else {
				metrics.Logins.WithLabelValues("invalid").Inc()
			}
			back := url.Values{"error": {InvalidCredentialsMessage}, "email": {email}}
			http.Redirect(w, r, "/login?"+back.Encode(), http.StatusSeeOther)
			return
		}

		if !startSession(w, r, sessions, user) {
			return
		}
		metrics.Logins.WithLabelValues("success").Inc()
		http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
	}
}

// startSession persists user under a new token and sets the cookie. It
// writes the failure response itself and reports whether it succeeded.
func startSession(w http.ResponseWriter, r *http.Request, sessions *session.Store, user models.User) bool {
	sess, err := sessions.Create(r.Context(), user)
	if err != nil {
		slog.Error("failed to create session", slog.Any("err", err))
		http.Redirect(w, r, "/login?error="+url.QueryEscape("Failed to create session"), http.StatusSeeOther)
		return false
	}
	http.SetCookie(w, session.SessionCookie(sess.ID, int(sessions.TTL().Seconds())))
	return true
}
