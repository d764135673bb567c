package login

import (
	"net/http"
	"strings"

	sessioncontext "orgconnect/frontend/shared/context"
	"orgconnect/infrastructure/seed"
)

// GetLoginScreenHandler renders the sign-in form.
func GetLoginScreenHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessioncontext.GetUserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
		return
	}
	q := r.URL.Query()
	data := ScreenData{
		Error: strings.TrimSpace(q.Get("error")),
		Email: q.Get("email"),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := LoginScreen(data).Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render login screen", http.StatusInternalServerError)
		return
	}
}

// GetRegisterScreenHandler renders the registration form.
func GetRegisterScreenHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessioncontext.GetUserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
		return
	}
	q := r.URL.Query()
	data := ScreenData{
		Error:         strings.TrimSpace(q.Get("error")),
		Name:          q.Get("name"),
		Email:         q.Get("email"),
		Organization:  q.Get("organization"),
		Organizations: seed.Organizations(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := RegisterScreen(data).Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render register screen", http.StatusInternalServerError)
		return
	}
}
