package projects

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	sessioncontext "orgconnect/frontend/shared/context"
	"orgconnect/frontend/shared/nav"
	"orgconnect/infrastructure/metrics"
	"orgconnect/infrastructure/records"
)

func ProjectsPageQueryHandler(states StateFunc, now func() time.Time) http.HandlerFunc {
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
			Nav:      nav.BuildTopNavData(user, nav.ViewProjects),
			Query:    criteria.Query,
			Status:   criteria.Category,
			Message:  strings.TrimSpace(q.Get("message")),
			Error:    strings.TrimSpace(q.Get("error")),
			Projects: list,
			Summary:  Summarize(list),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ProjectsPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render projects page", http.StatusInternalServerError)
			return
		}
		metrics.ViewsRendered.WithLabelValues(string(nav.ViewProjects)).Inc()
	}
}

func NewProjectPageQueryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := sessioncontext.GetUserFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		q := r.URL.Query()
		data := NewPageData{
			Nav:   nav.BuildTopNavData(user, nav.ViewProjects),
			Error: strings.TrimSpace(q.Get("error")),
			Input: CreateInput{
				Name:        q.Get("name"),
				Description: q.Get("description"),
				Deadline:    q.Get("deadline"),
				Priority:    NormalizePriority(q.Get("priority")),
			},
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := NewProjectPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render new project page", http.StatusInternalServerError)
			return
		}
	}
}

func CreateProjectCommandHandler(states StateFunc) http.HandlerFunc {
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
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/app/projects/new?error="+url.QueryEscape("Invalid form data"), http.StatusSeeOther)
			return
		}

		in := CreateInput{
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Deadline:    r.FormValue("deadline"),
			Priority:    r.FormValue("priority"),
		}
		created, err := state.Create(in, user)
		if err != nil {
			// Send the form values back so the user does not retype them.
			back := url.Values{
				"error":       {err.Error()},
				"name":        {in.Name},
				"description": {in.Description},
				"deadline":    {in.Deadline},
				"priority":    {in.Priority},
			}
			http.Redirect(w, r, "/app/projects/new?"+back.Encode(), http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, "/app/projects?message="+url.QueryEscape("Project created: "+created.Name), http.StatusSeeOther)
	}
}
