package feedback

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

func FeedbackPageQueryHandler(states StateFunc, now func() time.Time) http.HandlerFunc {
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
			Category: state.NormalizeProjectFilter(q.Get("project")),
		}
		list := state.List(criteria, now())

		data := PageData{
			Nav:      nav.BuildTopNavData(user, nav.ViewFeedback),
			Query:    criteria.Query,
			Project:  criteria.Category,
			Message:  strings.TrimSpace(q.Get("message")),
			Error:    strings.TrimSpace(q.Get("error")),
			Projects: state.Projects(),
			Entries:  list,
			Summary:  Summarize(list),
			Input: SubmitInput{
				ProjectID: q.Get("projectId"),
				Rating:    q.Get("rating"),
				Comment:   q.Get("comment"),
			},
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := FeedbackPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render feedback page", http.StatusInternalServerError)
			return
		}
		metrics.ViewsRendered.WithLabelValues(string(nav.ViewFeedback)).Inc()
	}
}

func SubmitFeedbackCommandHandler(states StateFunc, now func() time.Time) http.HandlerFunc {
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
			http.Redirect(w, r, "/app/feedback?error="+url.QueryEscape("Invalid form data"), http.StatusSeeOther)
			return
		}

		in := SubmitInput{
			ProjectID: r.FormValue("projectId"),
			Rating:    r.FormValue("rating"),
			Comment:   r.FormValue("comment"),
		}
		entry, err := state.Submit(in, user, now())
		if err != nil {
			back := url.Values{
				"error":     {err.Error()},
				"projectId": {in.ProjectID},
				"rating":    {in.Rating},
				"comment":   {in.Comment},
			}
			http.Redirect(w, r, "/app/feedback?"+back.Encode(), http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, "/app/feedback?message="+url.QueryEscape("Feedback posted on "+entry.ProjectName), http.StatusSeeOther)
	}
}
