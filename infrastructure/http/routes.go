package http

import (
	"time"

	"github.com/go-chi/chi/v5"

	"orgconnect/frontend/analytics"
	"orgconnect/frontend/auditlog"
	"orgconnect/frontend/dashboard"
	"orgconnect/frontend/feedback"
	"orgconnect/frontend/invoices"
	"orgconnect/frontend/login"
	"orgconnect/frontend/projects"
	"orgconnect/frontend/workspace"
)

// RegisterLoginRoutes registers login/logout routes.
func (s *Server) RegisterLoginRoutes() {
	s.router.Get("/login", login.GetLoginScreenHandler)
	s.router.Post("/login", login.CreateLoginHandler(s.DB, s.Sessions, s.Hasher))
	s.router.Get("/register", login.GetRegisterScreenHandler)
	s.router.Post("/register", login.CreateRegistrationHandler(s.Sessions))
	s.router.Post("/logout", login.LogoutHandler(s.Sessions, s.Workspaces))
}

// RegisterFrontendRoutes registers authenticated routes.
func (s *Server) RegisterFrontendRoutes(r chi.Router) chi.Router {
	now := func() time.Time { return s.Now() }

	r.Get("/dashboard", dashboard.DashboardPageQueryHandler(workspace.DashboardState))

	r.Get("/projects", projects.ProjectsPageQueryHandler(workspace.ProjectsState, now))
	r.Get("/projects/new", projects.NewProjectPageQueryHandler())
	r.Post("/projects", projects.CreateProjectCommandHandler(workspace.ProjectsState))

	r.Get("/invoices", invoices.InvoicesPageQueryHandler(workspace.InvoicesState, now))
	r.Get("/invoices/{id}", invoices.InvoiceDetailPageQueryHandler(workspace.InvoicesState))
	r.Get("/invoices/{id}/pdf", invoices.InvoicePDFQueryHandler(workspace.InvoicesState, now))

	r.Get("/feedback", feedback.FeedbackPageQueryHandler(workspace.FeedbackState, now))
	r.Post("/feedback", feedback.SubmitFeedbackCommandHandler(workspace.FeedbackState, now))

	r.Get("/audit", auditlog.AuditLogPageQueryHandler(workspace.AuditState, now))
	r.Get("/audit/export.csv", auditlog.ExportCSVQueryHandler(workspace.AuditState, now))

	r.Get("/analytics", analytics.AnalyticsPageQueryHandler(workspace.AnalyticsState))

	r.Get("/api/metrics", workspace.MetricsQueryHandler)
	return r
}
