package workspace

import (
	"context"

	"orgconnect/frontend/analytics"
	"orgconnect/frontend/auditlog"
	"orgconnect/frontend/dashboard"
	"orgconnect/frontend/feedback"
	"orgconnect/frontend/invoices"
	"orgconnect/frontend/projects"
)

type workspaceKey struct{}

func NewContext(ctx context.Context, ws *Workspace) context.Context {
	return context.WithValue(ctx, workspaceKey{}, ws)
}

func FromContext(ctx context.Context) (*Workspace, bool) {
	ws, ok := ctx.Value(workspaceKey{}).(*Workspace)
	return ws, ok && ws != nil
}

// State resolvers handed to the view handlers.

func DashboardState(ctx context.Context) (*dashboard.State, bool) {
	ws, ok := FromContext(ctx)
	if !ok {
		return nil, false
	}
	return ws.Dashboard, true
}

func ProjectsState(ctx context.Context) (*projects.State, bool) {
	ws, ok := FromContext(ctx)
	if !ok {
		return nil, false
	}
	return ws.Projects, true
}

func InvoicesState(ctx context.Context) (*invoices.State, bool) {
	ws, ok := FromContext(ctx)
	if !ok {
		return nil, false
	}
	return ws.Invoices, true
}

func FeedbackState(ctx context.Context) (*feedback.State, bool) {
	ws, ok := FromContext(ctx)
	if !ok {
		return nil, false
	}
	return ws.Feedback, true
}

func AuditState(ctx context.Context) (*auditlog.State, bool) {
	ws, ok := FromContext(ctx)
	if !ok {
		return nil, false
	}
	return ws.Audit, true
}

func AnalyticsState(ctx context.Context) (*analytics.State, bool) {
	ws, ok := FromContext(ctx)
	if !ok {
		return nil, false
	}
	return ws.Analytics, true
}
