package dashboard

import (
	"context"
	"time"

	"orgconnect/frontend/shared/nav"
	"orgconnect/models"
)

// StateFunc resolves the dashboard of the request's workspace.
type StateFunc func(ctx context.Context) (*State, bool)

type Snapshot struct {
	Metrics    models.DashboardMetrics
	Projects   []models.ProjectHealth
	Activities []models.Activity
	UpdatedAt  time.Time
}

type PageData struct {
	Nav  nav.TopNavData
	User models.User
	Snapshot
}
