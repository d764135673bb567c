package projects

import (
	"context"

	"orgconnect/frontend/shared/nav"
	"orgconnect/models"
)

// StateFunc resolves the project list of the request's workspace.
type StateFunc func(ctx context.Context) (*State, bool)

// Statuses are the filterable project statuses in display order.
var Statuses = []string{
	models.ProjectNotStarted,
	models.ProjectInProgress,
	models.ProjectCompleted,
	models.ProjectDelayed,
}

type CreateInput struct {
	Name        string
	Description string
	Deadline    string
	Priority    string
}

type Summary struct {
	Count    int
	Budget   int64
	Spent    int64
	ByStatus map[string]int
}

type PageData struct {
	Nav      nav.TopNavData
	Query    string
	Status   string
	Message  string
	Error    string
	Projects []models.Project
	Summary  Summary
}

type NewPageData struct {
	Nav   nav.TopNavData
	Error string
	Input CreateInput
}
