package feedback

import (
	"context"

	"orgconnect/frontend/shared/nav"
	"orgconnect/models"
)

// StateFunc resolves the feedback thread of the request's workspace.
type StateFunc func(ctx context.Context) (*State, bool)

// SubmitInput is the raw form. Rating stays a string until Submit parses it.
type SubmitInput struct {
	ProjectID string
	Rating    string
	Comment   string
}

type Summary struct {
	Count         int
	AverageRating float64
}

type PageData struct {
	Nav      nav.TopNavData
	Query    string
	Project  string
	Message  string
	Error    string
	Projects []models.FeedbackProject
	Entries  []models.Feedback
	Summary  Summary
	Input    SubmitInput
}
