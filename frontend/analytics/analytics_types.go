package analytics

import (
	"context"
	"time"

	"orgconnect/frontend/shared/nav"
	"orgconnect/models"
)

// StateFunc resolves the analytics state of the request's workspace.
type StateFunc func(ctx context.Context) (*State, bool)

// Timeframe is the period selector. It is echoed back only; the numbers do
// not depend on it.
type Timeframe string

const (
	TimeframeWeek    Timeframe = "week"
	TimeframeMonth   Timeframe = "month"
	TimeframeQuarter Timeframe = "quarter"
	TimeframeYear    Timeframe = "year"
)

var Timeframes = []Timeframe{TimeframeWeek, TimeframeMonth, TimeframeQuarter, TimeframeYear}

type Snapshot struct {
	Metrics     models.AnalyticsMetrics
	Predictions []models.Prediction
	Performance []models.PerformanceMetric
	UpdatedAt   time.Time
}

type Summary struct {
	AverageProbability float64
	AtRisk             int
}

type PageData struct {
	Nav       nav.TopNavData
	Timeframe Timeframe
	Summary   Summary
	Snapshot
}
