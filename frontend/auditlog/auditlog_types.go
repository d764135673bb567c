package auditlog

import (
	"context"

	"orgconnect/frontend/shared/nav"
	"orgconnect/infrastructure/records"
	"orgconnect/models"
)

// StateFunc resolves the audit log of the request's workspace.
type StateFunc func(ctx context.Context) (*State, bool)

// Severities in display order.
var Severities = []string{models.SeverityHigh, models.SeverityMedium, models.SeverityLow}

type Summary struct {
	Count      int
	BySeverity map[string]int
}

type PageData struct {
	Nav       nav.TopNavData
	Query     string
	Action    string
	Range     records.DateRange
	Error     string
	Actions   []string
	Entries   []models.AuditEntry
	Summary   Summary
	ExportURL string
}
