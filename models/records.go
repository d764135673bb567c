package models

import (
	"strconv"
	"time"
)

const (
	ProjectNotStarted = "not-started"
	ProjectInProgress = "in-progress"
	ProjectCompleted  = "completed"
	ProjectDelayed    = "delayed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	InvoiceDraft   = "draft"
	InvoicePending = "pending"
	InvoicePaid    = "paid"
	InvoiceOverdue = "overdue"
)

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

type Project struct {
	ID          int64
	Name        string
	Description string
	Progress    int
	Status      string
	Priority    string
	Deadline    time.Time
	Team        string
	Assignees   []string
	Budget      int64
	Spent       int64
}

func (p Project) FilterText() []string { return []string{p.Name, p.Description} }
func (p Project) FilterCategory() string { return p.Status }
func (p Project) FilterTime() time.Time { return p.Deadline }

type LineItem struct {
	Description string
	Quantity    int64
	Rate        int64
	Amount      int64
}

type Invoice struct {
	ID          string
	ProjectName string
	ClientOrg   string
	ProviderOrg string
	Amount      int64
	Status      string
	IssueDate   time.Time
	DueDate     time.Time
	PaidDate    *time.Time
	Items       []LineItem
}

func (i Invoice) FilterText() []string { return []string{i.ID, i.ProjectName, i.ClientOrg} }
func (i Invoice) FilterCategory() string { return i.Status }
func (i Invoice) FilterTime() time.Time { return i.IssueDate }

type Reply struct {
	ID        int64
	Author    string
	AuthorOrg string
	Comment   string
	Timestamp time.Time
}

type Feedback struct {
	ID          int64
	ProjectID   int64
	ProjectName string
	Author      string
	AuthorOrg   string
	Comment     string
	Rating      int
	Timestamp   time.Time
	Replies     []Reply
	Likes       int
	Dislikes    int
}

func (f Feedback) FilterText() []string { return []string{f.Comment, f.Author, f.ProjectName} }
func (f Feedback) FilterCategory() string {
	return strconv.FormatInt(f.ProjectID, 10)
}
func (f Feedback) FilterTime() time.Time { return f.Timestamp }

// FeedbackProject is an entry of the feedback view's own project list.
type FeedbackProject struct {
	ID   int64
	Name string
}

// Detail is one ordered key/value of an audit entry.
type Detail struct {
	Key   string
	Value string
}

type AuditEntry struct {
	ID                string
	Timestamp         time.Time
	Action            string
	ActionDescription string
	User              string
	UserEmail         string
	Organization      string
	Resource          string
	ResourceType      string
	Details           []Detail
	IPAddress         string
	UserAgent         string
	Severity          string
	Hash              string
}

func (e AuditEntry) FilterText() []string { return []string{e.Action, e.User, e.Resource} }
func (e AuditEntry) FilterCategory() string { return e.Action }
func (e AuditEntry) FilterTime() time.Time { return e.Timestamp }

// DashboardMetrics are the four live counters on the dashboard.
type DashboardMetrics struct {
	ActiveProjects  int `json:"activeProjects"`
	CompletedTasks  int `json:"completedTasks"`
	PendingInvoices int `json:"pendingInvoices"`
	TeamMembers     int `json:"teamMembers"`
}

// ProjectHealth is the dashboard's own, simpler view of a project.
type ProjectHealth struct {
	ID       int64
	Name     string
	Progress int
	Health   string
	Deadline time.Time
	Team     string
}

type Activity struct {
	ID      int64
	Action  string
	Project string
	When    string
	User    string
}

type AnalyticsMetrics struct {
	ProjectCompletionRate  float64 `json:"projectCompletionRate"`
	AverageProjectDuration float64 `json:"averageProjectDuration"`
	TeamProductivity       float64 `json:"teamProductivity"`
	ClientSatisfaction     float64 `json:"clientSatisfaction"`
	RevenueGrowth          float64 `json:"revenueGrowth"`
	UpcomingDeadlines      int     `json:"upcomingDeadlines"`
}

type Prediction struct {
	ID                    int64
	Name                  string
	CurrentProgress       int
	PredictedCompletion   time.Time
	OriginalDeadline      time.Time
	Confidence            int
	Status                string
	RemainingTasks        int
	RiskFactors           []string
	CompletionProbability int
}

type PerformanceMetric struct {
	Label  string
	Value  string
	Change string
	Trend  string
}
