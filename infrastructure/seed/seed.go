// Package seed holds the sample records every new workspace starts from.
// Each function returns a fresh copy, so callers may mutate the result.
package seed

import (
	"time"

	"orgconnect/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

// DemoAccounts are the sign-ins written to the accounts table. They all
// share the configured demo password.
func DemoAccounts() []models.User {
	return []models.User{
		{ID: "1", Name: "John Smith", Email: "john@techcorp.com", Organization: "TechCorp Solutions", Role: "Project Manager"},
		{ID: "2", Name: "Sarah Johnson", Email: "sarah@innovate.com", Organization: "Innovate Ltd", Role: "Developer"},
	}
}

// Organizations are the choices offered at registration.
func Organizations() []models.Organization {
	return []models.Organization{
		{ID: "tech-corp", Name: "TechCorp Solutions"},
		{ID: "innovate-ltd", Name: "Innovate Ltd"},
	}
}

func Projects() []models.Project {
	return []models.Project{
		{
			ID: 1, Name: "E-commerce Platform",
			Description: "Complete redesign of online shopping platform with modern UI/UX",
			Progress:    75, Status: models.ProjectInProgress, Priority: models.PriorityHigh,
			Deadline: day("2024-02-15"), Team: "TechCorp Solutions",
			Assignees: []string{"John Smith", "Alice Johnson", "Bob Wilson"},
			Budget:    85000, Spent: 63750,
		},
		{
			ID: 2, Name: "Mobile App Development",
			Description: "Native mobile application for iOS and Android platforms",
			Progress:    45, Status: models.ProjectInProgress, Priority: models.PriorityHigh,
			Deadline: day("2024-03-01"), Team: "Innovate Ltd",
			Assignees: []string{"Sarah Johnson", "Mike Chen", "Emma Davis"},
			Budget:    120000, Spent: 54000,
		},
		{
			ID: 3, Name: "Data Analytics Dashboard",
			Description: "Real-time analytics dashboard for business intelligence",
			Progress:    90, Status: models.ProjectInProgress, Priority: models.PriorityMedium,
			Deadline: day("2024-01-30"), Team: "TechCorp Solutions",
			Assignees: []string{"John Smith", "Lisa Brown"},
			Budget:    45000, Spent: 40500,
		},
		{
			ID: 4, Name: "CRM Integration",
			Description: "Integration with existing CRM systems and workflow automation",
			Progress:    30, Status: models.ProjectDelayed, Priority: models.PriorityMedium,
			Deadline: day("2024-02-28"), Team: "Innovate Ltd",
			Assignees: []string{"Sarah Johnson", "Tom Wilson", "Kate Lee"},
			Budget:    75000, Spent: 22500,
		},
		{
			ID: 5, Name: "Security Audit",
			Description: "Comprehensive security assessment and vulnerability testing",
			Progress:    100, Status: models.ProjectCompleted, Priority: models.PriorityHigh,
			Deadline: day("2024-01-15"), Team: "TechCorp Solutions",
			Assignees: []string{"John Smith", "Security Team"},
			Budget:    35000, Spent: 34200,
		},
	}
}

func Invoices() []models.Invoice {
	return []models.Invoice{
		{
			ID: "INV-2024-001", ProjectName: "E-commerce Platform",
			ClientOrg: "TechCorp Solutions", ProviderOrg: "Innovate Ltd",
			Amount: 25000, Status: models.InvoicePaid,
			IssueDate: day("2024-01-15"), DueDate: day("2024-02-15"), PaidDate: dayPtr("2024-01-28"),
			Items: []models.LineItem{
				{Description: "Frontend Development", Quantity: 80, Rate: 150, Amount: 12000},
				{Description: "Backend Integration", Quantity: 60, Rate: 175, Amount: 10500},
				{Description: "Testing & QA", Quantity: 20, Rate: 125, Amount: 2500},
			},
		},
		{
			ID: "INV-2024-002", ProjectName: "Mobile App Development",
			ClientOrg: "Innovate Ltd", ProviderOrg: "TechCorp Solutions",
			Amount: 18500, Status: models.InvoicePending,
			IssueDate: day("2024-01-20"), DueDate: day("2024-02-20"),
			Items: []models.LineItem{
				{Description: "UI/UX Design", Quantity: 40, Rate: 180, Amount: 7200},
				{Description: "iOS Development", Quantity: 50, Rate: 160, Amount: 8000},
				{Description: "Android Development", Quantity: 45, Rate: 155, Amount: 6975},
			},
		},
		{
			ID: "INV-2024-003", ProjectName: "Data Analytics Dashboard",
			ClientOrg: "TechCorp Solutions", ProviderOrg: "Innovate Ltd",
			Amount: 15000, Status: models.InvoiceOverdue,
			IssueDate: day("2023-12-15"), DueDate: day("2024-01-15"),
			Items: []models.LineItem{
				{Description: "Dashboard Development", Quantity: 60, Rate: 165, Amount: 9900},
				{Description: "Data Integration", Quantity: 30, Rate: 170, Amount: 5100},
			},
		},
		{
			ID: "INV-2024-004", ProjectName: "CRM Integration",
			ClientOrg: "Innovate Ltd", ProviderOrg: "TechCorp Solutions",
			Amount: 12000, Status: models.InvoiceDraft,
			IssueDate: day("2024-01-25"), DueDate: day("2024-02-25"),
			Items: []models.LineItem{
				{Description: "CRM Setup", Quantity: 24, Rate: 200, Amount: 4800},
				{Description: "Custom Integration", Quantity: 36, Rate: 200, Amount: 7200},
			},
		},
		{
			ID: "INV-2024-005", ProjectName: "Security Audit",
			ClientOrg: "TechCorp Solutions", ProviderOrg: "External Security Firm",
			Amount: 8500, Status: models.InvoicePaid,
			IssueDate: day("2024-01-10"), DueDate: day("2024-01-25"), PaidDate: dayPtr("2024-01-22"),
			Items: []models.LineItem{
				{Description: "Vulnerability Assessment", Quantity: 1, Rate: 5000, Amount: 5000},
				{Description: "Penetration Testing", Quantity: 1, Rate: 3500, Amount: 3500},
			},
		},
	}
}

func FeedbackProjects() []models.FeedbackProject {
	return []models.FeedbackProject{
		{ID: 1, Name: "E-commerce Platform"},
		{ID: 2, Name: "Mobile App Development"},
		{ID: 3, Name: "Data Analytics Dashboard"},
		{ID: 4, Name: "CRM Integration"},
		{ID: 5, Name: "Security Audit"},
	}
}

func Feedback() []models.Feedback {
	return []models.Feedback{
		{
			ID: 1, ProjectID: 1, ProjectName: "E-commerce Platform",
			Author: "John Smith", AuthorOrg: "TechCorp Solutions",
			Comment:   "The new checkout flow is working great! Users are reporting a much smoother experience. The loading times have improved significantly.",
			Rating:    5,
			Timestamp: ts("2024-01-25T10:30:00Z"),
			Replies: []models.Reply{
				{ID: 1, Author: "Sarah Johnson", AuthorOrg: "Innovate Ltd", Comment: "Thanks for the feedback! We worked hard on optimizing the performance.", Timestamp: ts("2024-01-25T14:15:00Z")},
			},
			Likes: 8,
		},
		{
			ID: 2, ProjectID: 2, ProjectName: "Mobile App Development",
			Author: "Mike Chen", AuthorOrg: "Innovate Ltd",
			Comment:   "The iOS version needs some UI adjustments. The navigation feels a bit cramped on smaller devices. Overall good progress though.",
			Rating:    3,
			Timestamp: ts("2024-01-24T16:45:00Z"),
			Replies: []models.Reply{
				{ID: 1, Author: "Emma Davis", AuthorOrg: "Innovate Ltd", Comment: "Good point! I'll look into the navigation spacing for iPhone SE and similar devices.", Timestamp: ts("2024-01-24T18:20:00Z")},
				{ID: 2, Author: "John Smith", AuthorOrg: "TechCorp Solutions", Comment: "We can schedule a review session to go over the mobile UI together.", Timestamp: ts("2024-01-25T09:10:00Z")},
			},
			Likes: 5, Dislikes: 1,
		},
		{
			ID: 3, ProjectID: 3, ProjectName: "Data Analytics Dashboard",
			Author: "Lisa Brown", AuthorOrg: "TechCorp Solutions",
			Comment:   "Excellent work on the real-time charts! The data visualization is exactly what we needed for executive reporting.",
			Rating:    5,
			Timestamp: ts("2024-01-23T11:20:00Z"),
			Replies:   []models.Reply{},
			Likes:     12,
		},
		{
			ID: 4, ProjectID: 4, ProjectName: "CRM Integration",
			Author: "Tom Wilson", AuthorOrg: "Innovate Ltd",
			Comment:   "The Salesforce integration is having some sync issues. Customer data is not updating consistently. Needs investigation.",
			Rating:    2,
			Timestamp: ts("2024-01-22T13:15:00Z"),
			Replies: []models.Reply{
				{ID: 1, Author: "Kate Lee", AuthorOrg: "Innovate Ltd", Comment: "I'm looking into the API rate limiting issues. Should have a fix by tomorrow.", Timestamp: ts("2024-01-22T15:30:00Z")},
			},
			Likes: 3,
		},
	}
}

// AuditEntries is the newest-first starting log.
func AuditEntries() []models.AuditEntry {
	return []models.AuditEntry{
		{
			ID: "AUDIT-2024-001", Timestamp: ts("2024-01-25T10:30:15.123Z"),
			Action: "project_update", ActionDescription: "Updated project milestone",
			User: "John Smith", UserEmail: "john@techcorp.com", Organization: "TechCorp Solutions",
			Resource: "E-commerce Platform", ResourceType: "project",
			Details: []models.Detail{
				{Key: "field", Value: "progress"},
				{Key: "oldValue", Value: "70%"},
				{Key: "newValue", Value: "75%"},
				{Key: "milestone", Value: "Frontend Development"},
			},
			IPAddress: "192.168.1.101",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			Severity:  models.SeverityLow,
			Hash:      "a1b2c3d4e5f6789012345678901234567890abcd",
		},
		{
			ID: "AUDIT-2024-002", Timestamp: ts("2024-01-25T09:45:32.456Z"),
			Action: "invoice_created", ActionDescription: "Created new invoice",
			User: "Sarah Johnson", UserEmail: "sarah@innovate.com", Organization: "Innovate Ltd",
			Resource: "INV-2024-006", ResourceType: "invoice",
			Details: []models.Detail{
				{Key: "amount", Value: "$15,000"},
				{Key: "project", Value: "Mobile App Development"},
				{Key: "dueDate", Value: "2024-02-25"},
			},
			IPAddress: "192.168.1.102",
			UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
			Severity:  models.SeverityMedium,
			Hash:      "b2c3d4e5f6789012345678901234567890abcde1",
		},
		{
			ID: "AUDIT-2024-003", Timestamp: ts("2024-01-25T08:20:41.789Z"),
			Action: "user_login", ActionDescription: "User authentication successful",
			User: "Mike Chen", UserEmail: "mike@innovate.com", Organization: "Innovate Ltd",
			Resource: "Authentication System", ResourceType: "system",
			Details: []models.Detail{
				{Key: "loginMethod", Value: "email_password"},
				{Key: "sessionId", Value: "sess_1234567890abcdef"},
				{Key: "deviceType", Value: "desktop"},
			},
			IPAddress: "192.168.1.103",
			UserAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
			Severity:  models.SeverityLow,
			Hash:      "c3d4e5f6789012345678901234567890abcdef12",
		},
		{
			ID: "AUDIT-2024-004", Timestamp: ts("2024-01-24T16:15:28.012Z"),
			Action: "feedback_submitted", ActionDescription: "Submitted project feedback",
			User: "Lisa Brown", UserEmail: "lisa@techcorp.com", Organization: "TechCorp Solutions",
			Resource: "Data Analytics Dashboard", ResourceType: "project",
			Details: []models.Detail{
				{Key: "rating", Value: "5"},
				{Key: "feedbackType", Value: "positive"},
				{Key: "wordCount", Value: "45"},
			},
			IPAddress: "192.168.1.104",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			Severity:  models.SeverityLow,
			Hash:      "d4e5f6789012345678901234567890abcdef123",
		},
		{
			ID: "AUDIT-2024-005", Timestamp: ts("2024-01-24T14:30:55.345Z"),
			Action: "payment_processed", ActionDescription: "Invoice payment processed",
			User: "System", UserEmail: "system@orgconnect.com", Organization: "System",
			Resource: "INV-2024-001", ResourceType: "payment",
			Details: []models.Detail{
				{Key: "amount", Value: "$25,000"},
				{Key: "paymentMethod", Value: "bank_transfer"},
				{Key: "transactionId", Value: "TXN-789012345"},
			},
			IPAddress: "10.0.0.1",
			UserAgent: "OrgConnect-PaymentProcessor/1.0",
			Severity:  models.SeverityHigh,
			Hash:      "e5f6789012345678901234567890abcdef1234",
		},
		{
			ID: "AUDIT-2024-006", Timestamp: ts("2024-01-24T11:45:18.678Z"),
			Action: "security_scan", ActionDescription: "Automated security vulnerability scan completed",
			User: "Security Scanner", UserEmail: "security@orgconnect.com", Organization: "System",
			Resource: "All Projects", ResourceType: "security",
			Details: []models.Detail{
				{Key: "vulnerabilities", Value: "0"},
				{Key: "scanType", Value: "full_system"},
				{Key: "scanDuration", Value: "45 minutes"},
			},
			IPAddress: "10.0.0.2",
			UserAgent: "OrgConnect-SecurityScanner/2.1",
			Severity:  models.SeverityMedium,
			Hash:      "f6789012345678901234567890abcdef12345",
		},
	}
}

func DashboardMetrics() models.DashboardMetrics {
	return models.DashboardMetrics{ActiveProjects: 8, CompletedTasks: 156, PendingInvoices: 12, TeamMembers: 24}
}

// ProjectHealth is the dashboard's project list. It is kept apart from
// Projects and is not updated when projects change.
func ProjectHealth() []models.ProjectHealth {
	return []models.ProjectHealth{
		{ID: 1, Name: "E-commerce Platform", Progress: 75, Health: "on-track", Deadline: day("2024-02-15"), Team: "TechCorp Solutions"},
		{ID: 2, Name: "Mobile App Development", Progress: 45, Health: "at-risk", Deadline: day("2024-03-01"), Team: "Innovate Ltd"},
		{ID: 3, Name: "Data Analytics Dashboard", Progress: 90, Health: "on-track", Deadline: day("2024-01-30"), Team: "TechCorp Solutions"},
		{ID: 4, Name: "CRM Integration", Progress: 30, Health: "delayed", Deadline: day("2024-02-28"), Team: "Innovate Ltd"},
	}
}

func Activities() []models.Activity {
	return []models.Activity{
		{ID: 1, Action: "Project milestone completed", Project: "E-commerce Platform", When: "2 minutes ago", User: "John Smith"},
		{ID: 2, Action: "Invoice approved", Project: "Mobile App Development", When: "15 minutes ago", User: "Sarah Johnson"},
		{ID: 3, Action: "New comment added", Project: "Data Analytics Dashboard", When: "1 hour ago", User: "Mike Chen"},
		{ID: 4, Action: "Task assigned", Project: "CRM Integration", When: "2 hours ago", User: "Emma Wilson"},
	}
}

func AnalyticsMetrics() models.AnalyticsMetrics {
	return models.AnalyticsMetrics{
		ProjectCompletionRate:  78,
		AverageProjectDuration: 45,
		TeamProductivity:       85,
		ClientSatisfaction:     4.2,
		RevenueGrowth:          12.5,
		UpcomingDeadlines:      8,
	}
}

func Predictions() []models.Prediction {
	return []models.Prediction{
		{
			ID: 1, Name: "E-commerce Platform", CurrentProgress: 75,
			PredictedCompletion: day("2024-02-10"), OriginalDeadline: day("2024-02-15"),
			Confidence: 92, Status: "on-track", RemainingTasks: 8,
			RiskFactors: []string{"Dependency on external API"}, CompletionProbability: 94,
		},
		{
			ID: 2, Name: "Mobile App Development", CurrentProgress: 45,
			PredictedCompletion: day("2024-03-08"), OriginalDeadline: day("2024-03-01"),
			Confidence: 78, Status: "at-risk", RemainingTasks: 15,
			RiskFactors: []string{"Resource allocation", "iOS review process"}, CompletionProbability: 67,
		},
		{
			ID: 3, Name: "Data Analytics Dashboard", CurrentProgress: 90,
			PredictedCompletion: day("2024-01-28"), OriginalDeadline: day("2024-01-30"),
			Confidence: 98, Status: "ahead", RemainingTasks: 3,
			RiskFactors: []string{}, CompletionProbability: 99,
		},
		{
			ID: 4, Name: "CRM Integration", CurrentProgress: 30,
			PredictedCompletion: day("2024-03-15"), OriginalDeadline: day("2024-02-28"),
			Confidence: 65, Status: "delayed", RemainingTasks: 22,
			RiskFactors: []string{"API limitations", "Team availability", "Scope creep"}, CompletionProbability: 45,
		},
	}
}

func PerformanceMetrics() []models.PerformanceMetric {
	return []models.PerformanceMetric{
		{Label: "Projects Completed", Value: "23", Change: "+15%", Trend: "up"},
		{Label: "Average Task Duration", Value: "3.2 days", Change: "-8%", Trend: "down"},
		{Label: "Client Retention Rate", Value: "94%", Change: "+3%", Trend: "up"},
		{Label: "Revenue Per Project", Value: "$45,200", Change: "+22%", Trend: "up"},
	}
}
