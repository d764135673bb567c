package nav

import "orgconnect/models"

// View identifies one top-level page of the app.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewProjects  View = "projects"
	ViewInvoices  View = "invoices"
	ViewFeedback  View = "feedback"
	ViewAudit     View = "audit"
	ViewAnalytics View = "analytics"
)

// Item is one entry of the top navigation.
type Item struct {
	View  View
	Label string
	Href  string
}

// Items lists the navigation in display order.
var Items = []Item{
	{View: ViewDashboard, Label: "Dashboard", Href: "/app/dashboard"},
	{View: ViewProjects, Label: "Projects", Href: "/app/projects"},
	{View: ViewInvoices, Label: "Invoices", Href: "/app/invoices"},
	{View: ViewFeedback, Label: "Feedback", Href: "/app/feedback"},
	{View: ViewAudit, Label: "Audit Log", Href: "/app/audit"},
	{View: ViewAnalytics, Label: "Analytics", Href: "/app/analytics"},
}

// TopNavData is shared with page renderers.
type TopNavData struct {
	Name         string
	Organization string
	Role         string
	Active       View
}

func BuildTopNavData(user models.User, active View) TopNavData {
	return TopNavData{Name: user.Name, Organization: user.Organization, Role: user.Role, Active: active}
}
