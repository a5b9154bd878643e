package model

import "time"

// Widget types of the HR dashboard
const (
	WidgetStats         = "stats"
	WidgetRecentResumes = "recent_resumes"
	WidgetAnalytics     = "analytics"
	WidgetNotifications = "notifications"
	WidgetQuickActions  = "quick_actions"
)

// WidgetTypes lists every widget the dashboard can render
var WidgetTypes = []string{WidgetStats, WidgetRecentResumes, WidgetAnalytics, WidgetNotifications, WidgetQuickActions}

// Position is a grid cell on the dashboard
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DashboardWidget is one entry of the HR dashboard layout, persisted under aps_hr_dashboard
type DashboardWidget struct {
	ID       string   `json:"id" binding:"required"`
	Type     string   `json:"type" binding:"required,widget_type"`
	Position Position `json:"position"`
}

// DefaultDashboardWidgets is the layout used when nothing is stored
func DefaultDashboardWidgets() []DashboardWidget {
	return []DashboardWidget{
		{ID: "stats", Type: WidgetStats, Position: Position{X: 0, Y: 0}},
		{ID: "recent", Type: WidgetRecentResumes, Position: Position{X: 1, Y: 0}},
		{ID: "charts", Type: WidgetAnalytics, Position: Position{X: 0, Y: 1}},
	}
}

// DateRange bounds a report
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ReportData holds the resume counters of a report
type ReportData struct {
	TotalResumes  int `json:"totalResumes"`
	ApprovedCount int `json:"approvedCount"`
	RejectedCount int `json:"rejectedCount"`
	PendingCount  int `json:"pendingCount"`
}

// Report is a generated HR report
type Report struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	DateRange   DateRange  `json:"dateRange"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Data        ReportData `json:"data"`
}

// Notification types
const (
	NotificationResume = "resume"
	NotificationUser   = "user"
	NotificationSystem = "system"
	NotificationAlert  = "alert"
)

// Notification is an in-memory HR notification
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
