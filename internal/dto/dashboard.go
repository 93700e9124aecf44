package dto

import "github.com/noah-isme/aidt-dashboard-api/internal/models"

// DashboardViewModel is the render-ready teacher dashboard payload.
type DashboardViewModel struct {
	TeacherName        string               `json:"teacherName"`
	ProgressGuide      models.ProgressGuide `json:"progressGuide"`
	Metrics            []models.MetricCard  `json:"metrics"`
	Units              []UnitView           `json:"units"`
	TimeSlots          []TimeSlot           `json:"timeSlots"`
	PeakSlotLabels     []string             `json:"peakSlotLabels"`
	WeekdayCount       int                  `json:"weekdayCount"`
	WeekendCount       int                  `json:"weekendCount"`
	Activities         []ActivityView       `json:"activities"`
	RecommendedActions []RecommendedAction  `json:"recommendedActions"`
	MonthlySeries      models.MonthlySeries `json:"monthlySeries"`
}

// UnitStatus is the badge derived from a unit's status tag.
type UnitStatus struct {
	Status      models.UnitStatusTag `json:"status"`
	StatusLabel string               `json:"statusLabel"`
	StyleKey    string               `json:"styleKey"`
}

// UnitView joins a unit record with its derived badge.
type UnitView struct {
	Name               string `json:"name"`
	DiagnosticDone     bool   `json:"diagnosticDone"`
	FormativeDone      bool   `json:"formativeDone"`
	SummativeDone      bool   `json:"summativeDone"`
	LastAssessmentDate string `json:"lastAssessmentDate"`
	UnitStatus
}

// TimeSlot is a time-of-day bucket flagged when it holds the maximum count.
type TimeSlot struct {
	Icon   string `json:"icon"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
	IsPeak bool   `json:"isPeak"`
}

// QuickLinkCategory identifies the shortcut derived from an activity.
type QuickLinkCategory string

// Quick-link categories in classification precedence order, fallback last.
const (
	QuickLinkManage  QuickLinkCategory = "manage"
	QuickLinkEdit    QuickLinkCategory = "edit"
	QuickLinkResults QuickLinkCategory = "results"
	QuickLinkDeploy  QuickLinkCategory = "deploy"
	QuickLinkAdd     QuickLinkCategory = "add"
	QuickLinkDetails QuickLinkCategory = "details"
)

// QuickLink is a categorised shortcut action.
type QuickLink struct {
	Category    QuickLinkCategory `json:"category"`
	DisplayText string            `json:"text"`
	Icon        string            `json:"icon"`
}

// EmphasisSpan marks an emphasised rune range [Start, End) within Description.Text.
type EmphasisSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Description is markup-free activity text with emphasis positions.
type Description struct {
	Text            string         `json:"text"`
	EmphasizedSpans []EmphasisSpan `json:"emphasizedSpans"`
}

// ActivityView is an activity with its structured description and quick-link.
type ActivityView struct {
	Timestamp string      `json:"timestamp"`
	Content   Description `json:"content"`
	QuickLink QuickLink   `json:"quickLink"`
}

// RecommendedAction is one entry of the next-action feed.
type RecommendedAction struct {
	Icon        string `json:"icon"`
	Text        string `json:"text"`
	TargetRef   string `json:"targetRef"`
	AccentColor string `json:"accentColor"`
}

// NotificationTimeRequest carries the reminder time chosen in the dashboard dialog.
type NotificationTimeRequest struct {
	NotifyAt string `json:"notifyAt" validate:"required,max=32"`
}

// NotificationTimeResponse echoes the stored reminder time.
type NotificationTimeResponse struct {
	TeacherID string `json:"teacherId"`
	NotifyAt  string `json:"notifyAt"`
	IsDefault bool   `json:"isDefault"`
}
