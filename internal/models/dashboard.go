package models

// UnitStatusTag is the authoritative deployment state carried by a curriculum unit.
type UnitStatusTag string

// Supported unit status tags.
const (
	UnitStatusCompleted UnitStatusTag = "completed"
	UnitStatusPending   UnitStatusTag = "pending"
	UnitStatusMissing   UnitStatusTag = "missing"
)

// NoAssessmentDate marks a unit that has never been assessed.
const NoAssessmentDate = "-"

// ActivityRecord is a single authoring event as supplied by the data source.
type ActivityRecord struct {
	Timestamp   string `db:"occurred_at" json:"timestamp"`
	Description string `db:"description" json:"description"`
}

// UnitRecord describes curriculum unit coverage. Status is authoritative; the three
// flags only track which assessment types were deployed.
type UnitRecord struct {
	Name               string        `db:"name" json:"name"`
	Status             UnitStatusTag `db:"status" json:"status"`
	StatusLabel        string        `db:"status_label" json:"statusLabel,omitempty"`
	DiagnosticDone     bool          `db:"diagnostic_done" json:"diagnosticDone"`
	FormativeDone      bool          `db:"formative_done" json:"formativeDone"`
	SummativeDone      bool          `db:"summative_done" json:"summativeDone"`
	LastAssessmentDate string        `db:"last_assessment_date" json:"lastAssessmentDate"`
}

// TimeSlotCount holds the activity count for one hour-of-day bucket.
type TimeSlotCount struct {
	Icon  string `db:"icon" json:"icon"`
	Label string `db:"label" json:"label"`
	Count int    `db:"count" json:"count"`
}

// DayTotals splits activity by day of week. It is not derived from TimeSlotCount.
type DayTotals struct {
	Weekday int `db:"weekday" json:"weekday"`
	Weekend int `db:"weekend" json:"weekend"`
}

// MetricCard is a pre-formatted summary indicator.
type MetricCard struct {
	Icon   string `db:"icon" json:"icon"`
	Label  string `db:"label" json:"label"`
	Value  string `db:"value" json:"value"`
	Detail string `db:"detail" json:"detail"`
}

// ProgressGuide is the recommended next unit/assessment/date triple.
type ProgressGuide struct {
	CurrentUnit           string `db:"current_unit" json:"currentUnit"`
	RecommendedDate       string `db:"recommended_date" json:"recommendedDate"`
	RecommendedAssessment string `db:"recommended_assessment" json:"recommendedAssessment"`
}

// MonthlySeries is handed to the charting widget untouched.
type MonthlySeries struct {
	Label  string   `json:"label"`
	Labels []string `json:"labels"`
	Series []int    `json:"series"`
}

// DashboardSnapshot bundles every raw input needed to assemble one teacher dashboard.
type DashboardSnapshot struct {
	TeacherName string
	Progress    ProgressGuide
	Metrics     []MetricCard
	Units       []UnitRecord
	TimeSlots   []TimeSlotCount
	Days        DayTotals
	Activities  []ActivityRecord
	Monthly     MonthlySeries
}
