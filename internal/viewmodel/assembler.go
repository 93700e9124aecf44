package viewmodel

import (
	"github.com/noah-isme/aidt-dashboard-api/internal/dto"
	"github.com/noah-isme/aidt-dashboard-api/internal/models"
	"github.com/noah-isme/aidt-dashboard-api/pkg/markup"
)

// Input carries the raw records for one dashboard render.
type Input struct {
	TeacherName  string
	Progress     models.ProgressGuide
	Metrics      []models.MetricCard
	Units        []models.UnitRecord
	TimeSlots    []models.TimeSlotCount
	WeekdayCount int
	WeekendCount int
	Activities   []models.ActivityRecord
	Monthly      models.MonthlySeries
}

// InputFromSnapshot maps a data source snapshot onto assembler input.
func InputFromSnapshot(snapshot models.DashboardSnapshot) Input {
	return Input{
		TeacherName:  snapshot.TeacherName,
		Progress:     snapshot.Progress,
		Metrics:      snapshot.Metrics,
		Units:        snapshot.Units,
		TimeSlots:    snapshot.TimeSlots,
		WeekdayCount: snapshot.Days.Weekday,
		WeekendCount: snapshot.Days.Weekend,
		Activities:   snapshot.Activities,
		Monthly:      snapshot.Monthly,
	}
}

// Assembler composes the classifiers into a DashboardViewModel.
type Assembler struct {
	ranker ActionRanker
}

// NewAssembler builds an assembler; a nil ranker means the static action list.
func NewAssembler(ranker ActionRanker) *Assembler {
	if ranker == nil {
		ranker = StaticRanker{}
	}
	return &Assembler{ranker: ranker}
}

// Assemble derives the view-model. Inputs are copied, never mutated, and the only
// failure is a unit data-integrity error.
func (a *Assembler) Assemble(in Input) (dto.DashboardViewModel, error) {
	units, err := buildUnits(in.Units)
	if err != nil {
		return dto.DashboardViewModel{}, err
	}
	slots := DetectPeaks(in.TimeSlots)
	activities := buildActivities(in.Activities)

	metrics := make([]models.MetricCard, len(in.Metrics))
	copy(metrics, in.Metrics)

	return dto.DashboardViewModel{
		TeacherName:        in.TeacherName,
		ProgressGuide:      in.Progress,
		Metrics:            metrics,
		Units:              units,
		TimeSlots:          slots,
		PeakSlotLabels:     PeakLabels(slots),
		WeekdayCount:       in.WeekdayCount,
		WeekendCount:       in.WeekendCount,
		Activities:         activities,
		RecommendedActions: a.rank(activities),
		MonthlySeries:      copySeries(in.Monthly),
	}, nil
}

func (a *Assembler) rank(activities []dto.ActivityView) []dto.RecommendedAction {
	actions := a.ranker.Rank(activities)
	if len(actions) > MaxRecommendedActions {
		actions = actions[:MaxRecommendedActions]
	}
	if actions == nil {
		actions = []dto.RecommendedAction{}
	}
	return actions
}

func buildUnits(records []models.UnitRecord) ([]dto.UnitView, error) {
	units := make([]dto.UnitView, 0, len(records))
	for _, record := range records {
		status, err := ClassifyUnit(record)
		if err != nil {
			return nil, err
		}
		units = append(units, dto.UnitView{
			Name:               record.Name,
			DiagnosticDone:     record.DiagnosticDone,
			FormativeDone:      record.FormativeDone,
			SummativeDone:      record.SummativeDone,
			LastAssessmentDate: record.LastAssessmentDate,
			UnitStatus:         status,
		})
	}
	return units, nil
}

func buildActivities(records []models.ActivityRecord) []dto.ActivityView {
	activities := make([]dto.ActivityView, 0, len(records))
	for _, record := range records {
		activities = append(activities, dto.ActivityView{
			Timestamp: record.Timestamp,
			Content:   toDescription(markup.Parse(record.Description)),
			QuickLink: ClassifyQuickLink(record.Description),
		})
	}
	return activities
}

func toDescription(doc markup.Document) dto.Description {
	spans := make([]dto.EmphasisSpan, 0, len(doc.Spans))
	for _, span := range doc.Spans {
		spans = append(spans, dto.EmphasisSpan{Start: span.Start, End: span.End})
	}
	return dto.Description{Text: doc.Text, EmphasizedSpans: spans}
}

func copySeries(series models.MonthlySeries) models.MonthlySeries {
	labels := make([]string, len(series.Labels))
	copy(labels, series.Labels)
	values := make([]int, len(series.Series))
	copy(values, series.Series)
	return models.MonthlySeries{Label: series.Label, Labels: labels, Series: values}
}
