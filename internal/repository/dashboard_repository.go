package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/aidt-dashboard-api/internal/models"
)

const (
	monthlySeriesLabel   = "평가 생성 수"
	monthlySeriesMonths  = 6
	defaultActivityLimit = 50
)

type queryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// DashboardRepository loads dashboard inputs from PostgreSQL.
type DashboardRepository struct {
	db            *sqlx.DB
	metrics       queryObserver
	activityLimit int
	now           func() time.Time
}

// NewDashboardRepository instantiates the repository. metrics may be nil.
func NewDashboardRepository(db *sqlx.DB, metrics queryObserver, activityLimit int) *DashboardRepository {
	if activityLimit <= 0 {
		activityLimit = defaultActivityLimit
	}
	return &DashboardRepository{db: db, metrics: metrics, activityLimit: activityLimit, now: time.Now}
}

// Snapshot gathers every raw record for the teacher. A missing teacher yields sql.ErrNoRows.
func (r *DashboardRepository) Snapshot(ctx context.Context, teacherID string) (*models.DashboardSnapshot, error) {
	snapshot := &models.DashboardSnapshot{}

	name, err := r.teacherName(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	snapshot.TeacherName = name

	if snapshot.Progress, err = r.progressGuide(ctx, teacherID); err != nil {
		return nil, err
	}
	if snapshot.Metrics, err = r.metricCards(ctx, teacherID); err != nil {
		return nil, err
	}
	if snapshot.Units, err = r.units(ctx, teacherID); err != nil {
		return nil, err
	}
	if snapshot.Activities, err = r.activities(ctx, teacherID); err != nil {
		return nil, err
	}
	if snapshot.TimeSlots, err = r.timeSlots(ctx, teacherID); err != nil {
		return nil, err
	}
	if snapshot.Days, err = r.dayTotals(ctx, teacherID); err != nil {
		return nil, err
	}
	if snapshot.Monthly, err = r.monthlySeries(ctx, teacherID); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (r *DashboardRepository) teacherName(ctx context.Context, teacherID string) (string, error) {
	defer r.observe("dashboard_teacher", time.Now())
	const query = `SELECT full_name FROM teachers WHERE id = $1`
	var name string
	if err := r.db.GetContext(ctx, &name, query, teacherID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", err
		}
		return "", fmt.Errorf("query teacher %s: %w", teacherID, err)
	}
	return name, nil
}

func (r *DashboardRepository) progressGuide(ctx context.Context, teacherID string) (models.ProgressGuide, error) {
	defer r.observe("dashboard_progress", time.Now())
	const query = `SELECT current_unit, recommended_date, recommended_assessment FROM progress_guides WHERE teacher_id = $1`
	var guide models.ProgressGuide
	if err := r.db.GetContext(ctx, &guide, query, teacherID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProgressGuide{}, nil
		}
		return models.ProgressGuide{}, fmt.Errorf("query progress guide: %w", err)
	}
	return guide, nil
}

func (r *DashboardRepository) metricCards(ctx context.Context, teacherID string) ([]models.MetricCard, error) {
	defer r.observe("dashboard_metrics", time.Now())
	const query = `SELECT icon, label, value, detail FROM dashboard_metrics WHERE teacher_id = $1 ORDER BY position`
	metrics := []models.MetricCard{}
	if err := r.db.SelectContext(ctx, &metrics, query, teacherID); err != nil {
		return nil, fmt.Errorf("query dashboard metrics: %w", err)
	}
	return metrics, nil
}

func (r *DashboardRepository) units(ctx context.Context, teacherID string) ([]models.UnitRecord, error) {
	defer r.observe("dashboard_units", time.Now())
	const query = `SELECT name, COALESCE(status, '') AS status, COALESCE(status_label, '') AS status_label,
		diagnostic_done, formative_done, summative_done,
		COALESCE(to_char(last_assessment_date, 'YYYY-MM-DD'), '-') AS last_assessment_date
		FROM curriculum_units WHERE teacher_id = $1 ORDER BY position`
	units := []models.UnitRecord{}
	if err := r.db.SelectContext(ctx, &units, query, teacherID); err != nil {
		return nil, fmt.Errorf("query curriculum units: %w", err)
	}
	return units, nil
}

func (r *DashboardRepository) activities(ctx context.Context, teacherID string) ([]models.ActivityRecord, error) {
	defer r.observe("dashboard_activities", time.Now())
	const query = `SELECT to_char(occurred_at, 'YYYY-MM-DD HH24:MI') AS occurred_at, description
		FROM authoring_activities WHERE teacher_id = $1 ORDER BY occurred_at DESC LIMIT $2`
	activities := []models.ActivityRecord{}
	if err := r.db.SelectContext(ctx, &activities, query, teacherID, r.activityLimit); err != nil {
		return nil, fmt.Errorf("query authoring activities: %w", err)
	}
	return activities, nil
}

// timeSlots buckets activity by hour of day only.
func (r *DashboardRepository) timeSlots(ctx context.Context, teacherID string) ([]models.TimeSlotCount, error) {
	defer r.observe("dashboard_time_slots", time.Now())
	const query = `SELECT (EXTRACT(HOUR FROM occurred_at)::int / 6) AS bucket, COUNT(*) AS count
		FROM authoring_activities WHERE teacher_id = $1 GROUP BY bucket`
	var rows []struct {
		Bucket int `db:"bucket"`
		Count  int `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, teacherID); err != nil {
		return nil, fmt.Errorf("query time slots: %w", err)
	}
	slots := emptyTimeSlots()
	for _, row := range rows {
		if row.Bucket < 0 || row.Bucket >= len(slots) {
			continue
		}
		slots[row.Bucket].Count = row.Count
	}
	return slots, nil
}

// dayTotals splits activity by day of week; it never looks at time slots.
func (r *DashboardRepository) dayTotals(ctx context.Context, teacherID string) (models.DayTotals, error) {
	defer r.observe("dashboard_day_totals", time.Now())
	const query = `SELECT
		COALESCE(SUM(CASE WHEN EXTRACT(ISODOW FROM occurred_at) < 6 THEN 1 ELSE 0 END), 0) AS weekday,
		COALESCE(SUM(CASE WHEN EXTRACT(ISODOW FROM occurred_at) >= 6 THEN 1 ELSE 0 END), 0) AS weekend
		FROM authoring_activities WHERE teacher_id = $1`
	var totals models.DayTotals
	if err := r.db.GetContext(ctx, &totals, query, teacherID); err != nil {
		return models.DayTotals{}, fmt.Errorf("query day totals: %w", err)
	}
	return totals, nil
}

func (r *DashboardRepository) monthlySeries(ctx context.Context, teacherID string) (models.MonthlySeries, error) {
	defer r.observe("dashboard_monthly", time.Now())
	now := r.now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(monthlySeriesMonths - 1), 0)

	const query = `SELECT date_trunc('month', created_at) AS month, COUNT(*) AS count
		FROM assessments WHERE teacher_id = $1 AND created_at >= $2 GROUP BY 1 ORDER BY 1`
	var rows []struct {
		Month time.Time `db:"month"`
		Count int       `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, teacherID, start); err != nil {
		return models.MonthlySeries{}, fmt.Errorf("query monthly series: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Month.UTC().Format("2006-01")] = row.Count
	}
	series := models.MonthlySeries{
		Label:  monthlySeriesLabel,
		Labels: make([]string, 0, monthlySeriesMonths),
		Series: make([]int, 0, monthlySeriesMonths),
	}
	for i := 0; i < monthlySeriesMonths; i++ {
		month := start.AddDate(0, i, 0)
		series.Labels = append(series.Labels, fmt.Sprintf("%d월", int(month.Month())))
		series.Series = append(series.Series, counts[month.Format("2006-01")])
	}
	return series, nil
}

func (r *DashboardRepository) observe(label string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.ObserveDBQuery(label, time.Since(start))
}
