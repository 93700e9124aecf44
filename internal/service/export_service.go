package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/aidt-dashboard-api/internal/dto"
	appErrors "github.com/noah-isme/aidt-dashboard-api/pkg/errors"
	"github.com/noah-isme/aidt-dashboard-api/pkg/export"
)

// Export tables and formats accepted by ExportService.
const (
	ExportTableUnits      = "units"
	ExportTableActivities = "activities"
	ExportFormatCSV       = "csv"
	ExportFormatPDF       = "pdf"
)

var (
	unitHeaders     = []string{"단원", "상태", "진단평가", "형성평가", "총괄평가", "마지막 평가일"}
	activityHeaders = []string{"시간", "내용", "바로가기"}
)

type dashboardReader interface {
	Teacher(ctx context.Context, teacherID string) (*dto.DashboardViewModel, bool, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult is a rendered dashboard table ready for download.
type ExportResult struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders dashboard tables from the assembled view-model.
type ExportService struct {
	dashboard dashboardReader
	csv       csvRenderer
	pdf       pdfRenderer
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService. Nil renderers fall back to the defaults.
func NewExportService(dashboard dashboardReader, csv csvRenderer, pdf pdfRenderer, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter(true)
	}
	if pdf == nil {
		pdf = export.NewPDFExporter("")
	}
	return &ExportService{
		dashboard: dashboard,
		csv:       csv,
		pdf:       pdf,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Export dispatches on table name.
func (s *ExportService) Export(ctx context.Context, teacherID, table, format string) (*ExportResult, error) {
	switch strings.ToLower(strings.TrimSpace(table)) {
	case ExportTableUnits:
		return s.Units(ctx, teacherID, format)
	case ExportTableActivities:
		return s.Activities(ctx, teacherID, format)
	default:
		return nil, appErrors.Clone(appErrors.ErrUnsupported, fmt.Sprintf("unsupported export table %q", table))
	}
}

// Units renders the curriculum unit table.
func (s *ExportService) Units(ctx context.Context, teacherID, format string) (*ExportResult, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return nil, err
	}
	vm, _, err := s.dashboard.Teacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	dataset := export.Dataset{Headers: unitHeaders, Rows: make([]map[string]string, 0, len(vm.Units))}
	for _, unit := range vm.Units {
		dataset.Rows = append(dataset.Rows, map[string]string{
			unitHeaders[0]: unit.Name,
			unitHeaders[1]: unit.StatusLabel,
			unitHeaders[2]: doneMark(unit.DiagnosticDone),
			unitHeaders[3]: doneMark(unit.FormativeDone),
			unitHeaders[4]: doneMark(unit.SummativeDone),
			unitHeaders[5]: unit.LastAssessmentDate,
		})
	}
	return s.render(teacherID, ExportTableUnits, format, dataset, "단원별 평가 현황")
}

// Activities renders the classified activity feed using markup-free text.
func (s *ExportService) Activities(ctx context.Context, teacherID, format string) (*ExportResult, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return nil, err
	}
	vm, _, err := s.dashboard.Teacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	dataset := export.Dataset{Headers: activityHeaders, Rows: make([]map[string]string, 0, len(vm.Activities))}
	for _, activity := range vm.Activities {
		dataset.Rows = append(dataset.Rows, map[string]string{
			activityHeaders[0]: activity.Timestamp,
			activityHeaders[1]: activity.Content.Text,
			activityHeaders[2]: activity.QuickLink.DisplayText,
		})
	}
	return s.render(teacherID, ExportTableActivities, format, dataset, "최근 활동")
}

func (s *ExportService) render(teacherID, table, format string, dataset export.Dataset, title string) (*ExportResult, error) {
	var (
		payload     []byte
		contentType string
		err         error
	)
	switch format {
	case ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv; charset=utf-8"
	case ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	}
	if err != nil {
		s.logger.Error("dashboard export failed", zap.String("teacher_id", teacherID), zap.String("table", table), zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.metrics.ObserveExport(table, format)
	return &ExportResult{
		Filename:    buildExportFilename(teacherID, table, format, s.now()),
		ContentType: contentType,
		Payload:     payload,
	}, nil
}

func normalizeFormat(format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return ExportFormatCSV, nil
	}
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return "", appErrors.Clone(appErrors.ErrUnsupported, fmt.Sprintf("unsupported export format %q", format))
	}
	return format, nil
}

func doneMark(done bool) string {
	if done {
		return "O"
	}
	return "-"
}

func buildExportFilename(teacherID, table, format string, at time.Time) string {
	return fmt.Sprintf("dashboard_%s_%s_%s.%s", sanitizeFilename(teacherID), table, at.UTC().Format("20060102_150405"), format)
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "na"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "\"", "")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}
