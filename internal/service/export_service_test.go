package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/aidt-dashboard-api/pkg/errors"
	"github.com/noah-isme/aidt-dashboard-api/pkg/export"
)

func newExportServiceForTest(t *testing.T) *ExportService {
	t.Helper()
	dashboard, _ := newDashboardServiceForTest(&fakeSource{snapshot: sampleSnapshot()}, nil)
	svc := NewExportService(dashboard, export.NewCSVExporter(false), nil, NewMetricsService(), nil)
	svc.now = func() time.Time { return time.Date(2024, 10, 25, 14, 30, 0, 0, time.UTC) }
	return svc
}

func TestExportServiceUnitsCSV(t *testing.T) {
	svc := newExportServiceForTest(t)

	result, err := svc.Export(context.Background(), "teacher-1", "units", "csv")
	require.NoError(t, err)
	assert.Equal(t, "dashboard_teacher-1_units_20241025_143000.csv", result.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", result.ContentType)

	lines := strings.Split(strings.TrimSpace(string(result.Payload)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "단원,상태,진단평가,형성평가,총괄평가,마지막 평가일", lines[0])
	assert.Equal(t, "1단원: 인공지능의 이해,완료,O,O,O,2024-09-15", lines[1])
	assert.Equal(t, "3단원: 딥러닝 기초,미배포,-,-,-,-", lines[2])
}

func TestExportServiceActivitiesUsesPlainText(t *testing.T) {
	svc := newExportServiceForTest(t)

	result, err := svc.Activities(context.Background(), "teacher-1", "")
	require.NoError(t, err)
	payload := string(result.Payload)
	assert.NotContains(t, payload, "<strong>")
	assert.Contains(t, payload, "2024-10-24 16:45,문항 5개 수정,문항 수정")
}

func TestExportServicePDF(t *testing.T) {
	svc := newExportServiceForTest(t)

	result, err := svc.Export(context.Background(), "teacher-1", "activities", "PDF")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasSuffix(result.Filename, ".pdf"))
	assert.True(t, bytes.HasPrefix(result.Payload, []byte("%PDF")))
}

func TestExportServiceRejectsUnknownOptions(t *testing.T) {
	svc := newExportServiceForTest(t)

	_, err := svc.Export(context.Background(), "teacher-1", "grades", "csv")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnsupported.Code, appErrors.FromError(err).Code)

	_, err = svc.Export(context.Background(), "teacher-1", "units", "xlsx")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

type brokenCSV struct{}

func (brokenCSV) Render(export.Dataset) ([]byte, error) {
	return nil, errors.New("disk full")
}

func TestExportServiceRenderFailure(t *testing.T) {
	dashboard, _ := newDashboardServiceForTest(&fakeSource{snapshot: sampleSnapshot()}, nil)
	svc := NewExportService(dashboard, brokenCSV{}, nil, nil, nil)

	_, err := svc.Units(context.Background(), "teacher-1", "csv")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErrors.FromError(err).Status)
}

func TestExportServicePropagatesDashboardErrors(t *testing.T) {
	svc := newExportServiceForTest(t)

	_, err := svc.Units(context.Background(), "", "csv")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
