package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/aidt-dashboard-api/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:           config.EnvDevelopment,
		APIPrefix:     "/api/v1",
		Dashboard:     config.DashboardConfig{Enabled: true, CacheTTL: time.Minute, DataSource: config.DataSourceSample, Recommender: "frequency"},
		Notifications: config.NotificationsConfig{Enabled: true, DefaultTime: "14:00"},
		Exports:       config.ExportsConfig{Enabled: true},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	deps, cleanup, err := buildDependencies(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return newRouter(cfg, zap.NewNop(), deps)
}

func TestRouterDashboardEndToEnd(t *testing.T) {
	router := newTestRouter(t, testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/teachers/teacher-1/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			TeacherName        string   `json:"teacherName"`
			PeakSlotLabels     []string `json:"peakSlotLabels"`
			WeekdayCount       int      `json:"weekdayCount"`
			WeekendCount       int      `json:"weekendCount"`
			RecommendedActions []struct {
				AccentColor string `json:"accentColor"`
			} `json:"recommendedActions"`
			Activities []struct {
				Content struct {
					Text string `json:"text"`
				} `json:"content"`
			} `json:"activities"`
		} `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.TeacherName)
	assert.Equal(t, []string{"오후 (12-18)"}, envelope.Data.PeakSlotLabels)
	assert.Equal(t, 58, envelope.Data.WeekdayCount)
	assert.Equal(t, 12, envelope.Data.WeekendCount)
	assert.LessOrEqual(t, len(envelope.Data.RecommendedActions), 3)
	for _, activity := range envelope.Data.Activities {
		assert.NotContains(t, activity.Content.Text, "<")
	}
	assert.Equal(t, false, envelope.Meta["cache_hit"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterActivitiesAndExport(t *testing.T) {
	router := newTestRouter(t, testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/teachers/teacher-1/activities?page=1&pageSize=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pagination"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/teachers/teacher-1/dashboard/export?table=units&format=csv", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv"))
	assert.Contains(t, rec.Body.String(), "단원")
}

func TestRouterNotificationTime(t *testing.T) {
	router := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodPut, "/api/v1/teachers/teacher-1/notification-time", bytes.NewBufferString(`{"notifyAt":"16:30"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/teachers/teacher-1/notification-time", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notifyAt":"16:30"`)
}

func TestRouterFeatureFlags(t *testing.T) {
	cfg := testConfig()
	cfg.Exports.Enabled = false
	cfg.Notifications.Enabled = false
	router := newTestRouter(t, cfg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/teachers/teacher-1/dashboard/export?table=units", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/teachers/teacher-1/notification-time", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterOperationalEndpoints(t *testing.T) {
	router := newTestRouter(t, testConfig())

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestReadyHandlerReportsFailingProbe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ready", readyHandler([]readinessProbe{
		{name: "postgres", check: func(context.Context) error { return nil }},
		{name: "redis", check: func(context.Context) error { return errors.New("connection refused") }},
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redis":"connection refused"`)
	assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
}
