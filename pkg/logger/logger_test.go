package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/aidt-dashboard-api/pkg/config"
	"github.com/noah-isme/aidt-dashboard-api/pkg/middleware/requestid"
)

func TestNewHonoursLevel(t *testing.T) {
	l, err := New(&config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "warn", Format: "json"}})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestGinMiddlewareLogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	router := gin.New()
	router.Use(requestid.Middleware(), GinMiddleware(zap.New(core)))
	router.GET("/teachers/:teacherId/dashboard", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/teachers/teacher-1/dashboard", nil)
	req.Header.Set("X-Request-ID", "req-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "teacher-1", fields["teacher_id"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "/teachers/:teacherId/dashboard", fields["route"])
}
