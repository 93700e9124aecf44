package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/aidt-dashboard-api/internal/service"
	"github.com/noah-isme/aidt-dashboard-api/pkg/middleware/requestid"
)

func TestResponseMetaCarriesRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var meta map[string]interface{}
	router := gin.New()
	router.Use(requestid.Middleware(), WithResponseMeta())
	router.GET("/dash", func(c *gin.Context) {
		SetCacheHit(c, true)
		meta = ResponseMeta(c, time.Now())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/dash", nil)
	req.Header.Set("X-Request-ID", "req-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, meta)
	assert.Equal(t, true, meta[cacheHitKey])
	assert.Equal(t, "req-42", meta[requestIDKey])
	assert.Contains(t, meta, processingTimeMS)
}

func TestResponseMetaWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, ExtractMeta(c))

	SetCacheHit(c, false)
	meta := ResponseMeta(c, time.Now().Add(-20*time.Millisecond))
	assert.Equal(t, false, meta[cacheHitKey])
	assert.GreaterOrEqual(t, meta[processingTimeMS].(int64), int64(20))
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	router := gin.New()
	router.Use(Metrics(metrics, "/health"))
	router.GET("/teachers/:teacherId/dashboard", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/teachers/t-1/dashboard", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/teachers/t-2/dashboard", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope/t-3", nil))

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/teachers/:teacherId/dashboard",status="200"} 2`)
	assert.Contains(t, body, `path="unmatched"`)
	assert.NotContains(t, body, `path="/health"`)
	assert.Equal(t, uint64(3), metrics.Snapshot().RequestsTotal)
}
