package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aidt-dashboard-api/pkg/middleware/requestid"
)

const (
	responseMetaKey  = "response_meta"
	requestStartKey  = "request_start"
	cacheHitKey      = "cache_hit"
	requestIDKey     = "request_id"
	processingTimeMS = "processing_time_ms"
)

// WithResponseMeta seeds the per-request envelope meta with the request ID and start time.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requestStartKey, time.Now())
		meta := map[string]interface{}{}
		if id := requestid.Value(c); id != "" {
			meta[requestIDKey] = id
		}
		c.Set(responseMetaKey, meta)
		c.Next()
	}
}

// SetCacheHit records whether the payload was served from cache.
func SetCacheHit(c *gin.Context, hit bool) {
	ensureMeta(c)[cacheHitKey] = hit
}

// ExtractMeta returns the metadata map stored on the context, or nil.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	if meta, exists := c.Get(responseMetaKey); exists {
		if typed, ok := meta.(map[string]interface{}); ok {
			return typed
		}
	}
	return nil
}

// ResponseMeta finalises the meta for a response: it stamps processing time measured
// from the request start (or from fallback when the middleware did not run).
func ResponseMeta(c *gin.Context, fallback time.Time) map[string]interface{} {
	meta := ensureMeta(c)
	start := fallback
	if c != nil {
		if value, exists := c.Get(requestStartKey); exists {
			if t, ok := value.(time.Time); ok {
				start = t
			}
		}
	}
	meta[processingTimeMS] = time.Since(start).Milliseconds()
	return meta
}

func ensureMeta(c *gin.Context) map[string]interface{} {
	if meta := ExtractMeta(c); meta != nil {
		return meta
	}
	meta := make(map[string]interface{})
	if c != nil {
		c.Set(responseMetaKey, meta)
	}
	return meta
}
