package cors

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	allowHeaders  = "Content-Type, X-Requested-With, X-Request-ID"
	allowMethods  = "GET, PUT, OPTIONS"
	exposeHeaders = "Content-Disposition, X-Request-ID"
)

type matcher struct {
	exact    map[string]struct{}
	suffixes []string
}

// New returns a CORS middleware for the dashboard client. An empty list allows every
// origin; entries such as "https://*.school.kr" match any subdomain.
func New(allowedOrigins []string) gin.HandlerFunc {
	m := newMatcher(allowedOrigins)
	allowAll := len(allowedOrigins) == 0

	return func(c *gin.Context) {
		header := c.Writer.Header()
		origin := c.GetHeader("Origin")
		switch {
		case origin != "" && (allowAll || m.match(origin)):
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
		case origin == "" && allowAll:
			header.Set("Access-Control-Allow-Origin", "*")
		}

		header.Set("Vary", "Origin")
		header.Set("Access-Control-Allow-Headers", allowHeaders)
		header.Set("Access-Control-Allow-Methods", allowMethods)
		header.Set("Access-Control-Expose-Headers", exposeHeaders)
		header.Set("Access-Control-Max-Age", "600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func newMatcher(origins []string) matcher {
	m := matcher{exact: make(map[string]struct{}, len(origins))}
	for _, origin := range origins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if scheme, host, ok := strings.Cut(origin, "://*."); ok {
			m.suffixes = append(m.suffixes, scheme+"://|."+host)
			continue
		}
		m.exact[origin] = struct{}{}
	}
	return m
}

func (m matcher) match(origin string) bool {
	origin = strings.TrimRight(origin, "/")
	if _, ok := m.exact[origin]; ok {
		return true
	}
	for _, suffix := range m.suffixes {
		scheme, host, _ := strings.Cut(suffix, "|")
		if strings.HasPrefix(origin, scheme) && strings.HasSuffix(origin, host) {
			return true
		}
	}
	return false
}
