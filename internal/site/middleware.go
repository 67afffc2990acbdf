package site

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"

	// Client hint sent by browsers that were asked for it via Accept-CH.
	reducedMotionHint = "Sec-CH-Prefers-Reduced-Motion"
)

// requestContext tags each request with an ID and asks the browser for its
// motion preference on later requests.
func requestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Header("Accept-CH", reducedMotionHint)
		c.Header("Vary", reducedMotionHint)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// requestLog writes one line per page or API request to out, tagged with
// the request ID. Asset requests are skipped.
func requestLog(out io.Writer) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Output: out,
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("[PORTFOLIO] %s | %3d | %13v | %-7s %#v id=%v\n",
				param.TimeStamp.Format(time.RFC3339),
				param.StatusCode,
				param.Latency,
				param.Method,
				param.Path,
				param.Keys[requestIDKey],
			)
		},
		Skip: func(c *gin.Context) bool {
			return isAsset(c.Request.URL.Path)
		},
	})
}

func isAsset(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/images/") ||
		strings.HasPrefix(path, "/favicon")
}

// prefersReducedMotion reads the motion client hint. The motion query
// parameter overrides it so the setting can be linked to.
func prefersReducedMotion(c *gin.Context) bool {
	switch c.Query("motion") {
	case "reduce":
		return true
	case "full":
		return false
	}
	return strings.EqualFold(strings.TrimSpace(c.GetHeader(reducedMotionHint)), "reduce")
}

func isAPI(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}
