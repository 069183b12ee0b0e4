package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID injects an X-Request-ID header into the request and response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger logs each request with method, path, status, response size and
// latency. Health checks are skipped. SSE responses are tagged as streams:
// their latency is the stream lifetime, not handler think time.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/healthz" || path == "/readyz" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		requestID, _ := c.Get("request_id")
		tag := ""
		if strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "text/event-stream") {
			tag = " stream"
		}
		log.Printf("[%s] %s %s %d %dB %s%s",
			requestID,
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.Writer.Size(),
			latency,
			tag,
		)
	}
}

// Recovery recovers from panics, logs them with the request id, and returns
// the standard error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] panic recovered: %v", requestID, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"},
		})
	})
}
