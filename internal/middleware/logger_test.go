package middleware_test

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"brokerdoc/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestRequestID_EchoesProvidedHeader(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLogger_SkipsHealthEndpoints(t *testing.T) {
	buf := captureLog(t)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger())
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/templates", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil))

	assert.NotContains(t, buf.String(), "/healthz")
	assert.Contains(t, buf.String(), "/api/v1/templates")
}

func TestLogger_TagsEventStreams(t *testing.T) {
	buf := captureLog(t)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger())
	r.POST("/chat", func(c *gin.Context) {
		c.Header("Content-Type", "text/event-stream")
		c.String(http.StatusOK, "data: [DONE]\n\n")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat", nil))

	assert.Contains(t, buf.String(), "stream")
}

func TestRecovery_ReturnsErrorEnvelope(t *testing.T) {
	_ = captureLog(t)

	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestID())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t,
		`{"success":false,"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}`,
		w.Body.String())
}
