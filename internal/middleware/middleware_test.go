package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amaumene/streamy/internal/metrics"
	"github.com/amaumene/streamy/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(middlewares ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middlewares...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "request_id": GetRequestID(c)})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestGzip(t *testing.T) {
	r := newEngine(Gzip())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	reader, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"status":"success"`)
}

func TestGzipSkippedWithoutAcceptEncoding(t *testing.T) {
	r := newEngine(Gzip())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Contains(t, w.Body.String(), `"status":"success"`)
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://example.org")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	preflight.Header.Set("Origin", "https://example.org")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, preflight)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Contains(t, w.Body.String(), generated)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := newEngine(RequestID(), Recovery(logger.Nop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Internal server error"}`, w.Body.String())
}

func TestRecoveryWithGzip(t *testing.T) {
	tests := []struct {
		name        string
		middlewares []gin.HandlerFunc
		compressed  bool
	}{
		{"gzip outside recovery", []gin.HandlerFunc{Gzip(), Recovery(logger.Nop())}, true},
		{"gzip inside recovery", []gin.HandlerFunc{Recovery(logger.Nop()), Gzip()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(tt.middlewares...)

			req := httptest.NewRequest(http.MethodGet, "/panic", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusInternalServerError, w.Code)

			body := w.Body.Bytes()
			if tt.compressed {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
				reader, err := gzip.NewReader(w.Body)
				require.NoError(t, err)
				body, err = io.ReadAll(reader)
				require.NoError(t, err)
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
			}
			assert.JSONEq(t, `{"status":"error","message":"Internal server error"}`, string(body))
		})
	}
}

func TestMetrics(t *testing.T) {
	m := metrics.NewManager()
	r := newEngine(Metrics(m))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	body := scrape(t, m)
	assert.Contains(t, body, `streamy_http_requests_total{route="/ping",status="200"} 1`)
	assert.Contains(t, body, `streamy_http_requests_total{route="unmatched",status="404"} 1`)
}

func TestLoggerPassesThrough(t *testing.T) {
	r := newEngine(RequestID(), Logger(logger.Nop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func scrape(t *testing.T, m *metrics.Manager) string {
	t.Helper()
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}
