//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"secured-access-demo/internal/handler/middleware"
	"secured-access-demo/internal/pkg/config"
	"secured-access-demo/internal/pkg/reqctx"
	"secured-access-demo/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects requests beyond the burst", func(t *testing.T) {
		r := newEngine()
		r.GET("/limited", middleware.RateLimit(config.RateLimit{Requests: 2, Interval: time.Hour}), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		for range 2 {
			rec := httptest.PerformRequest(t, r, http.MethodGet, "/limited", nil, nil)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		}
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/limited", nil, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
	})

	t.Run("disabled limit lets everything through", func(t *testing.T) {
		r := newEngine()
		r.GET("/open", middleware.RateLimit(config.RateLimit{Requests: 0, Interval: time.Minute}), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		for range 50 {
			rec := httptest.PerformRequest(t, r, http.MethodGet, "/open", nil, nil)
			require.Equal(t, http.StatusNoContent, rec.Code)
		}
	})
}

func TestLoggingMiddleware(t *testing.T) {
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	var seenInContext string
	r := newEngine()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		seenInContext = reqctx.RequestID(c.Request.Context())
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("reuses an incoming request id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, map[string]string{"X-Request-ID": "req-42"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-42", rec.Body.String())
		assert.Equal(t, "req-42", seenInContext)
		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "req-42"})
	})

	t.Run("generates a UUID when none is sent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, nil)

		id := rec.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, seenInContext)
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", middleware.ParseLevel("debug").String())
	assert.Equal(t, "WARN", middleware.ParseLevel("WARN").String())
	assert.Equal(t, "ERROR", middleware.ParseLevel("error").String())
	assert.Equal(t, "INFO", middleware.ParseLevel("unknown").String())
}

func TestCustomRecovery(t *testing.T) {
	r := newEngine()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.ErrorHandler())
	r.GET("/panic", func(_ *gin.Context) {
		panic("unexpected")
	})

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
