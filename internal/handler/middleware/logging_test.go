//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"loyalty-wallet/internal/handler/middleware"
	"loyalty-wallet/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newLoggedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/v1/passes/:passTypeIdentifier/:serialNumber", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	r := newLoggedRouter()

	t.Run("caller id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/passes/pass.com.example.loyalty/COFFEEu1", nil)
		req.Header.Set("X-Request-ID", "scan-42")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "scan-42", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "scan-42", rec.Body.String())
	})

	t.Run("oversized id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/passes/pass.com.example.loyalty/COFFEEu1", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("a", 100))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		_, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
	})

	t.Run("health checks are not tagged", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-Request-ID"))
	})
}
