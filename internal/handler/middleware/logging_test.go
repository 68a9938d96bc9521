//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parkhub/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturedLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func performLoggedRequest(t *testing.T, logger *slog.Logger, handlers ...gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.GET("/ping", handlers...)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("completed line carries the authenticated identity", func(t *testing.T) {
		logger, buf := newCapturedLogger()

		// Claims appear mid-request, the way the auth middleware sets them.
		setClaims := func(c *gin.Context) {
			c.Set("jwt_claims", map[string]any{
				"client_id": "9af3a8ff-5b44-4f6e-9d5a-1a2b3c4d5e6f",
				"role":      "client",
			})
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		}

		w := performLoggedRequest(t, logger, setClaims)
		require.Equal(t, http.StatusOK, w.Code)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)

		started, completed := lines[0], lines[1]
		assert.Contains(t, started, "Request started")
		assert.Contains(t, completed, "Request completed")
		assert.Contains(t, completed, "client_id=9af3a8ff-5b44-4f6e-9d5a-1a2b3c4d5e6f")
		assert.Contains(t, completed, "role=client")
		assert.Contains(t, completed, "status_code=200")
		assert.Contains(t, completed, "request_id=")
	})

	t.Run("anonymous request logs without identity attributes", func(t *testing.T) {
		logger, buf := newCapturedLogger()

		w := performLoggedRequest(t, logger, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		require.Equal(t, http.StatusOK, w.Code)

		assert.NotContains(t, buf.String(), "client_id=")
		assert.NotContains(t, buf.String(), "role=")
	})

	t.Run("server errors are logged at error level", func(t *testing.T) {
		logger, buf := newCapturedLogger()

		w := performLoggedRequest(t, logger, func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
		})
		require.Equal(t, http.StatusInternalServerError, w.Code)

		assert.Contains(t, buf.String(), "level=ERROR")
	})
}
