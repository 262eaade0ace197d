package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(RequestLogger(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) {
		LoggerFrom(c).Info("inside handler")
		c.Status(http.StatusOK)
	})
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	t.Run("Generates an id and logs the access line", func(t *testing.T) {
		logs.TakeAll()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ok", nil)
		router.ServeHTTP(w, req)

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)

		entries := logs.TakeAll()
		require.Len(t, entries, 2)
		assert.Equal(t, "inside handler", entries[0].Message)
		assert.Equal(t, id, entries[0].ContextMap()["request_id"])
		assert.Equal(t, "Request handled", entries[1].Message)
		assert.EqualValues(t, http.StatusOK, entries[1].ContextMap()["status"])
	})

	t.Run("Keeps a valid client id", func(t *testing.T) {
		logs.TakeAll()
		id := uuid.NewString()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ok", nil)
		req.Header.Set(RequestIDHeader, id)
		router.ServeHTTP(w, req)

		assert.Equal(t, id, w.Header().Get(RequestIDHeader))
	})

	t.Run("Client errors are logged as warnings", func(t *testing.T) {
		logs.TakeAll()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/missing", nil)
		router.ServeHTTP(w, req)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})
}

func TestLoggerFrom_Fallback(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, LoggerFrom(c))
}
