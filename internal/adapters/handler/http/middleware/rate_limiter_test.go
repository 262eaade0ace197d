package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/comitanigiacomo/lifesync/internal/adapters/cache"
	"github.com/comitanigiacomo/lifesync/internal/config"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	cfg, err := config.Load("../../../../../.env")
	require.NoError(t, err)

	host := cfg.RedisHost
	if host == "" {
		host = "localhost"
	}

	rdb, err := cache.NewRedisClient(context.Background(), cache.RedisConfig{
		Host:     host,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       1,
	})
	if err != nil {
		t.Skipf("Skipping integration test (Redis down): %v", err)
	}

	require.NoError(t, rdb.FlushDB(context.Background()).Err())
	return rdb
}

func limitedRouter(rdb *redis.Client, limit int, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimiterMiddleware(rdb, limit, time.Minute, logger))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "passed")
	})
	return router
}

func hit(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	if ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterMiddleware_Integration(t *testing.T) {
	rdb := setupTestRedis(t)
	defer rdb.Close()

	ctx := context.Background()

	t.Run("Success: Headers count down under the limit", func(t *testing.T) {
		require.NoError(t, rdb.FlushDB(ctx).Err())
		router := limitedRouter(rdb, 3, nil)

		for i := 1; i <= 3; i++ {
			w := hit(router, "10.0.0.1")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, strconv.Itoa(3-i), w.Header().Get("X-RateLimit-Remaining"))
		}

		ttl, err := rdb.TTL(ctx, rateLimitKeyPrefix+"10.0.0.1").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0), "window must expire")
	})

	t.Run("Fail: 429 over the limit, other clients unaffected", func(t *testing.T) {
		require.NoError(t, rdb.FlushDB(ctx).Err())
		router := limitedRouter(rdb, 2, nil)

		for i := 0; i < 2; i++ {
			require.Equal(t, http.StatusOK, hit(router, "10.0.0.2").Code)
		}

		w := hit(router, "10.0.0.2")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "too many requests")
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

		assert.Equal(t, http.StatusOK, hit(router, "10.0.0.3").Code)
	})

	t.Run("Success: Counter without expiry gets a window", func(t *testing.T) {
		require.NoError(t, rdb.FlushDB(ctx).Err())
		require.NoError(t, rdb.Set(ctx, rateLimitKeyPrefix+"10.0.0.4", 0, 0).Err())

		router := limitedRouter(rdb, 5, nil)
		assert.Equal(t, http.StatusOK, hit(router, "10.0.0.4").Code)

		ttl, err := rdb.TTL(ctx, rateLimitKeyPrefix+"10.0.0.4").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})
}

func TestRateLimiterMiddleware_FailOpen(t *testing.T) {
	badRdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer badRdb.Close()

	core, logs := observer.New(zapcore.WarnLevel)
	router := limitedRouter(badRdb, 5, zap.New(core))

	w := hit(router, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "passed", w.Body.String())
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, 1, logs.FilterMessage("Redis error, rate limiter skipped").Len())
}
