package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/comitanigiacomo/lifesync/docs"
	"github.com/comitanigiacomo/lifesync/internal/adapters/cache"
	"github.com/comitanigiacomo/lifesync/internal/adapters/handler/http/middleware"
)

type RouterDependencies struct {
	RoutineHandler    *RoutineHandler
	ReportHandler     *ReportHandler
	JournalHandler    *JournalHandler
	AttractionHandler *AttractionHandler
	ChatbotHandler    *ChatbotHandler
	StatsHandler      *StatsHandler

	Logger      *zap.Logger
	DefaultUser string

	// StoragePing reports whether the routine store is reachable.
	StoragePing func(ctx context.Context) error
	StorageName string

	Redis      *redis.Client
	RateLimit  int
	RateWindow time.Duration
	StartTime  time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	// Task names may contain "/", sent as %2F inside one path segment.
	router.UseRawPath = true
	router.UnescapePathValues = true
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger.Named("http")))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", middleware.UserIDHeader, middleware.RequestIDHeader}
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	router.Use(cors.New(corsCfg))

	if deps.Redis != nil && deps.RateLimit > 0 {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, deps.RateWindow, logger))
	}

	router.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()

		storageStatus := cache.StatusConnected
		if deps.StoragePing != nil {
			if err := deps.StoragePing(ctx); err != nil {
				middleware.LoggerFrom(c).Warn("Health check: storage unreachable", zap.Error(err))
				storageStatus = cache.StatusUnreachable
			}
		}

		redisStatus := cache.Status(ctx, deps.Redis)

		statusCode := http.StatusOK
		status := "ok"
		if storageStatus == cache.StatusUnreachable || redisStatus == cache.StatusUnreachable {
			statusCode = http.StatusServiceUnavailable
			status = "degraded"
		}

		c.JSON(statusCode, gin.H{
			"status":  status,
			"storage": gin.H{"backend": deps.StorageName, "status": storageStatus},
			"redis":   redisStatus,
			"uptime":  time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	apiV1.Use(middleware.UserMiddleware(deps.DefaultUser))
	{
		deps.RoutineHandler.RegisterRoutes(apiV1)
		deps.ReportHandler.RegisterRoutes(apiV1)
		deps.JournalHandler.RegisterRoutes(apiV1)
		deps.AttractionHandler.RegisterRoutes(apiV1)
		deps.ChatbotHandler.RegisterRoutes(apiV1)
		deps.StatsHandler.RegisterRoutes(apiV1)
	}

	return router
}
