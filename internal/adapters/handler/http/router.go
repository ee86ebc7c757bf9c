package http

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/adapters/handler/http/middleware"
)

type RouterDependencies struct {
	DashboardHandler *DashboardHandler
	CheckinHandler   *CheckinHandler
	// Redis is nil when the daily cache lives in memory.
	Redis              *redis.Client
	RateLimitPerMinute int
	Log                *zap.Logger
	StartTime          time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Log))
	router.Use(middleware.Metrics())

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		statusCode := http.StatusOK
		cache := gin.H{"backend": "memory"}

		if deps.Redis != nil {
			redisStatus := "connected"
			if err := deps.Redis.Ping(c.Request.Context()).Err(); err != nil {
				redisStatus = "unreachable"
				statusCode = http.StatusServiceUnavailable
			}
			cache = gin.H{"backend": "redis", "redis": redisStatus}
		}

		status := "ok"
		if statusCode != http.StatusOK {
			status = "degraded"
		}

		c.JSON(statusCode, gin.H{
			"status":  status,
			"cache":   cache,
			"uptime":  time.Since(deps.StartTime).Round(time.Second).String(),
			"started": humanize.Time(deps.StartTime),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var reportGuards []gin.HandlerFunc
	if deps.Redis != nil && deps.RateLimitPerMinute > 0 {
		reportGuards = append(reportGuards,
			middleware.RateLimiter(deps.Redis, "reports", deps.RateLimitPerMinute, time.Minute, deps.Log))
	}

	apiV1 := router.Group("/api/v1")
	deps.DashboardHandler.RegisterRoutes(apiV1, reportGuards...)
	deps.CheckinHandler.RegisterRoutes(apiV1)

	return router
}
