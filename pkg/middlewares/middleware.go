package middlewares

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"taskapp/internal/core/port"
	"taskapp/pkg/config"
	"taskapp/pkg/logging"
	"taskapp/pkg/telemetry"
)

func MetricsMiddleware(metrics *telemetry.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.IncrementActiveConnections(c.Request.Context())
		defer metrics.DecrementActiveConnections(c.Request.Context())

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		metrics.RecordRequest(
			c.Request.Context(),
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
			duration,
		)
	}
}

// SetupGinMiddleware wires the ambient middleware stack: tracing,
// logging, metrics, rate limiting, response cache and HTTPS
// enforcement, driven by config.
func SetupGinMiddleware(router *gin.Engine, serviceName string, metrics *telemetry.AppMetrics, logger *logging.Logger, cache port.CacheRepository, cfg *config.AppConfig) {
	router.Use(otelgin.Middleware(serviceName))
	router.Use(RequestContextMiddleware())
	router.Use(LoggingMiddleware(logger))

	if metrics != nil {
		router.Use(MetricsMiddleware(metrics))
	}

	if cfg.EnforceHTTPS {
		router.Use(NewHTTPSEnforcer(logger, cfg.Environment).HTTPSMiddleware())
	}

	if cfg.RateLimitEnabled {
		router.Use(NewRateLimiter(logger, metrics, cfg.RateLimitConfigs).RateLimitMiddleware())
	}

	if cfg.CacheEnabled && cache != nil {
		router.Use(NewResponseCache(cache, logger, metrics, cfg.CacheConfigs).CacheMiddleware())
	}
}

// GetClientIP resolves the caller address, preferring proxy headers.
func GetClientIP(c *gin.Context) string {
	if ip := c.GetHeader("X-Forwarded-For"); ip != "" {
		ips := strings.Split(ip, ",")
		return strings.TrimSpace(ips[0])
	}

	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	ip := c.ClientIP()
	if ip == "" {
		return "unknown"
	}

	return ip
}
