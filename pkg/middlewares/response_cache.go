package middlewares

import (
	"bytes"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"taskapp/internal/core/port"
	"taskapp/pkg/config"
	"taskapp/pkg/logging"
	"taskapp/pkg/telemetry"
	"taskapp/pkg/tracing"
)

// ResponseCache caches GET responses behind the CacheRepository port so
// the memory and redis backends are interchangeable. Write methods on
// the same collection invalidate the cached entries by prefix.
type ResponseCache struct {
	store   port.CacheRepository
	config  map[string]config.ResponseCacheConfig
	logger  *logging.Logger
	metrics *telemetry.AppMetrics
}

// CachedResponse estrutura para armazenar resposta em cache
type CachedResponse struct {
	StatusCode int                 `json:"status_code"`
	Headers    map[string][]string `json:"headers"`
	Body       []byte              `json:"body"`
	Timestamp  time.Time           `json:"timestamp"`
}

func NewResponseCache(store port.CacheRepository, logger *logging.Logger, metrics *telemetry.AppMetrics, configs map[string]config.ResponseCacheConfig) *ResponseCache {
	if configs == nil {
		configs = config.GetDefaultConfig().CacheConfigs
	}

	return &ResponseCache{
		store:   store,
		config:  configs,
		logger:  logger,
		metrics: metrics,
	}
}

type responseWriter struct {
	gin.ResponseWriter
	body       *bytes.Buffer
	statusCode int
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// CacheMiddleware middleware para cache de respostas
func (rc *ResponseCache) CacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		if c.Request.Method != http.MethodGet {
			c.Next()

			// Mutations invalidate the collection's cached reads
			if c.Writer.Status() < 400 {
				_ = rc.store.DeleteByPrefix(c.Request.Context(), "cache:"+basePath(path))
			}
			return
		}

		cfg, exists := rc.config[basePath(path)]
		if !exists {
			cfg = rc.config["default"]
		}

		if !cfg.Enabled {
			c.Next()
			return
		}

		cacheKey := rc.generateCacheKey(c, path)

		if cached, ok := rc.lookup(c, cacheKey); ok {
			_, span := tracing.CreateChildSpan(c.Request.Context(), "cache.response.hit", []attribute.KeyValue{
				attribute.String("cache.key", cacheKey),
				attribute.String("cache.path", path),
			})
			span.End()

			if rc.metrics != nil {
				rc.metrics.RecordCacheHit(c.Request.Context(), path)
			}

			for key, values := range cached.Headers {
				for _, value := range values {
					c.Header(key, value)
				}
			}

			c.Header("X-Cache", "HIT")
			c.Header("X-Cache-Age", fmt.Sprintf("%.0f", time.Since(cached.Timestamp).Seconds()))

			c.Data(cached.StatusCode, "application/json", cached.Body)
			c.Abort()
			return
		}

		if rc.metrics != nil {
			rc.metrics.RecordCacheMiss(c.Request.Context(), path)
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		c.Writer = writer

		c.Next()

		if writer.statusCode >= 200 && writer.statusCode < 300 {
			cachedResp := CachedResponse{
				StatusCode: writer.statusCode,
				Headers:    writer.Header(),
				Body:       writer.body.Bytes(),
				Timestamp:  time.Now(),
			}

			data, err := json.Marshal(cachedResp)
			if err != nil {
				rc.logger.Logger.Error("Failed to serialize cached response", zap.Error(err))
				return
			}

			if err := rc.store.Set(c.Request.Context(), cacheKey, data, cfg.TTL); err != nil {
				rc.logger.Logger.Error("Failed to store cached response", zap.Error(err))
				return
			}

			c.Header("X-Cache", "MISS")
		}
	}
}

func (rc *ResponseCache) lookup(c *gin.Context, cacheKey string) (CachedResponse, bool) {
	var cached CachedResponse

	data, err := rc.store.Get(c.Request.Context(), cacheKey)
	if err != nil || data == nil {
		return cached, false
	}

	if err := json.Unmarshal(data, &cached); err != nil {
		return cached, false
	}

	return cached, true
}

// generateCacheKey generates unique cache key
func (rc *ResponseCache) generateCacheKey(c *gin.Context, path string) string {
	keyParts := []string{path}

	if c.Request.URL.RawQuery != "" {
		keyParts = append(keyParts, c.Request.URL.RawQuery)
	}

	keyParts = append(keyParts, fmt.Sprintf("ip_%s", GetClientIP(c)))

	keyString := strings.Join(keyParts, "|")
	hash := md5.Sum([]byte(keyString))

	return fmt.Sprintf("cache:%s:%x", basePath(path), hash)
}
