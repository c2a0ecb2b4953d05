package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"

	cachememory "taskapp/internal/adapter/cache/memory"
	"taskapp/pkg/config"
	"taskapp/pkg/logging"
	"taskapp/pkg/telemetry"
)

func newTestResponseCache(configs map[string]config.ResponseCacheConfig) *ResponseCache {
	logger := logging.NewNopLogger()
	metrics := telemetry.NewAppMetrics(prometheus.NewRegistry())

	return NewResponseCache(cachememory.NewCacheRepository(), logger, metrics, configs)
}

func cachedConfigs() map[string]config.ResponseCacheConfig {
	return map[string]config.ResponseCacheConfig{
		"/tasks":  {TTL: time.Minute, Enabled: true},
		"default": {TTL: time.Second, Enabled: false},
	}
}

func TestCacheMiddleware_MissThenHit(t *testing.T) {
	RegisterTestingT(t)

	rc := newTestResponseCache(cachedConfigs())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rc.CacheMiddleware())

	callCount := 0
	router.GET("/tasks", func(c *gin.Context) {
		callCount++
		c.JSON(200, gin.H{"count": callCount})
	})

	first := httptest.NewRecorder()
	req1, _ := http.NewRequest("GET", "/tasks", nil)
	router.ServeHTTP(first, req1)

	Expect(first.Code).To(Equal(200))
	Expect(first.Header().Get("X-Cache")).To(Equal("MISS"))
	Expect(callCount).To(Equal(1))

	second := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/tasks", nil)
	router.ServeHTTP(second, req2)

	Expect(second.Code).To(Equal(200))
	Expect(second.Header().Get("X-Cache")).To(Equal("HIT"))
	Expect(second.Body.String()).To(Equal(first.Body.String()))
	Expect(callCount).To(Equal(1))
}

func TestCacheMiddleware_DisabledRouteNotCached(t *testing.T) {
	RegisterTestingT(t)

	rc := newTestResponseCache(cachedConfigs())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rc.CacheMiddleware())

	callCount := 0
	router.GET("/health", func(c *gin.Context) {
		callCount++
		c.JSON(200, gin.H{"count": callCount})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(200))
		Expect(w.Header().Get("X-Cache")).To(BeEmpty())
	}

	Expect(callCount).To(Equal(2))
}

func TestCacheMiddleware_WriteInvalidatesCollection(t *testing.T) {
	RegisterTestingT(t)

	rc := newTestResponseCache(cachedConfigs())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rc.CacheMiddleware())

	callCount := 0
	router.GET("/tasks", func(c *gin.Context) {
		callCount++
		c.JSON(200, gin.H{"count": callCount})
	})
	router.POST("/tasks", func(c *gin.Context) {
		c.JSON(201, gin.H{"created": true})
	})

	get := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/tasks", nil)
		router.ServeHTTP(w, req)
		return w
	}

	Expect(get().Header().Get("X-Cache")).To(Equal("MISS"))
	Expect(get().Header().Get("X-Cache")).To(Equal("HIT"))

	post := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tasks", nil)
	router.ServeHTTP(post, req)
	Expect(post.Code).To(Equal(201))

	Expect(get().Header().Get("X-Cache")).To(Equal("MISS"))
	Expect(callCount).To(Equal(2))
}

func TestCacheMiddleware_FailedWriteKeepsCache(t *testing.T) {
	RegisterTestingT(t)

	rc := newTestResponseCache(cachedConfigs())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rc.CacheMiddleware())

	callCount := 0
	router.GET("/tasks", func(c *gin.Context) {
		callCount++
		c.JSON(200, gin.H{"count": callCount})
	})
	router.POST("/tasks", func(c *gin.Context) {
		c.JSON(400, gin.H{"error": "bad"})
	})

	get := func() string {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/tasks", nil)
		router.ServeHTTP(w, req)
		return w.Header().Get("X-Cache")
	}

	Expect(get()).To(Equal("MISS"))

	post := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tasks", nil)
	router.ServeHTTP(post, req)
	Expect(post.Code).To(Equal(400))

	Expect(get()).To(Equal("HIT"))
	Expect(callCount).To(Equal(1))
}

func TestCacheMiddleware_QueryStringsAreSeparateEntries(t *testing.T) {
	RegisterTestingT(t)

	rc := newTestResponseCache(cachedConfigs())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rc.CacheMiddleware())

	router.GET("/tasks", func(c *gin.Context) {
		c.JSON(200, gin.H{"userId": c.Query("userId")})
	})

	first := httptest.NewRecorder()
	req1, _ := http.NewRequest("GET", "/tasks?userId=1", nil)
	router.ServeHTTP(first, req1)
	Expect(first.Header().Get("X-Cache")).To(Equal("MISS"))

	other := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/tasks?userId=2", nil)
	router.ServeHTTP(other, req2)
	Expect(other.Header().Get("X-Cache")).To(Equal("MISS"))
	Expect(other.Body.String()).ToNot(Equal(first.Body.String()))
}

func TestCacheMiddleware_ErrorResponsesNotCached(t *testing.T) {
	RegisterTestingT(t)

	rc := newTestResponseCache(cachedConfigs())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(rc.CacheMiddleware())

	callCount := 0
	router.GET("/tasks", func(c *gin.Context) {
		callCount++
		c.JSON(500, gin.H{"error": "boom"})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/tasks", nil)
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(500))
		Expect(w.Header().Get("X-Cache")).ToNot(Equal("HIT"))
	}

	Expect(callCount).To(Equal(2))
}
