package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	cachememory "taskapp/internal/adapter/cache/memory"
	cacheredis "taskapp/internal/adapter/cache/redis"
	"taskapp/internal/adapter/http/routes"
	"taskapp/internal/core/port"
	coretelemetry "taskapp/internal/core/telemetry"
	"taskapp/pkg/config"
	"taskapp/pkg/logging"
	"taskapp/pkg/telemetry"
)

func StartServer(ctx context.Context, metrics *telemetry.AppMetrics, logger *logging.Logger) {
	StartServerWithConfig(ctx, metrics, logger, config.GetDefaultConfig())
}

func StartServerWithConfig(ctx context.Context, metrics *telemetry.AppMetrics, logger *logging.Logger, cfg *config.AppConfig) {
	cache := buildCache(cfg)
	defer cache.Close()

	probe := coretelemetry.NewOTELProbe(slog.Default())
	container := NewContainer(logger, probe)

	router := routes.SetupRouterWithConfig(routes.HandlersConfig{
		UserHandler: container.UserHandler,
		TaskHandler: container.TaskHandler,
	}, metrics, logger, cache, cfg)

	slog.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"cache_backend", cfg.CacheBackend,
		"rate_limit_enabled", cfg.RateLimitEnabled,
		"https_enforced", cfg.EnforceHTTPS)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed to start", "error", err)
	}
}

func buildCache(cfg *config.AppConfig) port.CacheRepository {
	if cfg.CacheBackend == "redis" {
		cache, err := cacheredis.NewCacheRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err == nil {
			return cache
		}

		slog.Warn("Redis unavailable, falling back to in-memory cache", "error", err)
	}

	return cachememory.NewCacheRepository()
}
