package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

// AppConfig general application configurations
type AppConfig struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	// Rate Limiting
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitConfigs map[string]RateLimitConfig

	// Response Cache
	CacheEnabled bool   `env:"CACHE_ENABLED" envDefault:"true"`
	CacheBackend string `env:"CACHE_BACKEND" envDefault:"memory"`
	CacheConfigs map[string]ResponseCacheConfig

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// HTTPS Enforcement
	EnforceHTTPS bool `env:"ENFORCE_HTTPS" envDefault:"false"`

	// Telemetry
	OTLPEndpoint string `env:"OTLP_ENDPOINT" envDefault:"localhost:4317"`
	MetricsPort  string `env:"METRICS_PORT" envDefault:"9091"`
}

// RateLimitConfig configuration for rate limiting
type RateLimitConfig struct {
	Requests int
	Window   time.Duration // Janela de tempo
}

// ResponseCacheConfig configuration for response cache per route
type ResponseCacheConfig struct {
	TTL     time.Duration
	Enabled bool
}

// Load parses the environment on top of the default route tables.
func Load() (*AppConfig, error) {
	cfg, err := env.ParseAs[AppConfig]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	cfg.RateLimitConfigs = defaultRateLimits()
	cfg.CacheConfigs = defaultCacheConfigs()

	return &cfg, nil
}

// GetDefaultConfig returns default configuration
func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		Port:             "8080",
		Environment:      "development",
		RateLimitEnabled: true,
		RateLimitConfigs: defaultRateLimits(),
		CacheEnabled:     true,
		CacheBackend:     "memory",
		CacheConfigs:     defaultCacheConfigs(),
		EnforceHTTPS:     false,
		OTLPEndpoint:     "localhost:4317",
		MetricsPort:      "9091",
	}
}

func defaultRateLimits() map[string]RateLimitConfig {
	return map[string]RateLimitConfig{
		"/users": {
			Requests: 30,
			Window:   time.Minute,
		},
		"/tasks": {
			Requests: 100,
			Window:   time.Minute,
		},
		"default": {
			Requests: 60,
			Window:   time.Minute,
		},
	}
}

func defaultCacheConfigs() map[string]ResponseCacheConfig {
	return map[string]ResponseCacheConfig{
		"/tasks": {
			TTL:     3 * time.Second,
			Enabled: true,
		},
		"/users": {
			TTL:     3 * time.Second,
			Enabled: true,
		},
		"default": {
			TTL:     time.Second,
			Enabled: false,
		},
	}
}
