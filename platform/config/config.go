// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// PredictConfig provides settings for the prediction endpoint client.
type PredictConfig interface {
	GetPredictBaseURL() string
	GetPredictTimeout() time.Duration
}

// WidgetConfig provides settings for the location query widget.
type WidgetConfig interface {
	GetDropStaleResponses() bool
}

// HTTPConfig provides settings for the web front-end.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	PredictBaseURL     string
	PredictTimeout     time.Duration
	DropStaleResponses bool
	HTTPAddr           string
	CORSAllowAll       bool
	CORSOrigins        []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// PredictConfig implementation
func (c *Config) GetPredictBaseURL() string        { return c.PredictBaseURL }
func (c *Config) GetPredictTimeout() time.Duration { return c.PredictTimeout }

// WidgetConfig implementation
func (c *Config) GetDropStaleResponses() bool { return c.DropStaleResponses }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8080"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	timeout, err := time.ParseDuration(getEnv("PREDICT_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("PREDICT_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		PredictBaseURL:     strings.TrimRight(getEnv("PREDICT_BASE_URL", "http://127.0.0.1:5000"), "/"),
		PredictTimeout:     timeout,
		DropStaleResponses: !strings.EqualFold(getEnv("WIDGET_DROP_STALE", "true"), "false"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		RateLimitRPS:       mustFloat(getEnv("RATE_LIMIT_RPS", "5")),
		RateLimitBurst:     mustInt(getEnv("RATE_LIMIT_BURST", "10")),
	}

	if cfg.PredictTimeout < 0 {
		return nil, fmt.Errorf("PREDICT_TIMEOUT cannot be negative")
	}
	if err := validateBaseURL(cfg.PredictBaseURL); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return cfg, nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("PREDICT_BASE_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("PREDICT_BASE_URL must be an absolute http(s) URL, got %q", raw)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
