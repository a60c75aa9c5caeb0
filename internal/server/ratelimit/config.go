package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule represents the rate limit for endpoints matching a path prefix and
// method. A Limit of zero or less means unlimited.
type Rule struct {
	PathPrefix string
	Method     string
	Limit      int
	Window     time.Duration
	Burst      int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// DefaultConfig returns the built-in limits: generation endpoints are
// expensive and tightly limited, everything else falls under a lenient
// default, and health checks are unlimited.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Rules: []Rule{
			{PathPrefix: "/health", Method: "GET", Limit: 0},
			{PathPrefix: "/generate/batch", Method: "POST", Limit: 5, Window: time.Hour, Burst: 2},
			{PathPrefix: "/generate", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
			{PathPrefix: "/analyze", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		},
	}
}

// LoadConfig builds a configuration from environment variables, falling back
// to DefaultConfig values.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	cfg := DefaultConfig()
	cfg.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	return cfg
}

// match finds the first rule whose prefix and method cover the endpoint,
// falling back to the default limit.
func (c *Config) match(endpoint, method string) Rule {
	for _, rule := range c.Rules {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if strings.HasPrefix(endpoint, rule.PathPrefix) {
			return rule
		}
	}
	return Rule{Limit: c.DefaultLimit, Window: c.DefaultWindow, Burst: c.DefaultLimit}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
