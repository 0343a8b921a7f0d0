package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultLimit = 300

// EndpointConfig sets the request budget for one endpoint. A Path
// ending in "/" matches by prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds limiter-wide settings.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Endpoints       []EndpointConfig
}

// LoadConfig builds the limiter configuration from environment
// variables, falling back to the built-in endpoint tiers.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", defaultLimit),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Endpoints:       DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint budgets. Analysis and
// rewriting may call out to remote inference, so they get the tightest
// limits; document writes sit in a middle tier and reads use the
// limiter default.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/analyze", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/rewrite", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},
		{Path: "/documents/", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
	}
}

// matchEndpoint resolves a request to its endpoint budget. The health
// check is always unlimited.
func matchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		ec := &configs[i]
		if ec.Path == path && ec.Method == method {
			return ec
		}
	}

	for i := range configs {
		ec := &configs[i]
		if ec.Method == method && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}

	return nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseIPList(value string) map[string]bool {
	list := make(map[string]bool)
	for _, ip := range strings.Split(value, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			list[ip] = true
		}
	}
	return list
}
