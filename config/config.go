package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string // "local" or "production"
	FrontendURL string
	// Mail relay (Agency Nexus) configuration
	RelayBaseURL   string // Explicit base URL; replaces runtime hostname sniffing
	RelayClientID  string // Tenant id within the shared relay
	RelayTimeoutMS int
	// Fallback policy
	FallbackDelayMS   int
	PropagateFailures bool // Strict mode: surface relay failures instead of demo fallback
	// Redis Configuration (client-state store + rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitFormThreshold int
	RateLimitGlobalLimit   int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         strings.ToLower(getEnv("APP_ENV", "production")),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		// Strip a trailing /submit so the client cannot end up with a double path
		RelayBaseURL:   strings.TrimSuffix(strings.TrimRight(getEnv("RELAY_BASE_URL", ""), "/"), "/submit"),
		RelayClientID:  getEnv("RELAY_CLIENT_ID", "bb_schoonmaak"),
		RelayTimeoutMS: getEnvInt("RELAY_TIMEOUT_MS", 15000),
		// Fallback policy defaults mirror the live site: mask failures after 1.5s
		FallbackDelayMS:   getEnvInt("FALLBACK_DELAY_MS", 1500),
		PropagateFailures: getEnvBool("PROPAGATE_RELAY_FAILURES", false),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitFormThreshold: getEnvInt("RATE_LIMIT_FORM_THRESHOLD", 5),
		RateLimitGlobalLimit:   getEnvInt("RATE_LIMIT_GLOBAL_LIMIT", 100),
	}

	if cfg.RelayBaseURL == "" {
		log.Println("WARNING: RELAY_BASE_URL is missing. Submissions will resolve through the demo fallback.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Client state and rate limiting use in-memory fallback.")
	}

	return cfg, nil
}

// IsLocal reports whether the app runs in a developer context. Replaces the
// old hostname sniffing (localhost/127.0.0.1/webcontainer) with explicit config.
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
