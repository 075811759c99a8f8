package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode   string
	Port      string
	Backend   BackendConfig
	Session   SessionConfig
	Cookie    CookieConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Health    HealthConfig
}

// BackendConfig describes the student management REST backend
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds the session credential cookie settings
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
}

// CookieConfig holds cookie attributes shared by every cookie we write
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// RateLimitConfig holds per-IP request limits
type RateLimitConfig struct {
	PerMinute      int
	LoginPerMinute int
}

// RedisConfig is optional; an empty Addr keeps limiter state in memory
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// HealthConfig controls the background backend probe
type HealthConfig struct {
	Spec string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	backend, err := loadBackendConfig()
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppMode:   appMode,
		Port:      getEnv("PORT", "3001"),
		Backend:   backend,
		Session:   loadSessionConfig(),
		Cookie:    loadCookieConfig(appMode),
		RateLimit: loadRateLimitConfig(),
		Redis:     loadRedisConfig(),
		Health: HealthConfig{
			Spec: getEnv("HEALTH_CHECK_SPEC", "@every 30s"),
		},
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s, BACKEND: %s]", appMode, backend.BaseURL)
	return config, nil
}

func loadBackendConfig() (BackendConfig, error) {
	baseURL := strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:3000"), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return BackendConfig{}, fmt.Errorf("invalid BACKEND_URL: '%s' (must start with http:// or https://)", baseURL)
	}

	return BackendConfig{
		BaseURL: baseURL,
		Timeout: getDuration("BACKEND_TIMEOUT", 15*time.Second),
	}, nil
}

func loadSessionConfig() SessionConfig {
	return SessionConfig{
		CookieName: getEnv("SESSION_COOKIE_NAME", "token"),
		TTL:        getDuration("SESSION_TTL", 24*time.Hour),
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

func loadRateLimitConfig() RateLimitConfig {
	perMin, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_MIN", "300"))
	loginPerMin, _ := strconv.Atoi(getEnv("LOGIN_RATE_LIMIT_PER_MIN", "5"))

	return RateLimitConfig{
		PerMinute:      perMin,
		LoginPerMinute: loginPerMin,
	}
}

func loadRedisConfig() RedisConfig {
	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid duration for %s: %v, using %s", key, err, defaultValue)
		return defaultValue
	}
	return d
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:" + c.Port
	}
	return origins
}
