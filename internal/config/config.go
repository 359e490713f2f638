package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Session  SessionConfig
	Analyzer AnalyzerConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	FeedLogFilePath    string
	CorsAllowedOrigins string
	NatsURL            string // empty disables analytics publishing
	RedisURL           string // empty keeps the feed hub local to this instance
}

type SessionConfig struct {
	Secret     string
	TTL        time.Duration
	CookieName string
}

type AnalyzerConfig struct {
	TickInterval     time.Duration
	FeedLimit        int
	PatternCacheSize int
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

const devSessionSecret = "imagine-algorithm-dev-secret"

var ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set in production")

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

// Validate rejects settings that are only acceptable outside production.
func (c *Config) Validate() error {
	if c.IsProduction() && c.Session.Secret == "" {
		return ErrMissingSessionSecret
	}
	return nil
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			FeedLogFilePath:    getEnv("FEED_LOG_FILE_PATH", "logs/feed.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", ""),
			TTL:        getEnvAsDuration("SESSION_TTL", time.Hour),
			CookieName: getEnv("SESSION_COOKIE_NAME", "ia_session"),
		},
		Analyzer: AnalyzerConfig{
			TickInterval:     getEnvAsDuration("ANALYZER_TICK_INTERVAL", 100*time.Millisecond),
			FeedLimit:        getEnvAsInt("ANALYZER_FEED_LIMIT", 25),
			PatternCacheSize: getEnvAsInt("ANALYZER_PATTERN_CACHE_SIZE", 512),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "imagine-algorithm"),
		},
	}

	// Production has no fallback; Validate reports the missing secret.
	if cfg.Session.Secret == "" && !cfg.IsProduction() {
		cfg.Session.Secret = devSessionSecret
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}
