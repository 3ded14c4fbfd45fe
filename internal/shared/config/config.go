package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"career-predictor/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port            string        `yaml:"port"`
	Env             string        `yaml:"env"`
	CORSAllowOrigin []string      `yaml:"corsAllowOrigins"`
	DatabaseURL     string        `yaml:"databaseUrl"`
	RedisURL        string        `yaml:"redisUrl"`
	CacheTTL        time.Duration `yaml:"cacheTtl"`
	CacheMaxEntries int           `yaml:"cacheMaxEntries"`
	RateLimitRPS    float64       `yaml:"rateLimitRps"`
	RateLimitBurst  int           `yaml:"rateLimitBurst"`
	MaxUploadBytes  int64         `yaml:"maxUploadBytes"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Port:            "8080",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		CacheTTL:        15 * time.Minute,
		CacheMaxEntries: 1000,
		RateLimitRPS:    2,
		RateLimitBurst:  10,
		MaxUploadBytes:  5 << 20,
	}
}

// Load layers configuration: defaults, then the YAML file named by
// CONFIG_FILE, then environment variables.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			telemetry.Warn("config.file_ignored", map[string]any{"path": path, "err": err})
		}
	}
	applyEnv(&cfg)
	cfg.Env = normalizeEnv(cfg.Env)

	if cfg.Env == "production" && cfg.DatabaseURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"env": cfg.Env})
	}
	return cfg
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	if raw := os.Getenv("CORS_ALLOW_ORIGINS"); raw != "" {
		cfg.CORSAllowOrigin = splitAndTrim(raw)
	}
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.CacheTTL = getDuration("CACHE_TTL", cfg.CacheTTL)
	cfg.CacheMaxEntries = getInt("CACHE_MAX_ENTRIES", cfg.CacheMaxEntries)
	cfg.RateLimitRPS = getFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS)
	cfg.RateLimitBurst = getInt("RATE_LIMIT_BURST", cfg.RateLimitBurst)
	cfg.MaxUploadBytes = int64(getInt("MAX_UPLOAD_BYTES", int(cfg.MaxUploadBytes)))
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		telemetry.Warn("config.invalid_value", map[string]any{"key": key, "value": raw})
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		telemetry.Warn("config.invalid_value", map[string]any{"key": key, "value": raw})
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		telemetry.Warn("config.invalid_value", map[string]any{"key": key, "value": raw})
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "test":
		return "test"
	default:
		return "dev"
	}
}
