package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env             string
	HTTPPort        string
	StaticDir       string
	DevServerURL    string
	RedisAddr       string
	RateLimitPerMin int
	LogLevel        string
	LogPretty       bool
}

// Load returns application config populated from environment variables
// with sensible defaults. A .env file in the working directory is read
// first when present.
func Load() App {
	_ = godotenv.Load()
	return App{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPPort:        getEnv("PORT", "5000"),
		StaticDir:       getEnv("STATIC_DIR", "web"),
		DevServerURL:    getEnv("DEV_SERVER_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", 120),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogPretty:       boolEnv("LOG_PRETTY", true),
	}
}

// Production reports whether the app runs in production mode.
func (a App) Production() bool {
	return a.Env == "production" || a.Env == "prod"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if val == "1" || val == "true" || val == "TRUE" {
			return true
		}
		if val == "0" || val == "false" || val == "FALSE" {
			return false
		}
		log.Warn().Str("key", key).Bool("fallback", fallback).Msg("invalid bool env value")
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Warn().Str("key", key).Int("fallback", fallback).Msg("invalid int env value")
	}
	return fallback
}
