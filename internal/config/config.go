package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	PostgresDSN string
	Port        string
	CacheTTL    time.Duration
	LiveWindow  time.Duration
	LogLevel    slog.Level
}

func FromEnv() Config {
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	return Config{
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		Port:        envOr("PORT", "8080"),
		CacheTTL:    secondsOr("CACHE_TTL_SECONDS", 60*time.Second),
		LiveWindow:  secondsOr("LIVE_WINDOW_SECONDS", 300*time.Second),
		LogLevel:    lvl,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func secondsOr(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
