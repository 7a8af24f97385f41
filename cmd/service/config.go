package main

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	JWTSecret       []byte
	AccessTTL       time.Duration
	SearchURL       string
	LookupURL       string
	UpstreamTimeout time.Duration
	RedisURL        string
	RateLimitRPM    int
	Production      bool
	CORSOrigin      string
	LogLevel        string
}

func loadConfigFromEnv() (Config, error) {
	cfg := Config{
		Port:            getenv("PORT", "3008"),
		JWTSecret:       []byte(getenv("JWT_SECRET", "")),
		AccessTTL:       mustParseDuration("ACCESS_TOKEN_TTL", "1h"),
		SearchURL:       getenv("ITUNES_SEARCH_URL", "https://itunes.apple.com/search"),
		LookupURL:       getenv("ITUNES_LOOKUP_URL", "https://itunes.apple.com/lookup"),
		UpstreamTimeout: mustParseDuration("UPSTREAM_TIMEOUT", "10s"),
		RedisURL:        getenv("REDIS_URL", "redis://redis:6379"),
		RateLimitRPM:    getenvInt("RATE_LIMIT_RPM", 60),
		Production:      getenv("APP_ENV", "development") == "production",
		CORSOrigin:      getenv("CORS_ALLOWED_ORIGIN", "*"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}

	if len(cfg.JWTSecret) == 0 {
		return Config{}, errors.New("media-search-service: JWT_SECRET is empty, cannot start without JWT validation")
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	raw := getenv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func mustParseDuration(envKey, def string) time.Duration {
	raw := getenv(envKey, def)
	dur, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("media-search-service: invalid %s: %v", envKey, err)
	}
	return dur
}
