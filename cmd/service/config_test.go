package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("requires JWT_SECRET", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := loadConfigFromEnv()
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		cfg, err := loadConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "3008", cfg.Port)
		assert.Equal(t, "https://itunes.apple.com/search", cfg.SearchURL)
		assert.Equal(t, "https://itunes.apple.com/lookup", cfg.LookupURL)
		assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
		assert.Equal(t, time.Hour, cfg.AccessTTL)
		assert.Equal(t, 60, cfg.RateLimitRPM)
		assert.False(t, cfg.Production)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("UPSTREAM_TIMEOUT", "3s")
		t.Setenv("RATE_LIMIT_RPM", "5")
		t.Setenv("APP_ENV", "production")

		cfg, err := loadConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
		assert.Equal(t, 5, cfg.RateLimitRPM)
		assert.True(t, cfg.Production)
	})

	t.Run("bad int falls back to default", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("RATE_LIMIT_RPM", "not-a-number")

		cfg, err := loadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 60, cfg.RateLimitRPM)
	})
}
