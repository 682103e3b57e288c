package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "PGSQL_URL", "RATES_POLL_INTERVAL", "SEED_AMOUNT", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 5*time.Second, cfg.RatesPollInterval)
	assert.Equal(t, 5*time.Second, cfg.RatesFetchTimeout)
	assert.Equal(t, "EUR", cfg.RatesBaseCurrency)
	assert.Equal(t, "EUR", cfg.SeedCurrency)
	assert.Equal(t, 100.0, cfg.SeedAmount)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATES_POLL_INTERVAL", "250ms")
	t.Setenv("SEED_CURRENCY", "aed")
	t.Setenv("SEED_AMOUNT", "42.5")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.RatesPollInterval)
	assert.Equal(t, "AED", cfg.SeedCurrency)
	assert.Equal(t, 42.5, cfg.SeedAmount)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"RATES_POLL_INTERVAL": "soon",
		"RATES_CACHE_TTL":     "-1s",
		"SEED_AMOUNT":         "0",
		"LOG_LEVEL":           "chatty",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
