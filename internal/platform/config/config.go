package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Empty selects the in-memory ledger.
	DatabaseURL   string
	RunMigrations bool

	RatesAPIURL       string
	RatesBaseCurrency string
	RatesPollInterval time.Duration
	RatesFetchTimeout time.Duration

	// Empty disables the shared rate cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RatesCacheTTL time.Duration

	SeedCurrency string
	SeedAmount   float64

	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("RATES_API_URL", "https://developers.paysera.com/tasks/api/currency-exchange-rates")
	v.SetDefault("RATES_BASE_CURRENCY", "EUR")
	v.SetDefault("RATES_POLL_INTERVAL", "5s")
	v.SetDefault("RATES_FETCH_TIMEOUT", "5s")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATES_CACHE_TTL", "4s")
	v.SetDefault("SEED_CURRENCY", "EUR")
	v.SetDefault("SEED_AMOUNT", 100.0)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		RunMigrations:     v.GetBool("RUN_MIGRATIONS"),
		RatesAPIURL:       v.GetString("RATES_API_URL"),
		RatesBaseCurrency: strings.ToUpper(strings.TrimSpace(v.GetString("RATES_BASE_CURRENCY"))),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RedisDB:           v.GetInt("REDIS_DB"),
		SeedCurrency:      strings.ToUpper(strings.TrimSpace(v.GetString("SEED_CURRENCY"))),
		SeedAmount:        v.GetFloat64("SEED_AMOUNT"),
		RateLimit:         v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, defaulting", slog.String("port", cfg.Port))
	}
	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL not set, using in-memory ledger")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	var err error
	if cfg.RatesPollInterval, err = positiveDuration(v, "RATES_POLL_INTERVAL"); err != nil {
		return nil, err
	}
	if cfg.RatesFetchTimeout, err = positiveDuration(v, "RATES_FETCH_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.RatesCacheTTL, err = positiveDuration(v, "RATES_CACHE_TTL"); err != nil {
		return nil, err
	}

	if cfg.RatesBaseCurrency == "" {
		return nil, fmt.Errorf("RATES_BASE_CURRENCY must not be empty")
	}
	if cfg.SeedCurrency == "" {
		return nil, fmt.Errorf("SEED_CURRENCY must not be empty")
	}
	if cfg.SeedAmount <= 0 {
		return nil, fmt.Errorf("SEED_AMOUNT must be positive, got %v", cfg.SeedAmount)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func positiveDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, d)
	}
	return d, nil
}
