package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/adapters/database/pgsql"
	"github.com/SscSPs/currency_exchanger/internal/adapters/memory"
	"github.com/SscSPs/currency_exchanger/internal/adapters/ratesource"
	portsrepo "github.com/SscSPs/currency_exchanger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchanger/internal/core/ports/services"
	"github.com/SscSPs/currency_exchanger/internal/core/services"
	"github.com/SscSPs/currency_exchanger/internal/handlers"
	"github.com/SscSPs/currency_exchanger/internal/middleware"
	"github.com/SscSPs/currency_exchanger/internal/platform/config"
	"github.com/SscSPs/currency_exchanger/internal/session"
	"github.com/SscSPs/currency_exchanger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Currency Exchanger API
// @version 1.0
// @description Converts between currencies on periodically refreshed rates and settles conversions against a local balance ledger.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rateSource, closeCache := newRateSource(ctx, cfg, logger)
	defer closeCache()

	repos, closeStore, err := newRepositories(ctx, cfg, rateSource, logger)
	if err != nil {
		logger.Error("Failed to initialize ledger store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	container := services.NewServiceContainer(repos)

	seeded, err := services.BootstrapLedger(ctx, repos.Ledger, cfg.SeedCurrency, cfg.SeedAmount)
	if err != nil {
		logger.Error("Failed to seed ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if seeded {
		logger.Info("Seeded empty ledger",
			slog.String("currency", cfg.SeedCurrency),
			slog.Float64("amount", cfg.SeedAmount))
	}

	sess := session.New(container.Exchange, container.ExchangeRate, cfg.SeedCurrency)
	go sess.Run(ctx)

	poller := services.NewRatePoller(container.ExchangeRate, cfg.RatesBaseCurrency, cfg.RatesPollInterval)
	poller.OnUpdate(sess.OnRatesUpdated)
	go poller.Run(ctx)

	router, err := newRouter(cfg, logger, container, sess)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

func newRateSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RateSource, func()) {
	var source portsrepo.RateSource = ratesource.NewHTTPRateSource(cfg.RatesAPIURL, cfg.RatesFetchTimeout)
	if cfg.RedisAddr == "" {
		return source, func() {}
	}

	cache := ratesource.NewRedisSnapshotCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, "exchanger:rates:")
	if err := cache.Ping(ctx); err != nil {
		// Fetching straight from upstream still works.
		logger.Warn("Redis unreachable, rate cache disabled", slog.String("error", err.Error()))
		_ = cache.Close()
		return source, func() {}
	}
	logger.Info("Rate cache enabled", slog.String("addr", cfg.RedisAddr), slog.Duration("ttl", cfg.RatesCacheTTL))
	return ratesource.NewCachedRateSource(source, cache, cfg.RatesCacheTTL), func() {
		if err := cache.Close(); err != nil {
			logger.Warn("Failed to close rate cache", slog.String("error", err.Error()))
		}
	}
}

func newRepositories(ctx context.Context, cfg *config.Config, rateSource portsrepo.RateSource, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("Using in-memory ledger")
		return portsrepo.RepositoryProvider{
			Ledger:     memory.NewLedgerStore(),
			RateSource: rateSource,
		}, func() {}, nil
	}

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")
	return pgsql.NewRepositoryProvider(dbPool, rateSource), func() { database.ClosePgxPool(dbPool) }, nil
}

func newRouter(cfg *config.Config, logger *slog.Logger, container *portssvc.ServiceContainer, sess *session.Session) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	lim, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limit)
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, middleware.RequestIDHeader)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsCfg),
		middleware.RateLimit(lim),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	handlers.RegisterRoutes(r, cfg, container, sess)
	return r, nil
}
