package ratesource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchanger/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchanger/internal/middleware"
	"github.com/redis/go-redis/v9"
)

// SnapshotCache stores whole rate tables by base currency. Get returns (nil, nil) on a miss.
type SnapshotCache interface {
	Get(ctx context.Context, base string) (*domain.RateTable, error)
	Set(ctx context.Context, table *domain.RateTable, ttl time.Duration) error
}

// cachedTable is the serialized form of a RateTable.
type cachedTable struct {
	Base      string             `json:"base"`
	FetchedAt time.Time          `json:"fetchedAt"`
	Rates     map[string]float64 `json:"rates"`
}

// RedisSnapshotCache keeps rate tables in Redis so several instances share one upstream fetch.
type RedisSnapshotCache struct {
	client *redis.Client
	prefix string
}

var _ SnapshotCache = (*RedisSnapshotCache)(nil)

// NewRedisSnapshotCache creates a cache on a new client for addr.
func NewRedisSnapshotCache(addr, password string, db int, prefix string) *RedisSnapshotCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisSnapshotCache{client: client, prefix: prefix}
}

func (r *RedisSnapshotCache) key(base string) string {
	return r.prefix + domain.NormalizeCurrencyCode(base)
}

// Ping checks connectivity.
func (r *RedisSnapshotCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (r *RedisSnapshotCache) Close() error {
	return r.client.Close()
}

func (r *RedisSnapshotCache) Get(ctx context.Context, base string) (*domain.RateTable, error) {
	val, err := r.client.Get(ctx, r.key(base)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", r.key(base), err)
	}
	var c cachedTable
	if err := json.Unmarshal(val, &c); err != nil {
		return nil, fmt.Errorf("decode cached rates for %s: %w", base, err)
	}
	return domain.NewRateTable(c.Base, c.Rates, c.FetchedAt)
}

func (r *RedisSnapshotCache) Set(ctx context.Context, table *domain.RateTable, ttl time.Duration) error {
	data, err := json.Marshal(cachedTable{
		Base:      table.Base(),
		FetchedAt: table.FetchedAt(),
		Rates:     table.Rates(),
	})
	if err != nil {
		return fmt.Errorf("encode rates for %s: %w", table.Base(), err)
	}
	if err := r.client.Set(ctx, r.key(table.Base()), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key(table.Base()), err)
	}
	return nil
}

// CachedRateSource serves tables from a SnapshotCache while they are fresh and
// falls through to the upstream source otherwise. Cache failures are logged
// and bypassed.
type CachedRateSource struct {
	next  portsrepo.RateSource
	cache SnapshotCache
	ttl   time.Duration
}

var _ portsrepo.RateSource = (*CachedRateSource)(nil)

// NewCachedRateSource wraps next with cache.
func NewCachedRateSource(next portsrepo.RateSource, cache SnapshotCache, ttl time.Duration) *CachedRateSource {
	return &CachedRateSource{next: next, cache: cache, ttl: ttl}
}

func (c *CachedRateSource) FetchRates(ctx context.Context, baseCurrency string) (*domain.RateTable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	base := domain.NormalizeCurrencyCode(baseCurrency)

	cached, err := c.cache.Get(ctx, base)
	switch {
	case err != nil:
		logger.Warn("Rate cache read failed", slog.String("base", base), slog.String("error", err.Error()))
	case cached != nil:
		logger.Debug("Rate cache hit", slog.String("base", base))
		return cached, nil
	}

	table, err := c.next.FetchRates(ctx, base)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, table, c.ttl); err != nil {
		logger.Warn("Rate cache write failed", slog.String("base", base), slog.String("error", err.Error()))
	}
	return table, nil
}
