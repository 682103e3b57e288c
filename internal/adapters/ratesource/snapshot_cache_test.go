package ratesource_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/adapters/ratesource"
	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRates(ctx context.Context, base string) (*domain.RateTable, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

// mapCache is an in-process SnapshotCache that ignores ttl.
type mapCache struct {
	mu     sync.Mutex
	tables map[string]*domain.RateTable
	getErr error
	setErr error
	sets   int
}

func (c *mapCache) Get(_ context.Context, base string) (*domain.RateTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.tables[base], nil
}

func (c *mapCache) Set(_ context.Context, table *domain.RateTable, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	if c.tables == nil {
		c.tables = map[string]*domain.RateTable{}
	}
	c.tables[table.Base()] = table
	return nil
}

func eurTable(t *testing.T) *domain.RateTable {
	t.Helper()
	table, err := domain.NewRateTable("EUR", map[string]float64{"EUR": 1, "USD": 1.1}, time.Now())
	require.NoError(t, err)
	return table
}

func TestCachedRateSource_MissThenHit(t *testing.T) {
	ctx := context.Background()
	upstream := new(MockRateSource)
	table := eurTable(t)
	upstream.On("FetchRates", ctx, "EUR").Return(table, nil).Once()
	cache := &mapCache{}
	src := ratesource.NewCachedRateSource(upstream, cache, time.Second)

	first, err := src.FetchRates(ctx, "eur")
	require.NoError(t, err)
	second, err := src.FetchRates(ctx, "EUR")
	require.NoError(t, err)

	assert.Same(t, table, first)
	assert.Same(t, table, second)
	assert.Equal(t, 1, cache.sets)
	upstream.AssertExpectations(t)
}

func TestCachedRateSource_CacheErrorsAreBypassed(t *testing.T) {
	ctx := context.Background()
	upstream := new(MockRateSource)
	table := eurTable(t)
	upstream.On("FetchRates", ctx, "EUR").Return(table, nil).Once()
	cache := &mapCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}

	got, err := ratesource.NewCachedRateSource(upstream, cache, time.Second).FetchRates(ctx, "EUR")

	require.NoError(t, err)
	assert.Same(t, table, got)
}

func TestCachedRateSource_UpstreamFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	upstream := new(MockRateSource)
	upstream.On("FetchRates", ctx, "EUR").Return(nil, apperrors.ErrRatesUnavailable).Once()
	cache := &mapCache{}

	_, err := ratesource.NewCachedRateSource(upstream, cache, time.Second).FetchRates(ctx, "EUR")

	assert.ErrorIs(t, err, apperrors.ErrRatesUnavailable)
	assert.Zero(t, cache.sets)
}

func TestRedisSnapshotCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	cache := ratesource.NewRedisSnapshotCache(addr, "", 0, "test:rates:")
	defer cache.Close()
	require.NoError(t, cache.Ping(ctx))

	miss, err := cache.Get(ctx, "NOPE")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, cache.Set(ctx, eurTable(t), time.Minute))
	got, err := cache.Get(ctx, "EUR")
	require.NoError(t, err)
	require.NotNil(t, got)
	usd, ok := got.Rate("USD")
	assert.True(t, ok)
	assert.Equal(t, 1.1, usd)
}
