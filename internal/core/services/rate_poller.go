package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchanger/internal/core/ports/services"
)

// DefaultPollInterval is how often rates are refreshed when no interval is configured.
const DefaultPollInterval = 5 * time.Second

// RateListener is told about every poll outcome. Exactly one of table and err is non-nil.
type RateListener func(table *domain.RateTable, err error)

// RatePoller refreshes rates on a fixed cadence until its context is cancelled.
type RatePoller struct {
	BaseService
	rates        portssvc.ExchangeRateRefresherSvc
	baseCurrency string
	interval     time.Duration

	mu        sync.RWMutex
	listeners []RateListener
}

// NewRatePoller creates a poller for baseCurrency. A non-positive interval
// falls back to DefaultPollInterval.
func NewRatePoller(rates portssvc.ExchangeRateRefresherSvc, baseCurrency string, interval time.Duration) *RatePoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &RatePoller{
		rates:        rates,
		baseCurrency: baseCurrency,
		interval:     interval,
	}
}

// OnUpdate registers a listener. Listeners run on the poller goroutine and must not block.
func (p *RatePoller) OnUpdate(listener RateListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, listener)
}

// Run polls immediately and then on every tick. It returns when ctx is done.
func (p *RatePoller) Run(ctx context.Context) {
	logger := p.GetLogger(ctx).With(slog.String("component", "rate_poller"), slog.String("base", p.baseCurrency))
	logger.Info("Starting rate poller", slog.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.PollOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Rate poller stopped")
			return
		case <-ticker.C:
			p.PollOnce(ctx)
		}
	}
}

// PollOnce runs a single refresh cycle and notifies listeners.
func (p *RatePoller) PollOnce(ctx context.Context) {
	table, err := p.rates.RefreshRates(ctx, p.baseCurrency)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.LogWarn(ctx, err, "Rate refresh failed, keeping previous snapshot", slog.String("base", p.baseCurrency))
	}

	p.mu.RLock()
	listeners := make([]RateListener, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.RUnlock()

	for _, l := range listeners {
		l(table, err)
	}
}
