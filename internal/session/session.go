// Package session keeps the converter screen state as a sequence of immutable
// snapshots produced by a single command loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/SscSPs/currency_exchanger/internal/apperrors"
	"github.com/SscSPs/currency_exchanger/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchanger/internal/core/ports/services"
	"github.com/SscSPs/currency_exchanger/internal/middleware"
)

// ErrNotRunning is returned by Dispatch once the loop has stopped.
var ErrNotRunning = errors.New("session loop is not running")

const commandBuffer = 16

type envelope struct {
	cmd   Command
	reply chan Snapshot
}

// Session owns the screen state. Only the Run goroutine builds snapshots;
// everyone else reads the latest one through Snapshot.
type Session struct {
	engine   portssvc.ExchangeSvcFacade
	rates    portssvc.ExchangeRateReaderSvc
	commands chan envelope
	stopped  chan struct{}
	current  atomic.Pointer[Snapshot]
	now      func() time.Time
}

// New creates a session whose from/to currencies start at defaultCurrency.
func New(engine portssvc.ExchangeSvcFacade, rates portssvc.ExchangeRateReaderSvc, defaultCurrency string) *Session {
	s := &Session{
		engine:   engine,
		rates:    rates,
		commands: make(chan envelope, commandBuffer),
		stopped:  make(chan struct{}),
		now:      func() time.Time { return time.Now().UTC() },
	}
	initial := initialSnapshot(defaultCurrency, s.now())
	s.current.Store(&initial)
	return s
}

// Snapshot returns the latest published state.
func (s *Session) Snapshot() Snapshot {
	return *s.current.Load()
}

// Run applies commands until ctx is cancelled. It loads balances and any
// already fetched rates before taking the first command.
func (s *Session) Run(ctx context.Context) {
	defer close(s.stopped)
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("component", "session"))

	s.publish(s.apply(ctx, s.Snapshot(), Refresh()))
	logger.Info("Session loop started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Session loop stopped")
			return
		case env := <-s.commands:
			next := s.publish(s.apply(ctx, s.Snapshot(), env.cmd))
			if env.reply != nil {
				env.reply <- next
			}
		}
	}
}

// Dispatch queues cmd and waits for the snapshot it produced.
func (s *Session) Dispatch(ctx context.Context, cmd Command) (Snapshot, error) {
	env := envelope{cmd: cmd, reply: make(chan Snapshot, 1)}
	select {
	case s.commands <- env:
	case <-s.stopped:
		return Snapshot{}, ErrNotRunning
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
	select {
	case snap := <-env.reply:
		return snap, nil
	case <-s.stopped:
		return Snapshot{}, ErrNotRunning
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// OnRatesUpdated feeds a poll outcome into the loop without blocking the
// caller. It drops the update if the queue is full; the next poll supersedes it.
func (s *Session) OnRatesUpdated(table *domain.RateTable, err error) {
	select {
	case s.commands <- envelope{cmd: RatesUpdated(table, err)}:
	default:
		slog.Default().Debug("Session queue full, dropping rate update")
	}
}

func (s *Session) publish(next Snapshot) Snapshot {
	next.UpdatedAt = s.now()
	s.current.Store(&next)
	return next
}

func (s *Session) apply(ctx context.Context, prev Snapshot, cmd Command) Snapshot {
	next := prev
	switch cmd.Type {
	case CmdSelectFromCurrency:
		next.FromCurrency = domain.NormalizeCurrencyCode(cmd.Value)
		return s.requote(ctx, next)
	case CmdSelectToCurrency:
		next.ToCurrency = domain.NormalizeCurrencyCode(cmd.Value)
		return s.requote(ctx, next)
	case CmdEnterAmount:
		next.Amount = strings.TrimSpace(cmd.Value)
		return s.requote(ctx, next)
	case CmdRatesUpdated:
		if cmd.Err != nil {
			next.Message = apperrors.UserMessage(cmd.Err)
			return next
		}
		next.Rates = cmd.Rates
		return s.requote(ctx, next)
	case CmdSubmit:
		return s.submit(ctx, next)
	case CmdRefresh:
		next = s.reload(ctx, next)
		return s.requote(ctx, next)
	default:
		next.Message = apperrors.UserMessage(fmt.Errorf("%w: unknown command %q", apperrors.ErrValidation, cmd.Type))
		return next
	}
}

// reload pulls balances and the current rate table from the engine.
func (s *Session) reload(ctx context.Context, next Snapshot) Snapshot {
	if table, err := s.rates.CurrentRates(ctx); err == nil {
		next.Rates = table
	}
	balances, err := s.engine.AllBalances(ctx)
	if err != nil {
		next.Message = apperrors.UserMessage(err)
		return next
	}
	next.Balances = balances
	return next
}

// requote recomputes the converted amount, fee rate and affordability for the current inputs.
func (s *Session) requote(ctx context.Context, next Snapshot) Snapshot {
	next.ConvertedAmount = 0
	next.CanConvert = false
	if next.Amount == "" {
		next.Message = ""
		return next
	}

	quote, err := s.engine.Quote(ctx, next.Amount, next.FromCurrency, next.ToCurrency)
	if err != nil {
		next.Message = apperrors.UserMessage(err)
		return next
	}
	next.ConvertedAmount = quote.ConvertedAmount
	next.CommissionFeeRate = quote.CommissionFeeRate

	ok, err := s.engine.CheckAffordability(ctx, quote.FromCurrency, quote.Amount)
	if err != nil {
		next.Message = apperrors.UserMessage(err)
		return next
	}
	if !ok {
		next.Message = apperrors.UserMessage(apperrors.ErrInsufficientBalance)
		return next
	}

	next.CanConvert = true
	next.Message = QuoteMessage(quote.Amount, quote.FromCurrency, quote.ConvertedAmount, quote.ToCurrency, quote.CommissionFee)
	return next
}

func (s *Session) submit(ctx context.Context, next Snapshot) Snapshot {
	txn, err := s.engine.Exchange(ctx, next.Amount, next.FromCurrency, next.ToCurrency)
	if err != nil {
		next.CanConvert = false
		next.Message = apperrors.UserMessage(err)
		return next
	}

	next = s.reload(ctx, next)
	next = s.requote(ctx, next)
	next.Message = QuoteMessage(txn.Amount, txn.FromCurrency, txn.ConvertedAmount, txn.ToCurrency, txn.CommissionFee)
	return next
}
