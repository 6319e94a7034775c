// Package remote simulates the latency and throttling of backend calls that
// the storefront performs locally.
package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopuniverse/internal/config"
	"shopuniverse/internal/logger"
	"shopuniverse/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	ErrRateLimited = errors.New("too many requests")
	// ErrAborted wraps the context error of a call cancelled while waiting.
	ErrAborted = errors.New("call aborted before completion")
)

type Tier string

const (
	// TierAuth covers login and registration.
	TierAuth Tier = "strict"
	// TierOrder covers order placement.
	TierOrder Tier = "general"
)

type tierPolicy struct {
	latency time.Duration
	limiter *rate.Limiter
}

type Caller struct {
	tiers map[Tier]tierPolicy
	stats metrics.Calls
}

// TierConfig sets latency and limits for one tier. A zero Limit disables throttling.
type TierConfig struct {
	Latency time.Duration
	Limit   float64
	Burst   int
}

func NewCaller(tiers map[Tier]TierConfig) *Caller {
	c := &Caller{tiers: make(map[Tier]tierPolicy, len(tiers))}
	for tier, tc := range tiers {
		p := tierPolicy{latency: tc.Latency}
		if tc.Limit > 0 {
			p.limiter = rate.NewLimiter(rate.Limit(tc.Limit), max(tc.Burst, 1))
		}
		c.tiers[tier] = p
	}
	return c
}

func CallerFromConfig(cfg *config.Config) *Caller {
	return NewCaller(map[Tier]TierConfig{
		TierAuth:  {Latency: cfg.AuthLatency, Limit: cfg.AuthRateLimit, Burst: cfg.AuthRateBurst},
		TierOrder: {Latency: cfg.OrderLatency, Limit: cfg.OrderRateLimit, Burst: cfg.OrderRateBurst},
	})
}

// Instant is a caller with no latency and no limits.
func Instant() *Caller {
	return NewCaller(nil)
}

// Do runs fn as the simulated call name. The wait honours ctx; once fn starts
// it runs to completion with a context that is no longer cancellable.
func (c *Caller) Do(ctx context.Context, tier Tier, name string, fn func(ctx context.Context) error) error {
	ctx = logger.WithOperationID(ctx, uuid.NewString())
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "remote"),
		zap.String("call", name),
		zap.String("tier", string(tier)),
	)

	p := c.tiers[tier]
	if p.limiter != nil && !p.limiter.Allow() {
		log.Warn("call throttled")
		c.stats.Record(name, metrics.OutcomeThrottled, 0)
		return ErrRateLimited
	}

	timer := metrics.StartTimer()
	log.Debug("call started", zap.Duration("latency", p.latency))

	if err := wait(ctx, p.latency); err != nil {
		log.Info("call aborted", zap.Error(err))
		c.stats.Record(name, metrics.OutcomeAborted, timer.Duration())
		return fmt.Errorf("%w: %w", ErrAborted, err)
	}

	err := fn(context.WithoutCancel(ctx))

	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeFailed
	}
	c.stats.Record(name, outcome, timer.Duration())

	log.Debug("call finished",
		zap.Duration("duration", timer.Duration()),
		zap.Bool("ok", err == nil),
	)
	return err
}

// Stats reports per-call counters since the caller was built.
func (c *Caller) Stats() []metrics.CallSnapshot {
	return c.stats.Snapshot()
}

func wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
