// Package retry provides a generic retry mechanism with configurable
// backoff strategies.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Strategy selects how the delay between attempts grows.
type Strategy string

const (
	// StrategyExponential multiplies the delay by Multiplier after each
	// attempt (the classic exponential backoff).
	StrategyExponential Strategy = "exponential"

	// StrategyLinear waits attempt*InitialDelay before the next attempt,
	// i.e. 1x, 2x, 3x the base delay.
	StrategyLinear Strategy = "linear"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the maximum number of attempts, including the first.
	MaxAttempts int

	// InitialDelay is the base delay between attempts.
	InitialDelay time.Duration

	// MaxDelay caps the delay between attempts. Zero means no cap.
	MaxDelay time.Duration

	// Multiplier grows the delay under StrategyExponential.
	Multiplier float64

	// JitterFactor adds up to this fraction of random jitter to each
	// delay. Zero produces deterministic delays.
	JitterFactor float64

	// Strategy selects the backoff curve. Defaults to exponential.
	Strategy Strategy

	// RetryIf decides whether an error is retryable. Nil retries all.
	RetryIf func(error) bool
}

// DefaultConfig provides sensible defaults for transient upstream failures.
var DefaultConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
	Strategy:     StrategyExponential,
}

// DoWithResult executes fn until it succeeds, the attempts are exhausted, or
// the context is cancelled. The delay between attempts follows the
// configured strategy and never blocks anything but this call chain.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(cfg.delayFor(attempt)):
		}
	}

	return result, lastErr
}

// Do executes a function with no result with retry logic.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// delayFor computes the sleep duration after the given 1-based attempt.
func (c Config) delayFor(attempt int) time.Duration {
	var delay time.Duration

	switch c.Strategy {
	case StrategyLinear:
		delay = time.Duration(attempt) * c.InitialDelay
	default:
		delay = c.InitialDelay
		for i := 1; i < attempt; i++ {
			delay = time.Duration(float64(delay) * c.Multiplier)
		}
	}

	if c.JitterFactor > 0 {
		delay += time.Duration(rand.Float64() * float64(delay) * c.JitterFactor)
	}

	if c.MaxDelay > 0 && delay > c.MaxDelay {
		delay = c.MaxDelay
	}

	return delay
}

// Permanent wraps an error to indicate it should not be retried.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent creates a permanent (non-retryable) error.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent checks if an error is permanent (non-retryable).
func IsPermanent(err error) bool {
	var permanent *Permanent
	return errors.As(err, &permanent)
}

// SkipPermanent is a RetryIf predicate that skips permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}

// Unwrapped strips the Permanent wrapper, if any, so callers can surface
// the underlying error.
func Unwrapped(err error) error {
	var permanent *Permanent
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	return err
}

// WithRetryIf returns a new config with the given RetryIf predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithMaxAttempts returns a new config with the given max attempts.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInitialDelay returns a new config with the given base delay.
func (c Config) WithInitialDelay(d time.Duration) Config {
	c.InitialDelay = d
	return c
}

// WithStrategy returns a new config with the given backoff strategy.
func (c Config) WithStrategy(s Strategy) Config {
	c.Strategy = s
	return c
}
