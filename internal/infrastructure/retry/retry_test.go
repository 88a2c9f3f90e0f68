package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoWithResult_SucceedsFirstTry(t *testing.T) {
	calls := 0
	result, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 42, nil
	}, Config{MaxAttempts: 3, InitialDelay: time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	result, err := DoWithResult(context.Background(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	}, Config{MaxAttempts: 3, InitialDelay: time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestDoWithResult_ExhaustsAttempts(t *testing.T) {
	calls := 0
	lastErr := errors.New("still failing")

	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, lastErr
	}, Config{MaxAttempts: 3, InitialDelay: time.Millisecond})

	require.ErrorIs(t, err, lastErr)
	assert.Equal(t, 3, calls)
}

func TestDoWithResult_RetryIfStopsEarly(t *testing.T) {
	calls := 0
	fatal := errors.New("fatal")

	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, fatal
	}, Config{
		MaxAttempts:  5,
		InitialDelay: time.Millisecond,
		RetryIf:      func(err error) bool { return !errors.Is(err, fatal) },
	})

	require.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls, "non-retryable errors must not be retried")
}

func TestDoWithResult_ContextCancelledBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	_, err := DoWithResult(ctx, func() (int, error) {
		calls++
		cancel()
		return 0, errors.New("transient")
	}, Config{MaxAttempts: 5, InitialDelay: time.Hour})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "the long delay must be interrupted by cancellation")
}

func TestDoWithResult_ZeroMaxAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, errors.New("nope")
	}, Config{})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	}, Config{MaxAttempts: 3, InitialDelay: time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDelayFor_LinearStrategy(t *testing.T) {
	cfg := Config{InitialDelay: 2 * time.Second, Strategy: StrategyLinear}

	assert.Equal(t, 2*time.Second, cfg.delayFor(1))
	assert.Equal(t, 4*time.Second, cfg.delayFor(2))
	assert.Equal(t, 6*time.Second, cfg.delayFor(3))
}

func TestDelayFor_ExponentialStrategy(t *testing.T) {
	cfg := Config{InitialDelay: 100 * time.Millisecond, Multiplier: 2.0}

	assert.Equal(t, 100*time.Millisecond, cfg.delayFor(1))
	assert.Equal(t, 200*time.Millisecond, cfg.delayFor(2))
	assert.Equal(t, 400*time.Millisecond, cfg.delayFor(3))
}

func TestDelayFor_MaxDelayCap(t *testing.T) {
	cfg := Config{
		InitialDelay: time.Second,
		Strategy:     StrategyLinear,
		MaxDelay:     3 * time.Second,
	}

	assert.Equal(t, 3*time.Second, cfg.delayFor(10))
}

func TestDelayFor_NoCapWhenMaxDelayZero(t *testing.T) {
	cfg := Config{InitialDelay: time.Second, Strategy: StrategyLinear}

	assert.Equal(t, 10*time.Second, cfg.delayFor(10))
}

func TestDelayFor_Jitter(t *testing.T) {
	cfg := Config{InitialDelay: time.Second, Strategy: StrategyLinear, JitterFactor: 0.5}

	for i := 0; i < 20; i++ {
		delay := cfg.delayFor(1)
		assert.GreaterOrEqual(t, delay, time.Second)
		assert.LessOrEqual(t, delay, 1500*time.Millisecond)
	}
}

func TestPermanent(t *testing.T) {
	inner := errors.New("unauthorized")
	perm := NewPermanent(inner)

	assert.True(t, IsPermanent(perm))
	assert.False(t, IsPermanent(inner))
	assert.False(t, SkipPermanent(perm))
	assert.True(t, SkipPermanent(inner))
	assert.ErrorIs(t, perm, inner)
	assert.Equal(t, inner.Error(), perm.Error())
}

func TestNewPermanent_Nil(t *testing.T) {
	assert.Nil(t, NewPermanent(nil))
}

func TestUnwrapped(t *testing.T) {
	inner := errors.New("inner")

	assert.ErrorIs(t, Unwrapped(NewPermanent(inner)), inner)
	assert.Same(t, inner, Unwrapped(inner))
}

func TestConfigBuilders(t *testing.T) {
	cfg := DefaultConfig.
		WithMaxAttempts(7).
		WithInitialDelay(time.Minute).
		WithStrategy(StrategyLinear).
		WithRetryIf(SkipPermanent)

	assert.Equal(t, 7, cfg.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.InitialDelay)
	assert.Equal(t, StrategyLinear, cfg.Strategy)
	assert.NotNil(t, cfg.RetryIf)

	// The source config is untouched.
	assert.Equal(t, 3, DefaultConfig.MaxAttempts)
}
