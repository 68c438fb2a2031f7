package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig() Config {
	return Config{
		RetryMaxAttempts:    3,
		RetryInitialBackoff: time.Millisecond,
		RetryMaxBackoff:     2 * time.Millisecond,
		RetryMultiplier:     2.0,
		BreakerEnabled:      false,
	}
}

func retryable(error) ErrorClassification {
	return ErrorClassification{Retryable: true, RecordFailure: true}
}

func TestExecuteRetriesUntilSuccess(t *testing.T) {
	exec := NewExecutor(fastConfig())

	attempts := 0
	err := exec.Execute(context.Background(), "test.op", func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("flaky")
		}
		return nil
	}, retryable)

	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestExecuteExhaustsAttempts(t *testing.T) {
	exec := NewExecutor(fastConfig())

	attempts := 0
	err := exec.Execute(context.Background(), "test.op", func(context.Context) error {
		attempts++
		return errors.New("always failing")
	}, retryable)

	if err == nil {
		t.Fatal("expected the final error to surface")
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestExecuteDoesNotRetryNonRetryable(t *testing.T) {
	exec := NewExecutor(fastConfig())

	attempts := 0
	err := exec.Execute(context.Background(), "test.op", func(context.Context) error {
		attempts++
		return errors.New("bad request")
	}, func(error) ErrorClassification {
		return ErrorClassification{Retryable: false, RecordFailure: true}
	})

	if err == nil {
		t.Fatal("expected an error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want exactly 1", attempts)
	}
}

func TestExecuteStopsOnCancelledContext(t *testing.T) {
	exec := NewExecutor(fastConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := exec.Execute(ctx, "test.op", func(context.Context) error {
		attempts++
		return nil
	}, retryable)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if attempts != 0 {
		t.Errorf("attempts = %d, want 0 when the context is already done", attempts)
	}
}

func TestExecuteOpensBreakerAfterRepeatedFailures(t *testing.T) {
	cfg := fastConfig()
	cfg.RetryMaxAttempts = 1
	cfg.BreakerEnabled = true
	cfg.BreakerMinRequests = 2
	cfg.BreakerFailureRatio = 0.5
	cfg.BreakerOpenTimeout = time.Minute
	exec := NewExecutor(cfg)

	failing := func(context.Context) error { return errors.New("down") }
	for i := 0; i < 2; i++ {
		if err := exec.Execute(context.Background(), "test.op", failing, retryable); err == nil {
			t.Fatalf("call %d: expected an error", i)
		}
	}

	called := false
	err := exec.Execute(context.Background(), "test.op", func(context.Context) error {
		called = true
		return nil
	}, retryable)

	if !IsCircuitOpen(err) {
		t.Errorf("error = %v, want an open-circuit error", err)
	}
	if called {
		t.Error("the callback must not run while the circuit is open")
	}
}

func TestExecuteIsolatesBreakersPerOperation(t *testing.T) {
	cfg := fastConfig()
	cfg.RetryMaxAttempts = 1
	cfg.BreakerEnabled = true
	cfg.BreakerMinRequests = 2
	cfg.BreakerFailureRatio = 0.5
	cfg.BreakerOpenTimeout = time.Minute
	exec := NewExecutor(cfg)

	failing := func(context.Context) error { return errors.New("down") }
	for i := 0; i < 2; i++ {
		_ = exec.Execute(context.Background(), "broken.op", failing, retryable)
	}

	if err := exec.Execute(context.Background(), "healthy.op", func(context.Context) error {
		return nil
	}, retryable); err != nil {
		t.Errorf("healthy operation affected by another operation's breaker: %v", err)
	}
}

func TestExecuteRejectsNilCallback(t *testing.T) {
	exec := NewExecutor(fastConfig())
	if err := exec.Execute(context.Background(), "test.op", nil, nil); err == nil {
		t.Error("expected an error for a nil callback")
	}
}
