package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_DoCountsOnlyDependencyFailures(t *testing.T) {
	b := NewCircuitBreaker(1, time.Minute, 1)
	transient := errors.New("upstream 503")
	notFound := errors.New("row missing")
	isFailure := func(err error) bool { return errors.Is(err, transient) }

	if err := b.Do(isFailure, func() error { return notFound }); !errors.Is(err, notFound) {
		t.Fatalf("expected caller error to pass through, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected non-dependency error to keep breaker closed, got %s", state)
	}

	_ = b.Do(isFailure, func() error { return transient })
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected breaker to open, got %s", state)
	}

	called := false
	err := b.Do(isFailure, func() error { called = true; return nil })
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("expected open breaker to reject without calling, err=%v called=%v", err, called)
	}
}

func TestCircuitBreaker_DisabledIsNil(t *testing.T) {
	b := NewCircuitBreakerFromConfig(CircuitBreakerConfig{Enabled: false})
	if b != nil {
		t.Fatalf("expected disabled breaker to be nil")
	}
	for i := 0; i < 10; i++ {
		if err := b.Do(func(error) bool { return true }, func() error { return errors.New("x") }); err == nil || errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("nil breaker must always run fn, got %v", err)
		}
	}
	if b.State() != CircuitStateClosed {
		t.Fatalf("nil breaker reports closed")
	}
}

func TestCircuitBreakerConfig_Validate(t *testing.T) {
	if err := DefaultCircuitBreakerConfig().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if err := (CircuitBreakerConfig{}).Validate(); err != nil {
		t.Fatalf("disabled config must validate: %v", err)
	}

	bad := DefaultCircuitBreakerConfig()
	bad.HalfOpenMaxReq = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for zero half-open requests")
	}
}
