package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	b := NewCircuitBreaker(3, time.Minute, 1)

	for range 3 {
		if err := b.Allow(); err != nil {
			t.Fatalf("expected closed breaker to allow: %v", err)
		}
		b.RecordFailure()
	}

	if b.State() != CircuitStateOpen {
		t.Fatalf("expected open state, got %s", b.State())
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := NewCircuitBreaker(2, time.Minute, 1)

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()

	if b.State() != CircuitStateClosed {
		t.Fatalf("expected closed state, got %s", b.State())
	}
}

func TestCircuitBreaker_HalfOpenProbeRecovers(t *testing.T) {
	b := NewCircuitBreaker(1, 10*time.Millisecond, 1)
	current := time.Now()
	b.now = func() time.Time { return current }

	b.RecordFailure()
	if b.State() != CircuitStateOpen {
		t.Fatalf("expected open state, got %s", b.State())
	}

	current = current.Add(20 * time.Millisecond)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe allowed after open timeout: %v", err)
	}
	b.RecordSuccess()

	if b.State() != CircuitStateClosed {
		t.Fatalf("expected closed state after probe success, got %s", b.State())
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	b := NewCircuitBreaker(1, 10*time.Millisecond, 1)
	current := time.Now()
	b.now = func() time.Time { return current }

	b.RecordFailure()
	current = current.Add(20 * time.Millisecond)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe allowed: %v", err)
	}
	b.RecordFailure()

	if b.State() != CircuitStateOpen {
		t.Fatalf("expected reopened state, got %s", b.State())
	}
}
