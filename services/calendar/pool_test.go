package calendar

import (
	"context"
	"testing"
	"time"
)

func TestGate_BoundsConcurrency(t *testing.T) {
	g := newGate(2)
	ctx := context.Background()

	if err := g.acquire(ctx); err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if err := g.acquire(ctx); err != nil {
		t.Fatalf("second acquire: %v", err)
	}

	// Third acquire must block until a slot frees up.
	blocked, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	if err := g.acquire(blocked); err == nil {
		t.Fatal("third acquire succeeded while the gate was full")
	}

	g.release()
	if err := g.acquire(ctx); err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
}

func TestGate_CancelledContext(t *testing.T) {
	g := newGate(1)
	if err := g.acquire(context.Background()); err != nil {
		t.Fatalf("acquire: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.acquire(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewGate_MinimumSize(t *testing.T) {
	g := newGate(0)
	if err := g.acquire(context.Background()); err != nil {
		t.Fatalf("zero-size gate should still admit one caller: %v", err)
	}
	blocked, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := g.acquire(blocked); err == nil {
		t.Fatal("second acquire should block on a size-1 gate")
	}
}
