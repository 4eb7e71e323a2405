package client

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimiterFirstRequestImmediate(t *testing.T) {
	rl := NewRateLimiter(0.5)
	defer rl.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("first wait should not block: %v", err)
	}
}

func TestRateLimiterHonoursContext(t *testing.T) {
	rl := NewRateLimiter(0.5)
	defer rl.Stop()

	_ = rl.Wait(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := rl.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestRateLimiterRefills(t *testing.T) {
	rl := NewRateLimiter(200)
	defer rl.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		if err := rl.Wait(ctx); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}
}

func TestRateLimiterStop(t *testing.T) {
	rl := NewRateLimiter(0.5)
	_ = rl.Wait(context.Background())
	rl.Stop()

	if err := rl.Wait(context.Background()); !errors.Is(err, ErrLimiterStopped) {
		t.Errorf("expected ErrLimiterStopped, got %v", err)
	}
}
