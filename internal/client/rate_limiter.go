package client

import (
	"context"
	"errors"
	"time"
)

// ErrLimiterStopped is returned by Wait after Stop
var ErrLimiterStopped = errors.New("rate limiter stopped")

// RateLimiter controls request rate
type RateLimiter struct {
	ticker *time.Ticker
	tokens chan struct{}
	done   chan struct{}
}

// NewRateLimiter creates a rate limiter with specified rate.
// One request may proceed immediately.
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	interval := time.Duration(float64(time.Second) / requestsPerSecond)

	rl := &RateLimiter{
		ticker: time.NewTicker(interval),
		tokens: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	rl.tokens <- struct{}{}

	go func() {
		for {
			select {
			case <-rl.ticker.C:
				select {
				case rl.tokens <- struct{}{}:
				default:
				}
			case <-rl.done:
				return
			}
		}
	}()

	return rl
}

// Wait blocks until rate limit allows next request
func (rl *RateLimiter) Wait(ctx context.Context) error {
	select {
	case <-rl.done:
		return ErrLimiterStopped
	default:
	}

	select {
	case <-rl.tokens:
		return nil
	case <-rl.done:
		return ErrLimiterStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop stops the rate limiter. It must be called at most once.
func (rl *RateLimiter) Stop() {
	rl.ticker.Stop()
	close(rl.done)
}
