// Package ratelimit provides per-key request limiting with pluggable storage
// backends. Implementations are safe for concurrent use.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Algorithm defines the rate limiting algorithm to use.
type Algorithm string

const (
	// AlgorithmFixedWindow uses a fixed window counter.
	// Simple and memory-efficient; allows burst at window boundaries.
	AlgorithmFixedWindow Algorithm = "fixed_window"

	// AlgorithmSlidingWindow uses a sliding window log.
	// Precise limiting without burst allowance.
	AlgorithmSlidingWindow Algorithm = "sliding_window"
)

// Result contains the rate limit decision and metadata.
type Result struct {
	// Allowed indicates if the request is permitted.
	Allowed bool

	// Limit is the maximum requests per window.
	Limit int64

	// Remaining is the number of requests left in the current window.
	Remaining int64

	// ResetAt is when the rate limit window resets.
	ResetAt time.Time

	// RetryAfter is the duration to wait before retrying (if not allowed).
	RetryAfter time.Duration
}

// Config configures the rate limiter.
type Config struct {
	// Algorithm selects the rate limiting algorithm.
	Algorithm Algorithm

	// Limit is the maximum number of requests allowed per window.
	Limit int64

	// Window is the time window for rate limiting.
	Window time.Duration

	// OnLimited is called when the limit is exceeded.
	// Can be used for custom logging or metrics.
	OnLimited func(ctx context.Context, key string, result Result)
}

// Store is the interface for rate limit storage backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Allow checks if a request is allowed and consumes a slot.
	Allow(ctx context.Context, key string, config Config) (Result, error)

	// Reset resets the rate limit for a specific key.
	Reset(ctx context.Context, key string) error
}

// Limiter is the main rate limiter interface.
type Limiter interface {
	// AllowKey checks if a request is allowed for a specific key.
	AllowKey(ctx context.Context, key string) (Result, error)

	// ResetKey resets the rate limit for a specific key.
	ResetKey(ctx context.Context, key string) error
}

type limiter struct {
	store  Store
	config Config
}

// New creates a rate limiter with the provided store and configuration.
func New(store Store, config Config) (Limiter, error) {
	if store == nil {
		return nil, fmt.Errorf("ratelimit: store is required")
	}

	if config.Limit <= 0 {
		return nil, fmt.Errorf("ratelimit: limit must be positive")
	}

	if config.Window <= 0 {
		return nil, fmt.Errorf("ratelimit: window must be positive")
	}

	if config.Algorithm == "" {
		config.Algorithm = AlgorithmFixedWindow
	}

	return &limiter{store: store, config: config}, nil
}

func (l *limiter) AllowKey(ctx context.Context, key string) (Result, error) {
	result, err := l.store.Allow(ctx, key, l.config)
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: store error: %w", err)
	}

	if !result.Allowed && l.config.OnLimited != nil {
		l.config.OnLimited(ctx, key, result)
	}

	return result, nil
}

func (l *limiter) ResetKey(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}
