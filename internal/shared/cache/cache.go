// Package cache wraps reads of hot, read-mostly entities with the three
// classic cache-failure mitigations: null-result markers for queries on ids
// that do not exist, logical-expiry entries refreshed in the background under
// a per-key lock for hot keys, and jittered TTLs for everything else.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/zhou-jk/flashsale-api/internal/shared/lock"
)

// ErrNotFound is returned when neither the cache nor the durable source has
// the requested entity. A fresh null marker short-circuits repeat lookups.
var ErrNotFound = errors.New("cache: entity not found")

// nullMarker is the sentinel stored for ids that were looked up and do not
// exist. Distinct from an absent key and from any JSON payload.
const nullMarker = ""

// Store is the key-value backend the client runs against.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the raw value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value. A non-positive ttl stores the key without expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Options tunes the client. Zero values fall back to defaults.
type Options struct {
	// NullTTL bounds how long a null marker suppresses durable lookups.
	NullTTL time.Duration

	// JitterRatio spreads store-level TTLs by ±ratio so co-written keys do
	// not all expire in the same instant.
	JitterRatio float64

	// RefreshWorkers caps concurrent background refreshes of logically
	// expired entries.
	RefreshWorkers int

	// RefreshLockTTL is the lease taken while rebuilding one key. Must exceed
	// the expected rebuild duration; the lease is not renewed.
	RefreshLockTTL time.Duration

	// RefreshTimeout bounds one background rebuild.
	RefreshTimeout time.Duration
}

const (
	defaultNullTTL        = 2 * time.Minute
	defaultJitterRatio    = 0.1
	defaultRefreshWorkers = 10
	defaultRefreshLockTTL = 10 * time.Second
	defaultRefreshTimeout = 5 * time.Second
)

// Client coordinates cached reads. Safe for concurrent use.
type Client struct {
	store  Store
	locker lock.Locker
	logger *slog.Logger
	opts   Options

	refreshSlots chan struct{}
}

// New creates a cache client.
func New(store Store, locker lock.Locker, logger *slog.Logger, opts Options) (*Client, error) {
	if store == nil {
		return nil, errors.New("cache: store is required")
	}
	if locker == nil {
		return nil, errors.New("cache: locker is required")
	}

	if opts.NullTTL <= 0 {
		opts.NullTTL = defaultNullTTL
	}
	if opts.JitterRatio < 0 {
		opts.JitterRatio = defaultJitterRatio
	}
	if opts.RefreshWorkers <= 0 {
		opts.RefreshWorkers = defaultRefreshWorkers
	}
	if opts.RefreshLockTTL <= 0 {
		opts.RefreshLockTTL = defaultRefreshLockTTL
	}
	if opts.RefreshTimeout <= 0 {
		opts.RefreshTimeout = defaultRefreshTimeout
	}

	return &Client{
		store:        store,
		locker:       locker,
		logger:       logger,
		opts:         opts,
		refreshSlots: make(chan struct{}, opts.RefreshWorkers),
	}, nil
}

// Invalidate drops the cached entry; the next read repopulates it.
func (c *Client) Invalidate(ctx context.Context, key string) error {
	if err := c.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("cache: failed to invalidate %q: %w", key, err)
	}
	return nil
}

// jitterTTL spreads ttl by ±JitterRatio.
func (c *Client) jitterTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 || c.opts.JitterRatio <= 0 {
		return ttl
	}
	delta := float64(ttl) * c.opts.JitterRatio
	return ttl + time.Duration((rand.Float64()*2-1)*delta)
}

// GetOrLoad reads key, falling back to load on a miss. A load that finds
// nothing writes a short-lived null marker so repeated lookups of the same
// nonexistent id stop at the cache; a load that succeeds writes the entity
// with a jittered TTL.
func GetOrLoad[T any](ctx context.Context, c *Client, key string, ttl time.Duration, load func(ctx context.Context) (*T, error)) (*T, error) {
	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("cache: failed to read %q: %w", key, err)
	}
	if found {
		if raw == nullMarker {
			return nil, ErrNotFound
		}
		return decode[T](key, raw)
	}

	value, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if value == nil {
		if err := c.store.Set(ctx, key, nullMarker, c.opts.NullTTL); err != nil {
			c.warn(ctx, "failed to write null marker", key, err)
		}
		return nil, ErrNotFound
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("cache: failed to encode %q: %w", key, err)
	}
	if err := c.store.Set(ctx, key, string(data), c.jitterTTL(ttl)); err != nil {
		c.warn(ctx, "failed to write entry", key, err)
	}
	return value, nil
}

// envelope carries a payload with an application-level expiry. Entries in this
// form are stored without a store-level TTL so a stale value remains servable
// while a refresh runs.
type envelope struct {
	Data     json.RawMessage `json:"data"`
	ExpireAt time.Time       `json:"expire_at"`
}

// GetLogical reads a logical-expiry entry. A fresh entry returns immediately.
// A stale entry is returned as-is while at most one caller, gated by the
// per-key lock, rebuilds it on a bounded background pool. An absent key falls
// through to load directly: hot keys are expected to be pre-warmed via
// SetLogical, so true absence is the rare cold-start path.
func GetLogical[T any](ctx context.Context, c *Client, key, lockKey string, freshFor time.Duration, load func(ctx context.Context) (*T, error)) (*T, error) {
	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("cache: failed to read %q: %w", key, err)
	}
	if !found || raw == nullMarker {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, ErrNotFound
		}
		return value, nil
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, fmt.Errorf("cache: failed to decode envelope at %q: %w", key, err)
	}
	value, err := decode[T](key, string(env.Data))
	if err != nil {
		return nil, err
	}

	if env.ExpireAt.After(time.Now()) {
		return value, nil
	}

	c.tryRefresh(ctx, key, lockKey, freshFor, func(ctx context.Context) (json.RawMessage, error) {
		fresh, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if fresh == nil {
			return nil, ErrNotFound
		}
		return json.Marshal(fresh)
	})

	// Availability over freshness: the stale payload is served while the
	// rebuild happens elsewhere.
	return value, nil
}

// SetLogical writes a logical-expiry entry. Used to pre-warm hot keys and by
// background refreshes.
func SetLogical[T any](ctx context.Context, c *Client, key string, value *T, freshFor time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: failed to encode %q: %w", key, err)
	}
	return c.setLogicalRaw(ctx, key, data, freshFor)
}

func (c *Client) setLogicalRaw(ctx context.Context, key string, data json.RawMessage, freshFor time.Duration) error {
	env, err := json.Marshal(envelope{Data: data, ExpireAt: time.Now().Add(freshFor)})
	if err != nil {
		return fmt.Errorf("cache: failed to encode envelope for %q: %w", key, err)
	}
	if err := c.store.Set(ctx, key, string(env), 0); err != nil {
		return fmt.Errorf("cache: failed to write %q: %w", key, err)
	}
	return nil
}

// tryRefresh starts one background rebuild for the key if both the per-key
// lock and a worker slot are available; otherwise it does nothing, trusting
// that another caller's refresh is underway.
func (c *Client) tryRefresh(ctx context.Context, key, lockKey string, freshFor time.Duration, reload func(ctx context.Context) (json.RawMessage, error)) {
	lease, acquired, err := c.locker.TryAcquire(ctx, lockKey, c.opts.RefreshLockTTL)
	if err != nil {
		c.warn(ctx, "failed to acquire refresh lock", key, err)
		return
	}
	if !acquired {
		return
	}

	select {
	case c.refreshSlots <- struct{}{}:
	default:
		// Pool exhausted: give the lock back so the next reader can retry.
		if err := lease.Release(ctx); err != nil {
			c.warn(ctx, "failed to release refresh lock", key, err)
		}
		return
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		defer func() { <-c.refreshSlots }()

		refreshCtx, cancel := context.WithTimeout(detached, c.opts.RefreshTimeout)
		defer cancel()
		defer func() {
			if err := lease.Release(refreshCtx); err != nil {
				c.warn(refreshCtx, "failed to release refresh lock", key, err)
			}
		}()

		data, err := reload(refreshCtx)
		if err != nil {
			c.warn(refreshCtx, "background refresh failed", key, err)
			return
		}
		if err := c.setLogicalRaw(refreshCtx, key, data, freshFor); err != nil {
			c.warn(refreshCtx, "failed to rewrite refreshed entry", key, err)
		}
	}()
}

func decode[T any](key, raw string) (*T, error) {
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, fmt.Errorf("cache: failed to decode %q: %w", key, err)
	}
	return &value, nil
}

func (c *Client) warn(ctx context.Context, msg, key string, err error) {
	if c.logger != nil {
		c.logger.WarnContext(ctx, msg, "key", key, "error", err)
	}
}
