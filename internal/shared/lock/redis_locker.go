package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zhou-jk/flashsale-api/internal/shared/uid"
)

// releaseScript deletes the lease only while this holder's token is still the
// value stored at the key. The compare and the delete must run as one store-side
// operation: two round trips would let an expired holder delete a lease that has
// since been re-acquired.
var releaseScript = redis.NewScript(`
if redis.call('get', KEYS[1]) == ARGV[1] then
	return redis.call('del', KEYS[1])
end
return 0
`)

var _ Locker = (*RedisLocker)(nil)

// scriptRunner issues the two store commands the lock protocol needs. The
// indirection lets the token semantics be exercised against a scripted store
// in tests.
type scriptRunner interface {
	setNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	runScript(ctx context.Context, script *redis.Script, keys []string, args ...interface{}) (int64, error)
}

type redisScriptRunner struct {
	client *redis.Client
}

func (r redisScriptRunner) setNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, key, value, ttl).Result()
}

func (r redisScriptRunner) runScript(ctx context.Context, script *redis.Script, keys []string, args ...interface{}) (int64, error) {
	result, err := script.Run(ctx, r.client, keys, args...).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, err
	}
	return result, nil
}

// RedisLocker is a lease-based distributed locker using SET NX PX with a
// random per-acquisition holder token.
type RedisLocker struct {
	store  scriptRunner
	tokens uid.Generator
}

// NewRedisLocker creates a Redis-backed Locker. tokens supplies the random
// holder identity written as the lock value.
func NewRedisLocker(client *redis.Client, tokens uid.Generator) (*RedisLocker, error) {
	if client == nil {
		return nil, errors.New("lock: redis client is required")
	}
	if tokens == nil {
		return nil, errors.New("lock: token generator is required")
	}
	return &RedisLocker{store: redisScriptRunner{client: client}, tokens: tokens}, nil
}

func (l *RedisLocker) TryAcquire(ctx context.Context, key string, ttl time.Duration) (Lease, bool, error) {
	if ttl <= 0 {
		return nil, false, fmt.Errorf("lock: ttl must be positive")
	}

	token, err := l.tokens.Generate(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("lock: failed to generate holder token: %w", err)
	}

	acquired, err := l.store.setNX(ctx, key, token, ttl)
	if err != nil {
		return nil, false, fmt.Errorf("lock: failed to acquire %q: %w", key, err)
	}
	if !acquired {
		return nil, false, nil
	}

	return &redisLease{store: l.store, key: key, token: token}, true, nil
}

type redisLease struct {
	store scriptRunner
	key   string
	token string
}

func (l *redisLease) Key() string { return l.key }

func (l *redisLease) Release(ctx context.Context) error {
	if _, err := l.store.runScript(ctx, releaseScript, []string{l.key}, l.token); err != nil {
		return fmt.Errorf("lock: failed to release %q: %w", l.key, err)
	}
	return nil
}
