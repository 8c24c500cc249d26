package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhou-jk/flashsale-api/internal/shared/lock"
)

type testEntity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type memEntry struct {
	value string
	ttl   time.Duration
}

type memStore struct {
	mu      sync.Mutex
	entries map[string]memEntry
}

func newMemStore() *memStore {
	return &memStore{entries: map[string]memEntry{}}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	return entry.value, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memEntry{value: value, ttl: ttl}
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *memStore) entry(key string) (memEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	return entry, ok
}

type stubLocker struct {
	mu       sync.Mutex
	grants   int
	acquired int
	released int
}

func (l *stubLocker) TryAcquire(_ context.Context, key string, _ time.Duration) (lock.Lease, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.acquired >= l.grants {
		return nil, false, nil
	}
	l.acquired++
	return &stubLease{locker: l, key: key}, true, nil
}

func (l *stubLocker) stats() (int, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acquired, l.released
}

type stubLease struct {
	locker *stubLocker
	key    string
}

func (l *stubLease) Key() string { return l.key }

func (l *stubLease) Release(context.Context) error {
	l.locker.mu.Lock()
	defer l.locker.mu.Unlock()
	l.locker.released++
	return nil
}

func newTestClient(t *testing.T, store Store, locker lock.Locker) *Client {
	t.Helper()
	client, err := New(store, locker, nil, Options{NullTTL: time.Minute, JitterRatio: 0.1})
	require.NoError(t, err)
	return client
}

func staleEnvelope(t *testing.T, value testEntity) string {
	t.Helper()
	data, err := json.Marshal(value)
	require.NoError(t, err)
	raw, err := json.Marshal(envelope{Data: data, ExpireAt: time.Now().Add(-time.Minute)})
	require.NoError(t, err)
	return string(raw)
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("returns cached entry without loading", func(t *testing.T) {
		store := newMemStore()
		require.NoError(t, store.Set(ctx, "shop:1", `{"id":1,"name":"cached"}`, time.Minute))
		client := newTestClient(t, store, &stubLocker{})

		value, err := GetOrLoad(ctx, client, "shop:1", time.Minute, func(context.Context) (*testEntity, error) {
			t.Fatal("loader must not run on a cache hit")
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, &testEntity{ID: 1, Name: "cached"}, value)
	})

	t.Run("null marker short-circuits the durable lookup", func(t *testing.T) {
		store := newMemStore()
		require.NoError(t, store.Set(ctx, "shop:404", nullMarker, time.Minute))
		client := newTestClient(t, store, &stubLocker{})

		_, err := GetOrLoad(ctx, client, "shop:404", time.Minute, func(context.Context) (*testEntity, error) {
			t.Fatal("loader must not run while the null marker is fresh")
			return nil, nil
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("miss on a nonexistent id writes a null marker", func(t *testing.T) {
		store := newMemStore()
		client := newTestClient(t, store, &stubLocker{})

		_, err := GetOrLoad(ctx, client, "shop:404", time.Minute, func(context.Context) (*testEntity, error) {
			return nil, nil
		})
		assert.ErrorIs(t, err, ErrNotFound)

		entry, ok := store.entry("shop:404")
		require.True(t, ok)
		assert.Equal(t, nullMarker, entry.value)
		assert.Equal(t, time.Minute, entry.ttl)
	})

	t.Run("miss loads and writes with a jittered ttl", func(t *testing.T) {
		store := newMemStore()
		client := newTestClient(t, store, &stubLocker{})

		value, err := GetOrLoad(ctx, client, "shop:2", 10*time.Minute, func(context.Context) (*testEntity, error) {
			return &testEntity{ID: 2, Name: "loaded"}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, &testEntity{ID: 2, Name: "loaded"}, value)

		entry, ok := store.entry("shop:2")
		require.True(t, ok)
		assert.JSONEq(t, `{"id":2,"name":"loaded"}`, entry.value)
		assert.InDelta(t, float64(10*time.Minute), float64(entry.ttl), float64(time.Minute))
	})

	t.Run("loader errors propagate without caching", func(t *testing.T) {
		store := newMemStore()
		client := newTestClient(t, store, &stubLocker{})
		loadErr := errors.New("db down")

		_, err := GetOrLoad(ctx, client, "shop:3", time.Minute, func(context.Context) (*testEntity, error) {
			return nil, loadErr
		})
		assert.ErrorIs(t, err, loadErr)

		_, ok := store.entry("shop:3")
		assert.False(t, ok)
	})
}

func TestJitterTTL(t *testing.T) {
	client := newTestClient(t, newMemStore(), &stubLocker{})
	base := 10 * time.Minute

	for i := 0; i < 200; i++ {
		ttl := client.jitterTTL(base)
		assert.GreaterOrEqual(t, ttl, 9*time.Minute)
		assert.LessOrEqual(t, ttl, 11*time.Minute)
	}
}

func TestGetLogical(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh entry returns without touching the lock", func(t *testing.T) {
		store := newMemStore()
		locker := &stubLocker{grants: 1}
		client := newTestClient(t, store, locker)
		require.NoError(t, SetLogical(ctx, client, "shop:1", &testEntity{ID: 1, Name: "fresh"}, time.Minute))

		value, err := GetLogical(ctx, client, "shop:1", "lock:shop:1", time.Minute, func(context.Context) (*testEntity, error) {
			t.Fatal("loader must not run for a fresh entry")
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, &testEntity{ID: 1, Name: "fresh"}, value)

		acquired, _ := locker.stats()
		assert.Zero(t, acquired)
	})

	t.Run("absent key falls through to the durable source", func(t *testing.T) {
		store := newMemStore()
		client := newTestClient(t, store, &stubLocker{grants: 1})

		value, err := GetLogical(ctx, client, "shop:9", "lock:shop:9", time.Minute, func(context.Context) (*testEntity, error) {
			return &testEntity{ID: 9, Name: "cold"}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, &testEntity{ID: 9, Name: "cold"}, value)
	})

	t.Run("absent key and absent entity is not found", func(t *testing.T) {
		client := newTestClient(t, newMemStore(), &stubLocker{grants: 1})

		_, err := GetLogical(ctx, client, "shop:404", "lock:shop:404", time.Minute, func(context.Context) (*testEntity, error) {
			return nil, nil
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stale entry is served while one refresh rebuilds it", func(t *testing.T) {
		store := newMemStore()
		locker := &stubLocker{grants: 1}
		client := newTestClient(t, store, locker)
		require.NoError(t, store.Set(ctx, "shop:1", staleEnvelope(t, testEntity{ID: 1, Name: "stale"}), 0))

		release := make(chan struct{})
		var loads sync.WaitGroup
		loads.Add(1)
		var loadCount int32
		loader := func(context.Context) (*testEntity, error) {
			<-release
			loadCount++
			defer loads.Done()
			return &testEntity{ID: 1, Name: "rebuilt"}, nil
		}

		// First reader takes the lock and starts the background rebuild.
		value, err := GetLogical(ctx, client, "shop:1", "lock:shop:1", time.Minute, loader)
		require.NoError(t, err)
		assert.Equal(t, "stale", value.Name)

		// Second reader sees the lock held and serves stale without loading.
		value, err = GetLogical(ctx, client, "shop:1", "lock:shop:1", time.Minute, func(context.Context) (*testEntity, error) {
			t.Fatal("loser of the refresh lock must not load")
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "stale", value.Name)

		close(release)
		loads.Wait()

		require.Eventually(t, func() bool {
			entry, ok := store.entry("shop:1")
			if !ok {
				return false
			}
			var env envelope
			if err := json.Unmarshal([]byte(entry.value), &env); err != nil {
				return false
			}
			var rebuilt testEntity
			if err := json.Unmarshal(env.Data, &rebuilt); err != nil {
				return false
			}
			return rebuilt.Name == "rebuilt" && env.ExpireAt.After(time.Now())
		}, time.Second, 10*time.Millisecond)

		acquired, released := locker.stats()
		assert.Equal(t, 1, acquired)
		assert.Equal(t, 1, released)
		assert.Equal(t, int32(1), loadCount)
	})

	t.Run("lock contention leaves the entry untouched", func(t *testing.T) {
		store := newMemStore()
		locker := &stubLocker{grants: 0}
		client := newTestClient(t, store, locker)
		stale := staleEnvelope(t, testEntity{ID: 1, Name: "stale"})
		require.NoError(t, store.Set(ctx, "shop:1", stale, 0))

		value, err := GetLogical(ctx, client, "shop:1", "lock:shop:1", time.Minute, func(context.Context) (*testEntity, error) {
			t.Fatal("loader must not run without the refresh lock")
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "stale", value.Name)

		entry, _ := store.entry("shop:1")
		assert.Equal(t, stale, entry.value)
	})
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	client := newTestClient(t, store, &stubLocker{})
	require.NoError(t, store.Set(ctx, "shop:1", "value", 0))

	require.NoError(t, client.Invalidate(ctx, "shop:1"))
	_, ok := store.entry("shop:1")
	assert.False(t, ok)
}

func TestSetLogicalStoresWithoutStoreTTL(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	client := newTestClient(t, store, &stubLocker{})

	require.NoError(t, SetLogical(ctx, client, "shop:1", &testEntity{ID: 1, Name: "warm"}, time.Minute))

	entry, ok := store.entry("shop:1")
	require.True(t, ok)
	assert.Zero(t, entry.ttl)

	var env envelope
	require.NoError(t, json.Unmarshal([]byte(entry.value), &env))
	assert.True(t, env.ExpireAt.After(time.Now()))
	assert.JSONEq(t, `{"id":1,"name":"warm"}`, string(env.Data))
}
