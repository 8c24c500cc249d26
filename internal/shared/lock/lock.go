// Package lock provides short-lived exclusive leases on named resources,
// backed by a shared store. Leases are not renewed: callers must size the
// TTL to exceed the expected critical-section duration.
package lock

import (
	"context"
	"fmt"
	"time"
)

// Locker grants leases. Implementations must be safe for concurrent use.
type Locker interface {
	// TryAcquire attempts to take the lease for key without blocking.
	// Returns (lease, true, nil) on success and (nil, false, nil) when the
	// key is currently held by someone else. Callers that need retry with
	// backoff implement it themselves.
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (Lease, bool, error)
}

// Lease is one holder's claim on a key. Release is a no-op if the lease
// already expired or was taken over by another holder.
type Lease interface {
	// Key returns the resource key the lease was taken on.
	Key() string

	// Release gives the lease back. Safe to call after expiry.
	Release(ctx context.Context) error
}

// Key builds a lock key in the `lock:<kind>:<id>` namespace.
func Key(kind, id string) string {
	return fmt.Sprintf("lock:%s:%s", kind, id)
}
