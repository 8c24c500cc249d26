package uid

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// counterBits is the width of the per-second sequence component.
const counterBits = 32

// sequenceEpoch is the fixed epoch the timestamp component counts from.
var sequenceEpoch = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

var _ SequenceGenerator = (*redisSequence)(nil)

// redisSequence composes a seconds-since-epoch timestamp (high 32 bits) with a
// Redis-atomic counter (low 32 bits). The counter key rolls over daily so a
// single key never grows unbounded; uniqueness holds because the timestamp
// component advances every second.
type redisSequence struct {
	client *redis.Client
}

// NewRedisSequence creates a Redis-backed SequenceGenerator.
func NewRedisSequence(client *redis.Client) (SequenceGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("uid: redis client is required")
	}
	return &redisSequence{client: client}, nil
}

func (g *redisSequence) NextID(ctx context.Context, scope string) (uint64, error) {
	if scope == "" {
		return 0, fmt.Errorf("uid: scope is required")
	}

	now := time.Now().UTC()
	counterKey := fmt.Sprintf("icr:%s:%s", scope, now.Format("2006:01:02"))

	seq, err := g.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("uid: failed to advance %q sequence: %w", scope, err)
	}

	return composeID(uint64(now.Unix()-sequenceEpoch.Unix()), uint64(seq)), nil
}

func composeID(timestamp, sequence uint64) uint64 {
	return timestamp<<counterBits | (sequence & (1<<counterBits - 1))
}
