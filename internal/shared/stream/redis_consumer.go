package stream

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultBlockTimeout = 2 * time.Second

var _ Consumer = (*RedisConsumer)(nil)

// RedisConsumer reads a Redis stream through XREADGROUP/XACK.
type RedisConsumer struct {
	client   *redis.Client
	stream   string
	group    string
	consumer string
	block    time.Duration
}

// RedisConsumerOption configures the consumer.
type RedisConsumerOption func(*RedisConsumer)

// WithBlockTimeout bounds how long ReadNext blocks waiting for new records.
func WithBlockTimeout(block time.Duration) RedisConsumerOption {
	return func(c *RedisConsumer) {
		if block > 0 {
			c.block = block
		}
	}
}

// NewRedisConsumer creates the consumer group on the stream if it does not
// exist yet (the stream itself is created empty when missing) and returns a
// Consumer bound to the given group and consumer names.
func NewRedisConsumer(ctx context.Context, client *redis.Client, stream, group, consumer string, opts ...RedisConsumerOption) (*RedisConsumer, error) {
	if client == nil {
		return nil, errors.New("stream: redis client is required")
	}
	if stream == "" || group == "" || consumer == "" {
		return nil, errors.New("stream: stream, group and consumer names are required")
	}

	c := &RedisConsumer{
		client:   client,
		stream:   stream,
		group:    group,
		consumer: consumer,
		block:    defaultBlockTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := client.XGroupCreateMkStream(ctx, stream, group, "0").Err(); err != nil && !isBusyGroup(err) {
		return nil, fmt.Errorf("stream: failed to create consumer group %q on %q: %w", group, stream, err)
	}

	return c, nil
}

func (c *RedisConsumer) ReadNext(ctx context.Context, count int64) ([]Message, error) {
	return c.read(ctx, count, ">", c.block)
}

func (c *RedisConsumer) ReadPending(ctx context.Context, count int64) ([]Message, error) {
	return c.read(ctx, count, "0", 0)
}

func (c *RedisConsumer) read(ctx context.Context, count int64, offset string, block time.Duration) ([]Message, error) {
	if count <= 0 {
		count = 1
	}

	args := &redis.XReadGroupArgs{
		Group:    c.group,
		Consumer: c.consumer,
		Streams:  []string{c.stream, offset},
		Count:    count,
	}
	if block > 0 {
		args.Block = block
	} else {
		// A zero Block would wait forever; -1 disables blocking entirely.
		args.Block = -1
	}

	results, err := c.client.XReadGroup(ctx, args).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("stream: failed to read %q at offset %q: %w", c.stream, offset, err)
	}

	var messages []Message
	for _, result := range results {
		for _, entry := range result.Messages {
			messages = append(messages, Message{ID: entry.ID, Values: entry.Values})
		}
	}
	return messages, nil
}

func (c *RedisConsumer) Ack(ctx context.Context, id string) error {
	if err := c.client.XAck(ctx, c.stream, c.group, id).Err(); err != nil {
		return fmt.Errorf("stream: failed to ack %q: %w", id, err)
	}
	return nil
}

func isBusyGroup(err error) bool {
	return err != nil && strings.Contains(err.Error(), "BUSYGROUP")
}
