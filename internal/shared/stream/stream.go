// Package stream provides consumer-group access to an append-only record log.
// Each appended record is delivered to exactly one consumer in the group and
// stays on the group's pending list until acknowledged, so a consumer crash
// never loses a record: delivery is at-least-once and handlers must be idempotent.
package stream

import "context"

// Message is one record delivered from the log.
type Message struct {
	// ID is the store-assigned record id; acknowledgments are keyed by it.
	ID string

	// Values is the record's flat string-keyed field map.
	Values map[string]interface{}
}

// Consumer reads records on behalf of a named consumer within a consumer group.
// Implementations must be safe for concurrent use.
type Consumer interface {
	// ReadNext returns up to count records past the group's last-delivered
	// offset, blocking up to the configured poll timeout when the log tail is
	// empty. An empty result with a nil error means the timeout elapsed.
	ReadNext(ctx context.Context, count int64) ([]Message, error)

	// ReadPending returns up to count records from the group's pending list:
	// records delivered to this consumer but never acknowledged, oldest first.
	// An empty result means the backlog is drained.
	ReadPending(ctx context.Context, count int64) ([]Message, error)

	// Ack marks the record as successfully processed, removing it from the
	// pending list.
	Ack(ctx context.Context, id string) error
}
