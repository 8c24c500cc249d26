package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/zhou-jk/flashsale-api/internal/domain"
	"github.com/zhou-jk/flashsale-api/internal/domain/vo"
	"github.com/zhou-jk/flashsale-api/internal/shared/lock"
	"github.com/zhou-jk/flashsale-api/internal/shared/stream"
)

type OrderWriter interface {
	CountOrders(ctx context.Context, userID string, voucherID int64) (int64, error)
	CreateOrder(ctx context.Context, order domain.Order) error
}

// MaterializerOptions tunes the worker loop. Zero values fall back to defaults.
type MaterializerOptions struct {
	// BatchSize caps records fetched per read.
	BatchSize int64

	// UserLockTTL is the lease taken per user while writing one order.
	UserLockTTL time.Duration

	// RetryDelay is the pause after a failed read before the next attempt.
	RetryDelay time.Duration

	// ShutdownGrace bounds the final pending-list drain after Run's context
	// is canceled.
	ShutdownGrace time.Duration
}

const (
	defaultBatchSize     = 10
	defaultUserLockTTL   = 5 * time.Second
	defaultRetryDelay    = time.Second
	defaultShutdownGrace = 10 * time.Second
)

// Materializer is the asynchronous half of flash-sale ordering: it consumes
// admitted intake records and turns each into a durable order. Delivery is
// at-least-once, so every write re-checks the one-per-user rule against the
// database and decrements stock with a guarded update; records that lose
// either check are logged and acknowledged, never retried.
type Materializer struct {
	orders   OrderWriter
	consumer stream.Consumer
	locker   lock.Locker
	logger   *slog.Logger
	opts     MaterializerOptions
}

func NewMaterializer(
	orders OrderWriter,
	consumer stream.Consumer,
	locker lock.Locker,
	logger *slog.Logger,
	opts MaterializerOptions,
) (*Materializer, error) {
	if orders == nil {
		return nil, errors.New("service: order writer is required")
	}
	if consumer == nil {
		return nil, errors.New("service: stream consumer is required")
	}
	if locker == nil {
		return nil, errors.New("service: locker is required")
	}
	if logger == nil {
		return nil, errors.New("service: logger is required")
	}

	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.UserLockTTL <= 0 {
		opts.UserLockTTL = defaultUserLockTTL
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}
	if opts.ShutdownGrace <= 0 {
		opts.ShutdownGrace = defaultShutdownGrace
	}

	return &Materializer{
		orders:   orders,
		consumer: consumer,
		locker:   locker,
		logger:   logger,
		opts:     opts,
	}, nil
}

// Run consumes the intake stream until ctx is canceled, then drains the
// pending list within the shutdown grace so acknowledged-but-unwritten
// records are not left behind. The pending list is also drained before the
// first read, so records orphaned by an unclean stop are redelivered on
// restart, and after any read failure.
func (m *Materializer) Run(ctx context.Context) {
	m.recoverPending(ctx)

	for ctx.Err() == nil {
		messages, err := m.consumer.ReadNext(ctx, m.opts.BatchSize)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			m.logger.ErrorContext(ctx, "failed to read intake records", "error", err)
			m.recoverPending(ctx)
			m.sleep(ctx, m.opts.RetryDelay)
			continue
		}

		for _, msg := range messages {
			if err := m.process(ctx, msg); err != nil {
				m.logger.ErrorContext(ctx, "failed to process intake record",
					"record_id", msg.ID, "error", err)
				m.recoverPending(ctx)
				break
			}
		}
	}

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.opts.ShutdownGrace)
	defer cancel()
	m.recoverPending(drainCtx)
}

// recoverPending replays this consumer's delivered-but-unacknowledged records
// until the backlog is empty. Runs at startup, after any read or processing
// failure and on shutdown, so a crash between delivery and acknowledgment
// loses nothing.
func (m *Materializer) recoverPending(ctx context.Context) {
	for ctx.Err() == nil {
		messages, err := m.consumer.ReadPending(ctx, m.opts.BatchSize)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			m.logger.ErrorContext(ctx, "failed to read pending records", "error", err)
			m.sleep(ctx, m.opts.RetryDelay)
			continue
		}
		if len(messages) == 0 {
			return
		}

		for _, msg := range messages {
			if err := m.process(ctx, msg); err != nil {
				m.logger.ErrorContext(ctx, "failed to process pending record",
					"record_id", msg.ID, "error", err)
				m.sleep(ctx, m.opts.RetryDelay)
				break
			}
		}
	}
}

func (m *Materializer) process(ctx context.Context, msg stream.Message) error {
	if err := m.handle(ctx, msg); err != nil {
		return err
	}
	if err := m.consumer.Ack(ctx, msg.ID); err != nil {
		return fmt.Errorf("service: failed to acknowledge record %s: %w", msg.ID, err)
	}
	return nil
}

// handle materializes one intake record. A nil return means the record is
// settled, either written or deliberately dropped, and must be acknowledged;
// an error means infra trouble and the record stays pending.
func (m *Materializer) handle(ctx context.Context, msg stream.Message) error {
	order, err := parseIntakeRecord(msg)
	if err != nil {
		// Malformed records can never succeed; drop rather than wedge the loop.
		m.logger.WarnContext(ctx, "dropping malformed intake record",
			"record_id", msg.ID, "error", err)
		return nil
	}

	lease, acquired, err := m.locker.TryAcquire(ctx, lock.Key("order", order.UserID), m.opts.UserLockTTL)
	if err != nil {
		return fmt.Errorf("service: failed to acquire user lock: %w", err)
	}
	if !acquired {
		m.logger.WarnContext(ctx, "dropping intake record, user order already in flight",
			"record_id", msg.ID, "user_id", order.UserID, "voucher_id", order.VoucherID)
		return nil
	}
	defer func() {
		if err := lease.Release(ctx); err != nil {
			m.logger.WarnContext(ctx, "failed to release user lock",
				"user_id", order.UserID, "error", err)
		}
	}()

	count, err := m.orders.CountOrders(ctx, order.UserID, order.VoucherID)
	if err != nil {
		return fmt.Errorf("service: failed to check existing orders: %w", err)
	}
	if count > 0 {
		m.logger.InfoContext(ctx, "dropping duplicate intake record",
			"record_id", msg.ID, "user_id", order.UserID, "voucher_id", order.VoucherID)
		return nil
	}

	if err := m.orders.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, vo.ErrOutOfStock) {
			m.logger.WarnContext(ctx, "dropping intake record, durable stock exhausted",
				"record_id", msg.ID, "voucher_id", order.VoucherID)
			return nil
		}
		return fmt.Errorf("service: failed to create order: %w", err)
	}

	m.logger.InfoContext(ctx, "order materialized",
		"order_id", order.ID, "user_id", order.UserID, "voucher_id", order.VoucherID)
	return nil
}

func parseIntakeRecord(msg stream.Message) (domain.Order, error) {
	orderID, err := fieldUint64(msg, "orderId")
	if err != nil {
		return domain.Order{}, err
	}
	userID, err := fieldString(msg, "userId")
	if err != nil {
		return domain.Order{}, err
	}
	voucherID, err := fieldInt64(msg, "voucherId")
	if err != nil {
		return domain.Order{}, err
	}
	return domain.Order{ID: orderID, UserID: userID, VoucherID: voucherID}, nil
}

func fieldString(msg stream.Message, name string) (string, error) {
	raw, ok := msg.Values[name]
	if !ok {
		return "", fmt.Errorf("service: record %s is missing field %q", msg.ID, name)
	}
	value, ok := raw.(string)
	if !ok || value == "" {
		return "", fmt.Errorf("service: record %s has invalid field %q", msg.ID, name)
	}
	return value, nil
}

func fieldUint64(msg stream.Message, name string) (uint64, error) {
	value, err := fieldString(msg, name)
	if err != nil {
		return 0, err
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("service: record %s has invalid field %q: %w", msg.ID, name, err)
	}
	return parsed, nil
}

func fieldInt64(msg stream.Message, name string) (int64, error) {
	value, err := fieldString(msg, name)
	if err != nil {
		return 0, err
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("service: record %s has invalid field %q: %w", msg.ID, name, err)
	}
	return parsed, nil
}

func (m *Materializer) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
