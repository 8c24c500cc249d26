package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/zhou-jk/flashsale-api/internal/repository"
	"github.com/zhou-jk/flashsale-api/internal/services"
	"github.com/zhou-jk/flashsale-api/internal/shared/config"
	sharedlock "github.com/zhou-jk/flashsale-api/internal/shared/lock"
	"github.com/zhou-jk/flashsale-api/internal/shared/stream"
)

const (
	defaultIntakeGroup    = "g1"
	defaultIntakeConsumer = "c1"
)

// WorkerModule runs the order materializer: it drains the intake stream into
// the database for as long as the process lives.
func WorkerModule() fx.Option {
	return fx.Module("worker",
		fx.Provide(
			provideIntakeConsumer,
			provideMaterializer,
		),
		fx.Invoke(registerMaterializerLifecycle),
	)
}

func provideIntakeConsumer(cfg config.Provider, client *redis.Client) (stream.Consumer, error) {
	group := strings.TrimSpace(cfg.GetString("seckill.intake_group"))
	if group == "" {
		group = defaultIntakeGroup
	}

	consumer := strings.TrimSpace(cfg.GetString("seckill.intake_consumer"))
	if consumer == "" {
		consumer = defaultIntakeConsumer
	}

	initCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisConsumer, err := stream.NewRedisConsumer(initCtx, client, intakeStreamName(cfg), group, consumer)
	if err != nil {
		return nil, fmt.Errorf("app: failed to init intake consumer: %w", err)
	}

	return redisConsumer, nil
}

func provideMaterializer(
	cfg config.Provider,
	db *sqlx.DB,
	consumer stream.Consumer,
	locker sharedlock.Locker,
	logger *slog.Logger,
) (*services.Materializer, error) {
	orders := repository.NewVoucherOrderRepository(db)

	return services.NewMaterializer(orders, consumer, locker, logger, services.MaterializerOptions{
		BatchSize:     int64(cfg.GetInt("seckill.worker.batch_size")),
		UserLockTTL:   cfg.GetDuration("seckill.worker.user_lock_ttl"),
		RetryDelay:    cfg.GetDuration("seckill.worker.retry_delay"),
		ShutdownGrace: cfg.GetDuration("seckill.worker.shutdown_grace"),
	})
}

func registerMaterializerLifecycle(
	lifecycle fx.Lifecycle,
	materializer *services.Materializer,
	logger *slog.Logger,
) {
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				materializer.Run(runCtx)
			}()

			logger.Info("order materializer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()

			select {
			case <-done:
				logger.Info("order materializer stopped")
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
