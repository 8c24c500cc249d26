package app

import (
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/zhou-jk/flashsale-api/internal/handlers"
	"github.com/zhou-jk/flashsale-api/internal/repository"
	"github.com/zhou-jk/flashsale-api/internal/services"
	sharedcache "github.com/zhou-jk/flashsale-api/internal/shared/cache"
	"github.com/zhou-jk/flashsale-api/internal/shared/config"
	sharedidempotency "github.com/zhou-jk/flashsale-api/internal/shared/idempotency"
)

const defaultIntakeStream = "stream.orders"

func VoucherModule() fx.Option {
	return fx.Module("voucher",
		fx.Provide(
			fx.Annotate(
				repository.NewVoucherOrderRepository,
				fx.As(new(services.VoucherReader)),
			),
			fx.Annotate(
				provideAdmissionRepository,
				fx.As(new(services.SeckillAdmitter)),
			),
			fx.Annotate(
				services.NewSeckillService,
				fx.As(new(handlers.SeckillOrderService)),
			),
			fx.Annotate(
				provideVoucherQueryService,
				fx.As(new(handlers.VoucherQueryService)),
			),
			fx.Annotate(
				sharedidempotency.NewSQLXStore,
				fx.ResultTags(`name:"order_idempotency_store"`),
				fx.As(new(sharedidempotency.Store)),
			),
			fx.Annotate(
				provideSeckillRateLimiter,
				fx.ResultTags(`name:"seckill_rate_limiter"`),
			),
			handlers.NewSeckillOrderHandler,
			handlers.NewVoucherQueryHandler,
		),
		fx.Invoke(registerVoucherRoutes),
	)
}

func provideAdmissionRepository(cfg config.Provider, client *redis.Client) (*repository.SeckillAdmissionRepository, error) {
	return repository.NewSeckillAdmissionRepository(client, intakeStreamName(cfg))
}

func provideVoucherQueryService(cfg config.Provider, vouchers services.VoucherReader, cacheClient *sharedcache.Client) *services.VoucherQueryService {
	return services.NewVoucherQueryService(vouchers, cacheClient, cfg.GetDuration("cache.voucher_ttl"))
}

func intakeStreamName(cfg config.Provider) string {
	stream := strings.TrimSpace(cfg.GetString("seckill.intake_stream"))
	if stream == "" {
		stream = defaultIntakeStream
	}
	return stream
}
