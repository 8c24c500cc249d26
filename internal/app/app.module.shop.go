package app

import (
	"go.uber.org/fx"

	"github.com/zhou-jk/flashsale-api/internal/handlers"
	"github.com/zhou-jk/flashsale-api/internal/repository"
	"github.com/zhou-jk/flashsale-api/internal/services"
	sharedcache "github.com/zhou-jk/flashsale-api/internal/shared/cache"
	"github.com/zhou-jk/flashsale-api/internal/shared/config"
)

func ShopModule() fx.Option {
	return fx.Module("shop",
		fx.Provide(
			fx.Annotate(
				repository.NewShopRepository,
				fx.As(new(services.ShopRepository)),
			),
			fx.Annotate(
				provideShopQueryService,
				fx.As(new(handlers.ShopService)),
			),
			handlers.NewShopHandler,
		),
		fx.Invoke(registerShopRoutes),
	)
}

func provideShopQueryService(cfg config.Provider, repository services.ShopRepository, cacheClient *sharedcache.Client) *services.ShopQueryService {
	return services.NewShopQueryService(repository, cacheClient, cfg.GetDuration("cache.shop_fresh_for"))
}
