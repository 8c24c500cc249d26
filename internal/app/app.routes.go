package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/zhou-jk/flashsale-api/internal/handlers"
	"github.com/zhou-jk/flashsale-api/internal/middlewares"
	sharedidempotency "github.com/zhou-jk/flashsale-api/internal/shared/idempotency"
	sharedjwt "github.com/zhou-jk/flashsale-api/internal/shared/jwt"
	sharedratelimit "github.com/zhou-jk/flashsale-api/internal/shared/ratelimit"
)

type routerGroupsOut struct {
	fx.Out
	Public    fiber.Router `name:"api_public"`
	Protected fiber.Router `name:"api_protected"`
}

func provideRouterGroups(
	app *fiber.App,
	logger *slog.Logger,
	tokenManager sharedjwt.TokenManager,
) routerGroupsOut {
	app.Use(middlewares.NewHTTPRecoveryMiddleware())
	app.Use(middlewares.NewHTTPRequestIDMiddleware())
	app.Use(middlewares.NewHTTPCORSMiddleware())
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	protected := api.Group("", middlewares.NewHTTPJWTMiddleware(tokenManager))

	return routerGroupsOut{
		Public:    api,
		Protected: protected,
	}
}

type authRoutesIn struct {
	fx.In
	Public  fiber.Router `name:"api_public"`
	Handler *handlers.AuthLoginHandler
}

func registerAuthRoutes(in authRoutesIn) {
	in.Handler.Register(in.Public)
}

type voucherRoutesIn struct {
	fx.In
	Public           fiber.Router            `name:"api_public"`
	Protected        fiber.Router            `name:"api_protected"`
	IdempotencyStore sharedidempotency.Store `name:"order_idempotency_store"`
	RateLimiter      sharedratelimit.Limiter `name:"seckill_rate_limiter"`
	Logger           *slog.Logger
	OrderHandler     *handlers.SeckillOrderHandler
	QueryHandler     *handlers.VoucherQueryHandler
}

func registerVoucherRoutes(in voucherRoutesIn) {
	rateLimitMiddleware := middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Limiter:      in.RateLimiter,
		Logger:       in.Logger,
		KeyExtractor: middlewares.PerUserKeyExtractor("seckill"),
	})

	orderRouter := in.Protected.Group("", rateLimitMiddleware, middlewares.NewHTTPOrderIdempotencyMiddleware(in.IdempotencyStore))
	in.OrderHandler.Register(orderRouter)
	in.QueryHandler.Register(in.Public)
}

type shopRoutesIn struct {
	fx.In
	Protected fiber.Router `name:"api_protected"`
	Handler   *handlers.ShopHandler
}

func registerShopRoutes(in shopRoutesIn) {
	in.Handler.Register(in.Protected)
}
