package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/zhou-jk/flashsale-api/internal/shared/cache"
	"github.com/zhou-jk/flashsale-api/internal/shared/config"
	sharedhash "github.com/zhou-jk/flashsale-api/internal/shared/hash"
	sharedjwt "github.com/zhou-jk/flashsale-api/internal/shared/jwt"
	sharedlock "github.com/zhou-jk/flashsale-api/internal/shared/lock"
	sharedlog "github.com/zhou-jk/flashsale-api/internal/shared/log"
	shareduid "github.com/zhou-jk/flashsale-api/internal/shared/uid"
)

type configBinIn struct {
	fx.In
	Bin string `name:"bin"`
}

func New(bin string, modules ...fx.Option) *fx.App {
	normalizedBin := strings.TrimSpace(strings.ToLower(bin))
	opts := []fx.Option{
		fx.Supply(
			fx.Annotate(
				normalizedBin,
				fx.ResultTags(`name:"bin"`),
			),
		),
		CoreModule(),
	}
	opts = append(opts, modules...)
	opts = append(opts, fx.Invoke(registerLifecycle))
	return fx.New(opts...)
}

func CoreModule() fx.Option {
	return fx.Module("core",
		fx.Provide(
			provideConfig,
			sharedlog.NewJSONLogger,
			provideRedisClient,
			providePostgresSQLX,
			provideFiberApp,
			providePasswordHasher,
			provideJWTTokenManager,
			fx.Annotate(
				provideJWTTokenTTL,
				fx.ResultTags(`name:"jwt_ttl"`),
			),
			provideLockTokenGenerator,
			fx.Annotate(
				provideRedisLocker,
				fx.As(new(sharedlock.Locker)),
			),
			provideOrderSequence,
			provideCacheClient,
			provideRouterGroups,
		),
	)
}

func provideConfig(in configBinIn) (config.Provider, error) {
	bin := strings.TrimSpace(strings.ToLower(in.Bin))

	loadOrder := make([]config.Options, 0, 4)
	if bin == "api" || bin == "worker" {
		loadOrder = append(loadOrder,
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml", bin),
				EnvPath:  fmt.Sprintf(".env.%s", bin),
			},
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml.example", bin),
				EnvPath:  fmt.Sprintf(".env.%s.example", bin),
			},
		)
	}

	loadOrder = append(loadOrder,
		config.Options{
			YAMLPath: "config.yaml",
			EnvPath:  ".env",
		},
		config.Options{
			YAMLPath: "config.yaml.example",
			EnvPath:  ".env.example",
		},
	)

	var lastErr error
	for _, opts := range loadOrder {
		provider, err := config.Init(opts)
		if err == nil {
			return provider, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func provideFiberApp(cfg config.Provider) *fiber.App {
	readTimeout := cfg.GetDuration("server.read_timeout")
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	writeTimeout := cfg.GetDuration("server.write_timeout")
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	return fiber.New(fiber.Config{
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})
}

func providePasswordHasher() (sharedhash.Hasher, error) {
	return sharedhash.New(sharedhash.Options{Strategy: sharedhash.StrategyBcrypt})
}

func provideJWTTokenTTL(cfg config.Provider) time.Duration {
	ttl := cfg.GetDuration("security.jwt.ttl")
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return ttl
}

func provideJWTTokenManager(cfg config.Provider) (sharedjwt.TokenManager, error) {
	secret := cfg.GetString("security.jwt.secret")
	if secret == "" {
		secret = cfg.GetString("jwt.secret")
	}
	if secret == "" {
		secret = "change-me-please-use-strong-secret-in-production"
	}

	if len(secret) < 32 {
		secret = secret + strings.Repeat("x", 32-len(secret))
	}

	tokenManager, err := sharedjwt.New(sharedjwt.Options{
		Strategy:  sharedjwt.StrategyHMAC,
		Secret:    []byte(secret),
		Algorithm: "HS256",
		TTL:       provideJWTTokenTTL(cfg),
		Issuer:    cfg.GetString("security.jwt.issuer"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init JWT manager: %w", err)
	}

	return tokenManager, nil
}

func provideLockTokenGenerator() (shareduid.Generator, error) {
	return shareduid.New(shareduid.Options{Strategy: shareduid.StrategyUUIDv7})
}

func provideRedisLocker(client *redis.Client, tokens shareduid.Generator) (*sharedlock.RedisLocker, error) {
	return sharedlock.NewRedisLocker(client, tokens)
}

func provideOrderSequence(client *redis.Client) (shareduid.SequenceGenerator, error) {
	return shareduid.NewRedisSequence(client)
}

func provideCacheClient(
	cfg config.Provider,
	client *redis.Client,
	locker sharedlock.Locker,
	logger *slog.Logger,
) (*cache.Client, error) {
	store, err := cache.NewRedisStore(client)
	if err != nil {
		return nil, err
	}

	return cache.New(store, locker, logger, cache.Options{
		NullTTL:        cfg.GetDuration("cache.null_ttl"),
		JitterRatio:    cfg.GetFloat64("cache.jitter_ratio"),
		RefreshWorkers: cfg.GetInt("cache.refresh_workers"),
		RefreshLockTTL: cfg.GetDuration("cache.refresh_lock_ttl"),
		RefreshTimeout: cfg.GetDuration("cache.refresh_timeout"),
	})
}
