package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zhou-jk/flashsale-api/internal/shared/config"
	sharedratelimit "github.com/zhou-jk/flashsale-api/internal/shared/ratelimit"
)

func provideRedisClient(cfg config.Provider) *redis.Client {
	host := strings.TrimSpace(cfg.GetString("redis.host"))
	if host == "" {
		host = "localhost"
	}

	port := cfg.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})
}

func provideSeckillRateLimiter(cfg config.Provider, redisClient *redis.Client, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	if redisClient == nil {
		return nil, fmt.Errorf("app: redis client is required for seckill rate limiter")
	}

	limit := cfg.GetInt("rate_limit.seckill.limit")
	if limit <= 0 {
		limit = 20
	}

	window := cfg.GetDuration("rate_limit.seckill.window")
	if window <= 0 {
		window = time.Minute
	}

	algorithm := parseRateLimitAlgorithm(cfg.GetString("rate_limit.seckill.algorithm"))
	store := sharedratelimit.NewRedisStore(redisClient, sharedratelimit.WithRedisPrefix("flashsale-api:seckill"))

	return sharedratelimit.New(store, sharedratelimit.Config{
		Algorithm: algorithm,
		Limit:     int64(limit),
		Window:    window,
		OnLimited: func(_ context.Context, key string, result sharedratelimit.Result) {
			if logger != nil {
				logger.Warn("rate limit exceeded", "scope", "seckill", "key", key, "limit", result.Limit)
			}
		},
	})
}

func parseRateLimitAlgorithm(value string) sharedratelimit.Algorithm {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "sliding_window":
		return sharedratelimit.AlgorithmSlidingWindow
	default:
		return sharedratelimit.AlgorithmFixedWindow
	}
}
