package bootstrap

import (
	"context"
	"log/slog"

	"groomer-crm/internal/handler"
	"groomer-crm/internal/handler/middleware"
	"groomer-crm/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewRateLimiters,
		fx.Annotate(
			NewHealthChecks,
			fx.ResultTags(`name:"health_checks"`),
		),
	),
)

// NewRedis returns nil when REDIS_ADDR is unset.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.Redis.Enabled() {
		logger.Info("Redis not configured, rate limiting is per process")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// The limiter fails open, so a missing Redis must not block startup.
				logger.Warn("Redis unreachable at startup", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

func NewRateLimiters(cfg config.Config, rdb *redis.Client) middleware.RateLimiters {
	rl := cfg.RateLimit
	if rdb == nil {
		return middleware.RateLimiters{
			Auth: middleware.NewLocalLimiter(rl.AuthLimit, rl.Window),
			API:  middleware.NewLocalLimiter(rl.Limit, rl.Window),
		}
	}
	return middleware.RateLimiters{
		Auth: middleware.NewRedisLimiter(rdb, rl.AuthLimit, rl.Window, "rl:auth"),
		API:  middleware.NewRedisLimiter(rdb, rl.Limit, rl.Window, "rl:api"),
	}
}

func NewHealthChecks(pool *pgxpool.Pool, rdb *redis.Client) map[string]handler.Pinger {
	checks := map[string]handler.Pinger{"database": pool}
	if rdb != nil {
		checks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	return checks
}
