package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"groomer-crm/internal/infra/db"
	"groomer-crm/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const dbConnectTimeout = 15 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB connects eagerly so a bad DSN fails fx startup instead of the first request.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(func() {
		stat := pool.Stat()
		logger.Info("closing database pool", "acquired", stat.AcquiredConns(), "total", stat.TotalConns())
		cleanup()
	}))
	return pool, nil
}
