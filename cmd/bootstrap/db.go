package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"code-lookup/internal/infra/db"
	sqlc "code-lookup/internal/infra/sqlc/generated"
	"code-lookup/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const initTimeout = 30 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	var seed []db.SeedRecord
	if cfg.DB.SeedOnEmpty {
		seed = db.DefaultSeed
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, initTimeout)
			defer cancel()
			if err := db.Initialize(ctx, pool, sqlc.New(), seed); err != nil {
				return err
			}
			logger.Info("database initialized", "seed_on_empty", cfg.DB.SeedOnEmpty)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
