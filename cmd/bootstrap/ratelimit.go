package bootstrap

import (
	"log/slog"

	"code-lookup/internal/pkg/clock"
	"code-lookup/internal/pkg/config"
	"code-lookup/internal/pkg/metrics"
	"code-lookup/internal/pkg/ratelimit"
	"code-lookup/internal/usecase/shared"

	"go.uber.org/fx"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			NewRateLimiter,
			fx.As(new(shared.RateLimiter)),
		),
	),
)

func NewRateLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) *ratelimit.Limiter {
	limiter := ratelimit.New(ratelimit.Options{
		Attempts:   cfg.RateLimit.Attempts,
		Window:     cfg.RateLimit.Window(),
		Shards:     cfg.RateLimit.Shards,
		SweepEvery: cfg.RateLimit.SweepEvery,
	}, clk)

	untrack := metrics.TrackLimiter(limiter.Len)
	lc.Append(fx.StopHook(untrack))

	logger.Info("rate limiter configured",
		"attempts", cfg.RateLimit.Attempts,
		"window_sec", cfg.RateLimit.WindowSec,
		"shards", cfg.RateLimit.Shards)
	return limiter
}
