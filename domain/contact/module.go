package contact

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/DevPedroAugusto-BR/data-beacon-launch/internal/config"
	"github.com/DevPedroAugusto-BR/data-beacon-launch/pkg/logger"
)

const (
	limiterPruneInterval = 5 * time.Minute
	limiterIdleTimeout   = 15 * time.Minute
)

// Module provides the contact form flow
var Module = fx.Module("contact",
	fx.Provide(
		NewSender,
		NewService,
		NewRateLimiterFromConfig,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(RegisterLimiterLifecycle),
)

// NewRateLimiterFromConfig builds the per-client limiter from config.
func NewRateLimiterFromConfig(cfg *config.Config) *RateLimiter {
	return NewRateLimiter(cfg.Contact.RateLimitPerMinute, cfg.Contact.RateLimitBurst)
}

// RegisterLimiterLifecycle periodically forgets idle clients.
func RegisterLimiterLifecycle(lc fx.Lifecycle, limiter *RateLimiter, log *slog.Logger) {
	log = log.With(logger.Scope("contact.ratelimit"))
	stop := make(chan struct{})
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(limiterPruneInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := limiter.Prune(limiterIdleTimeout); n > 0 {
							log.Debug("pruned idle clients", slog.Int("removed", n))
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
