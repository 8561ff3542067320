package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"petstay-backend/internal/infra/feepolicy"
	"petstay-backend/internal/pkg/config"
	"petstay-backend/internal/usecase/commands"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewFeePolicySource,
	),
)

func NewFeePolicySource(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.FeePolicySource, error) {
	if !cfg.Redis.Enabled {
		logger.Info("Redis disabled, using configured fee policy")
		return feepolicy.NewStaticSource(cfg.Fee), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return feepolicy.NewRedisSource(client, cfg.Fee), nil
}
