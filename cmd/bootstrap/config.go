package bootstrap

import (
	"petstay-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.FeeConfig { return cfg.Fee },
		func(cfg config.Config) config.SchedulerConfig { return cfg.Scheduler },
	),
)
