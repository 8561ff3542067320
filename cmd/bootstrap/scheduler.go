package bootstrap

import (
	"context"
	"log/slog"

	"petstay-backend/internal/job"
	"petstay-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		job.NewScheduler,
	),
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, scheduler *job.Scheduler, logger *slog.Logger) error {
	if !cfg.Scheduler.Enabled {
		logger.Info("Scheduler disabled")
		return nil
	}
	if err := scheduler.Register(); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
	return nil
}
