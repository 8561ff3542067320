package bootstrap

import (
	"context"
	"log/slog"

	"petstay-backend/internal/infra/mq"
	"petstay-backend/internal/pkg/config"
	"petstay-backend/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
	),
)

type closablePublisher interface {
	commands.Publisher
	Close() error
}

// NewPublisher connects to RabbitMQ when enabled and falls back to logging
// the outbox messages otherwise.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.Publisher, error) {
	var pub closablePublisher
	if cfg.MQ.Enabled {
		p, err := mq.NewPublisher(cfg.MQ)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to message broker", "exchange", cfg.MQ.Exchange)
		pub = p
	} else {
		logger.Info("Message broker disabled, outbox messages will be logged")
		pub = mq.NewLoggingPublisher()
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
