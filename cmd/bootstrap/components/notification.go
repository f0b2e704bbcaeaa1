package components

import (
	"log/slog"

	"stay-booking/internal/infra/queue"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/usecase/notify"

	"go.uber.org/fx"
)

var AsynqNotificationModule = fx.Module("notification/asynq",
	fx.Provide(
		func(client queue.Enqueuer, cfg config.Config) notify.Notifier {
			return queue.NewAsynqNotifier(client, cfg.Notify)
		},
	),
)

var LogNotificationModule = fx.Module("notification/log",
	fx.Provide(
		func(logger *slog.Logger) notify.Notifier {
			return queue.NewLogNotifier(logger)
		},
	),
)
