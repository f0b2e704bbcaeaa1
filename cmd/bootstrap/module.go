package bootstrap

import (
	"stay-booking/cmd/bootstrap/components"
	"stay-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// Module assembles the API process.
func Module(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		MetricsModule,
		JWTModule,
		Persistence(cfg),
		Notification(cfg),
		components.UseCaseModule,
		components.HandlerModule,
	)
}

func Persistence(cfg config.Config) fx.Option {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		return components.MemoryPersistenceModule
	}
	return fx.Options(DBModule, components.PersistenceModule)
}

func Notification(cfg config.Config) fx.Option {
	if cfg.Notify.Driver == config.NotifyDriverAsynq {
		return fx.Options(QueueModule, components.AsynqNotificationModule)
	}
	return components.LogNotificationModule
}

// WorkerNotification always provides the queue client, which the worker uses
// to fan out mail deliveries even when events are only logged.
func WorkerNotification(cfg config.Config) fx.Option {
	if cfg.Notify.Driver == config.NotifyDriverAsynq {
		return fx.Options(QueueModule, components.AsynqNotificationModule)
	}
	return fx.Options(QueueModule, components.LogNotificationModule)
}
