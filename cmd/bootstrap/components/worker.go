package components

import (
	"log/slog"

	"stay-booking/internal/infra/mail"
	"stay-booking/internal/infra/queue"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/notify"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cfg config.Config) (mail.Sender, error) {
			return mail.NewSender(cfg.Mail)
		},
		func(recipients notify.RecipientLookup, client queue.Enqueuer, cfg config.Config) (*queue.EmailHandler, error) {
			return queue.NewEmailHandler(recipients, client, cfg.Notify)
		},
		queue.NewDeliveryHandler,
		func(booking commands.BookingCommands) *queue.MaintenanceHandler {
			return queue.NewMaintenanceHandler(booking)
		},
		queue.NewServeMux,
		func(cfg config.Config, logger *slog.Logger) *asynq.Server {
			return queue.NewServer(cfg.Redis, cfg.Worker, logger)
		},
		func(cfg config.Config) (*asynq.Scheduler, error) {
			return queue.NewScheduler(cfg.Redis, cfg.Worker)
		},
	),
)
