package main

import (
	"context"
	"log/slog"
	"os"

	"stay-booking/cmd/bootstrap"
	"stay-booking/cmd/bootstrap/components"
	"stay-booking/internal/pkg/config"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

func startWorker(lc fx.Lifecycle, srv *asynq.Server, mux *asynq.ServeMux, scheduler *asynq.Scheduler, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting worker",
				"concurrency", cfg.Worker.Concurrency,
				"complete_elapsed_cron", cfg.Worker.CompleteElapsedCron)
			if err := srv.Start(mux); err != nil {
				return err
			}
			return scheduler.Start()
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping worker")
			scheduler.Shutdown()
			srv.Shutdown()
			return nil
		},
	})
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	// the worker reads recipients from Postgres and completes reservations there
	cfg.Storage.Driver = config.StorageDriverPostgres

	app := fx.New(
		bootstrap.ConfigModule(cfg),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.Persistence(cfg),
		bootstrap.WorkerNotification(cfg),
		components.UseCaseModule,
		components.WorkerModule,
		fx.Invoke(startWorker),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start worker", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop worker cleanly", "error", err)
	}
}
