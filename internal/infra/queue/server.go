package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stay-booking/internal/pkg/config"

	"github.com/hibiken/asynq"
)

func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func NewClient(cfg config.RedisConfig) *asynq.Client {
	return asynq.NewClient(RedisOpt(cfg))
}

// NewServer weights notifications over maintenance so a long completion
// batch never starves outgoing mail.
func NewServer(redis config.RedisConfig, worker config.WorkerConfig, logger *slog.Logger) *asynq.Server {
	return asynq.NewServer(RedisOpt(redis), asynq.Config{
		Concurrency: worker.Concurrency,
		Queues: map[string]int{
			QueueNotifications: 6,
			QueueMaintenance:   1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			maxRetry, _ := asynq.GetMaxRetry(ctx)
			logger.WarnContext(ctx, "task failed",
				"type", task.Type(),
				"retried", retried,
				"max_retry", maxRetry,
				"error", err.Error())
		}),
	})
}

// NewScheduler registers the periodic completion sweep.
func NewScheduler(redis config.RedisConfig, worker config.WorkerConfig) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(RedisOpt(redis), &asynq.SchedulerOpts{})
	if _, err := scheduler.Register(worker.CompleteElapsedCron, NewCompleteElapsedTask(),
		asynq.Queue(QueueMaintenance),
		asynq.Unique(30*time.Minute),
		asynq.MaxRetry(1),
	); err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", TypeCompleteElapsed, err)
	}
	return scheduler, nil
}
