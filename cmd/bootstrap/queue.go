package bootstrap

import (
	"context"

	"stay-booking/internal/infra/queue"
	"stay-booking/internal/pkg/config"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewQueueClient,
		func(c *asynq.Client) queue.Enqueuer { return c },
	),
)

func NewQueueClient(lc fx.Lifecycle, cfg config.Config) *asynq.Client {
	client := queue.NewClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}
