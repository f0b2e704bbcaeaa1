package queue

import (
	"context"
	"log/slog"
	"time"

	"stay-booking/internal/pkg/config"
	"stay-booking/internal/usecase/notify"

	"github.com/hibiken/asynq"
)

//go:generate mockgen -source=notifier.go -destination=../../../tests/mock/queue/notifier_mock.go -package=queuemock

// Enqueuer is the subset of *asynq.Client the notifier uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqNotifier turns events into queued tasks; the worker does the delivery.
type AsynqNotifier struct {
	client   Enqueuer
	maxRetry int
	timeout  time.Duration
}

func NewAsynqNotifier(client Enqueuer, cfg config.NotifyConfig) *AsynqNotifier {
	return &AsynqNotifier{
		client:   client,
		maxRetry: cfg.MaxRetry,
		timeout:  cfg.Timeout,
	}
}

func (n *AsynqNotifier) NotifyReservationCreated(ctx context.Context, ev notify.Event) error {
	return n.enqueue(ctx, ev)
}

func (n *AsynqNotifier) NotifyStatusChanged(ctx context.Context, ev notify.Event) error {
	return n.enqueue(ctx, ev)
}

func (n *AsynqNotifier) NotifyReservationCancelled(ctx context.Context, ev notify.Event) error {
	return n.enqueue(ctx, ev)
}

func (n *AsynqNotifier) NotifyPaymentRecorded(ctx context.Context, ev notify.Event) error {
	return n.enqueue(ctx, ev)
}

func (n *AsynqNotifier) enqueue(ctx context.Context, ev notify.Event) error {
	task, err := NewNotificationTask(ev)
	if err != nil {
		return err
	}

	opts := []asynq.Option{asynq.Queue(QueueNotifications), asynq.MaxRetry(n.maxRetry)}
	if n.timeout > 0 {
		opts = append(opts, asynq.Timeout(n.timeout))
	}

	info, err := n.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "notification enqueued",
		"task_id", info.ID,
		"type", task.Type(),
		"reservation_id", ev.ReservationID.String())
	return nil
}

// LogNotifier only logs events. It backs NOTIFY_DRIVER=log.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyReservationCreated(ctx context.Context, ev notify.Event) error {
	n.log(ctx, ev)
	return nil
}

func (n *LogNotifier) NotifyStatusChanged(ctx context.Context, ev notify.Event) error {
	n.log(ctx, ev)
	return nil
}

func (n *LogNotifier) NotifyReservationCancelled(ctx context.Context, ev notify.Event) error {
	n.log(ctx, ev)
	return nil
}

func (n *LogNotifier) NotifyPaymentRecorded(ctx context.Context, ev notify.Event) error {
	n.log(ctx, ev)
	return nil
}

func (n *LogNotifier) log(ctx context.Context, ev notify.Event) {
	n.logger.InfoContext(ctx, "reservation event",
		"type", string(ev.Type),
		"reservation_id", ev.ReservationID.String(),
		"status", ev.Status,
		"previous_status", ev.PreviousStatus)
}
