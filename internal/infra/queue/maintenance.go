package queue

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
)

// ElapsedCompleter is satisfied by commands.BookingCommands.
type ElapsedCompleter interface {
	CompleteElapsed(ctx context.Context) (int, error)
}

type MaintenanceHandler struct {
	completer ElapsedCompleter
}

func NewMaintenanceHandler(completer ElapsedCompleter) *MaintenanceHandler {
	return &MaintenanceHandler{completer: completer}
}

func (h *MaintenanceHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	completed, err := h.completer.CompleteElapsed(ctx)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "completed elapsed reservations", "count", completed)
	return nil
}

// NewServeMux routes every task type the worker handles.
func NewServeMux(email *EmailHandler, delivery *DeliveryHandler, maintenance *MaintenanceHandler) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	for _, typ := range NotificationTaskTypes() {
		mux.Handle(typ, email)
	}
	mux.Handle(TypeDeliverMail, delivery)
	mux.Handle(TypeCompleteElapsed, maintenance)
	return mux
}
