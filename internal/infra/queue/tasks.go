package queue

import (
	"encoding/json"
	"fmt"

	"stay-booking/internal/infra/mail"
	"stay-booking/internal/usecase/notify"

	"github.com/hibiken/asynq"
)

const (
	TypeReservationCreated   = "notification:reservation_created"
	TypeStatusChanged        = "notification:status_changed"
	TypeReservationCancelled = "notification:reservation_cancelled"
	TypePaymentRecorded      = "notification:payment_recorded"
	TypeCompleteElapsed      = "maintenance:complete_elapsed"
	TypeDeliverMail          = "mail:deliver"

	QueueNotifications = "notifications"
	QueueMaintenance   = "maintenance"
)

var taskTypes = map[notify.EventType]string{
	notify.EventReservationCreated:   TypeReservationCreated,
	notify.EventStatusChanged:        TypeStatusChanged,
	notify.EventReservationCancelled: TypeReservationCancelled,
	notify.EventPaymentRecorded:      TypePaymentRecorded,
}

// NotificationTaskTypes lists every task type the email handler serves.
func NotificationTaskTypes() []string {
	return []string{TypeReservationCreated, TypeStatusChanged, TypeReservationCancelled, TypePaymentRecorded}
}

func NewNotificationTask(ev notify.Event) (*asynq.Task, error) {
	typ, ok := taskTypes[ev.Type]
	if !ok {
		return nil, fmt.Errorf("no task type for event %q", ev.Type)
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(typ, b), nil
}

func ParseNotificationTask(task *asynq.Task) (notify.Event, error) {
	var ev notify.Event
	if err := json.Unmarshal(task.Payload(), &ev); err != nil {
		return notify.Event{}, fmt.Errorf("invalid %s payload: %w", task.Type(), err)
	}
	return ev, nil
}

type deliverMailPayload struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}

// NewDeliverMailTask carries one rendered message for one recipient.
func NewDeliverMailTask(msg mail.Message) (*asynq.Task, error) {
	b, err := json.Marshal(deliverMailPayload{To: msg.To, Subject: msg.Subject, HTMLBody: msg.HTMLBody})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDeliverMail, b), nil
}

func ParseDeliverMailTask(task *asynq.Task) (mail.Message, error) {
	var p deliverMailPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return mail.Message{}, fmt.Errorf("invalid %s payload: %w", task.Type(), err)
	}
	return mail.Message{To: p.To, Subject: p.Subject, HTMLBody: p.HTMLBody}, nil
}

func NewCompleteElapsedTask() *asynq.Task {
	return asynq.NewTask(TypeCompleteElapsed, nil)
}
