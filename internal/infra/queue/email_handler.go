package queue

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"stay-booking/internal/infra"
	"stay-booking/internal/infra/mail"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/usecase/notify"

	"github.com/hibiken/asynq"
)

//go:embed templates/*.html
var templateFS embed.FS

// deliveryRetention keeps finished delivery ids reserved long enough to
// cover retries of the notification task.
const deliveryRetention = 24 * time.Hour

const (
	RoleGuest = "guest"
	RoleOwner = "owner"
)

type emailSpec struct {
	file         string
	guestSubject string
	ownerSubject string // empty: the owner is not mailed
}

var emailSpecs = map[notify.EventType]emailSpec{
	notify.EventReservationCreated: {
		file:         "reservation_created.html",
		guestSubject: "Your reservation request was received",
		ownerSubject: "New reservation request",
	},
	notify.EventStatusChanged: {
		file:         "status_changed.html",
		guestSubject: "Your reservation status changed",
	},
	notify.EventReservationCancelled: {
		file:         "reservation_cancelled.html",
		guestSubject: "Your reservation was cancelled",
		ownerSubject: "A reservation was cancelled",
	},
	notify.EventPaymentRecorded: {
		file:         "payment_recorded.html",
		guestSubject: "Payment recorded for your reservation",
	},
}

type emailData struct {
	RecipientName string
	PropertyTitle string
	ForOwner      bool
	Event         notify.Event
}

// EmailHandler renders notification tasks and fans them out as one
// mail:deliver task per recipient, so a failed send only retries that mail.
type EmailHandler struct {
	recipients notify.RecipientLookup
	client     Enqueuer
	maxRetry   int
	timeout    time.Duration
	templates  map[notify.EventType]*template.Template
}

func NewEmailHandler(recipients notify.RecipientLookup, client Enqueuer, cfg config.NotifyConfig) (*EmailHandler, error) {
	templates := make(map[notify.EventType]*template.Template, len(emailSpecs))
	for typ, spec := range emailSpecs {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+spec.file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", spec.file, err)
		}
		templates[typ] = t
	}
	return &EmailHandler{
		recipients: recipients,
		client:     client,
		maxRetry:   cfg.MaxRetry,
		timeout:    cfg.Timeout,
		templates:  templates,
	}, nil
}

type addressedMail struct {
	role string
	msg  mail.Message
}

func (h *EmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	ev, err := ParseNotificationTask(task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	spec, ok := emailSpecs[ev.Type]
	if !ok {
		return fmt.Errorf("%w: unknown event type %q", asynq.SkipRetry, ev.Type)
	}

	recipients, err := h.recipients.RecipientsFor(ctx, ev.ReservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.WarnContext(ctx, "dropping notification for unknown reservation",
				"reservation_id", ev.ReservationID.String(),
				"type", task.Type())
			return nil
		}
		return err
	}

	mails, err := h.render(ev, spec, recipients)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	for _, m := range mails {
		if err := h.enqueueDelivery(ctx, DeliveryTaskID(ev, m.role), m); err != nil {
			return err
		}
	}
	return nil
}

// DeliveryTaskID is stable across retries of the same event, so a retried
// fan-out skips recipients whose delivery is already queued.
func DeliveryTaskID(ev notify.Event, role string) string {
	return fmt.Sprintf("%s:%s:%d:%s", ev.ReservationID, ev.Type, ev.OccurredAt.UnixNano(), role)
}

func (h *EmailHandler) enqueueDelivery(ctx context.Context, id string, m addressedMail) error {
	task, err := NewDeliverMailTask(m.msg)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	opts := []asynq.Option{
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(h.maxRetry),
		asynq.TaskID(id),
		asynq.Retention(deliveryRetention),
	}
	if h.timeout > 0 {
		opts = append(opts, asynq.Timeout(h.timeout))
	}

	if _, err := h.client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue %s mail: %w", m.role, err)
	}
	return nil
}

func (h *EmailHandler) render(ev notify.Event, spec emailSpec, r *notify.Recipients) ([]addressedMail, error) {
	mails := make([]addressedMail, 0, 2)

	guest, err := h.renderOne(ev, spec.guestSubject, r.Guest, r.PropertyTitle, false)
	if err != nil {
		return nil, err
	}
	mails = append(mails, addressedMail{role: RoleGuest, msg: guest})

	if spec.ownerSubject != "" {
		owner, err := h.renderOne(ev, spec.ownerSubject, r.Owner, r.PropertyTitle, true)
		if err != nil {
			return nil, err
		}
		mails = append(mails, addressedMail{role: RoleOwner, msg: owner})
	}
	return mails, nil
}

func (h *EmailHandler) renderOne(ev notify.Event, subject string, to notify.Contact, title string, forOwner bool) (mail.Message, error) {
	var body bytes.Buffer
	data := emailData{
		RecipientName: to.Name,
		PropertyTitle: title,
		ForOwner:      forOwner,
		Event:         ev,
	}
	if err := h.templates[ev.Type].ExecuteTemplate(&body, "layout", data); err != nil {
		return mail.Message{}, fmt.Errorf("failed to render %s email: %w", ev.Type, err)
	}
	return mail.Message{
		To:       to.Email,
		Subject:  subject + ": " + title,
		HTMLBody: body.String(),
	}, nil
}

// DeliveryHandler sends a single rendered mail.
type DeliveryHandler struct {
	sender mail.Sender
}

func NewDeliveryHandler(sender mail.Sender) *DeliveryHandler {
	return &DeliveryHandler{sender: sender}
}

func (h *DeliveryHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	msg, err := ParseDeliverMailTask(task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	return h.sender.Send(ctx, msg)
}
