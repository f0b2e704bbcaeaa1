//go:build unit

package queue_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/mail"
	"stay-booking/internal/infra/queue"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/usecase/notify"
	"stay-booking/tests/common/builder"
	commandsmock "stay-booking/tests/mock/commands"
	notifymock "stay-booking/tests/mock/notify"
	queuemock "stay-booking/tests/mock/queue"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg mail.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func testEvent(typ notify.EventType) notify.Event {
	r := builder.NewReservationBuilder().BuildDomain()
	ev := notify.NewEvent(typ, r, "", r.CreatedAt())
	if typ == notify.EventPaymentRecorded {
		ev.PaymentMethod = "card"
		ev.PaymentReference = "ch_42"
	}
	if typ == notify.EventReservationCancelled {
		ev.CancellationReason = reservation.ReasonCancelledByGuest
	}
	return ev
}

var testRecipients = &notify.Recipients{
	PropertyTitle: "Seaside Cottage",
	Guest:         notify.Contact{Name: "Grace", Email: "grace@example.com"},
	Owner:         notify.Contact{Name: "Olive", Email: "olive@example.com"},
}

// =============================================================================
// Tasks
// =============================================================================

func TestNotificationTask(t *testing.T) {
	ev := testEvent(notify.EventStatusChanged)

	task, err := queue.NewNotificationTask(ev)
	require.NoError(t, err)
	assert.Equal(t, queue.TypeStatusChanged, task.Type())

	parsed, err := queue.ParseNotificationTask(task)
	require.NoError(t, err)
	assert.Equal(t, ev.ReservationID, parsed.ReservationID)
	assert.Equal(t, ev.Status, parsed.Status)

	_, err = queue.NewNotificationTask(notify.Event{Type: "unknown"})
	assert.Error(t, err)

	_, err = queue.ParseNotificationTask(asynq.NewTask(queue.TypeStatusChanged, []byte("{")))
	assert.Error(t, err)
}

// =============================================================================
// AsynqNotifier
// =============================================================================

func TestAsynqNotifier_Enqueue(t *testing.T) {
	ctx := context.Background()
	cfg := config.NotifyConfig{MaxRetry: 3, Timeout: 5 * time.Second}

	testCases := []struct {
		name       string
		notify     func(n *queue.AsynqNotifier, ev notify.Event) error
		evType     notify.EventType
		expectType string
	}{
		{name: "created", notify: func(n *queue.AsynqNotifier, ev notify.Event) error { return n.NotifyReservationCreated(ctx, ev) }, evType: notify.EventReservationCreated, expectType: queue.TypeReservationCreated},
		{name: "status changed", notify: func(n *queue.AsynqNotifier, ev notify.Event) error { return n.NotifyStatusChanged(ctx, ev) }, evType: notify.EventStatusChanged, expectType: queue.TypeStatusChanged},
		{name: "cancelled", notify: func(n *queue.AsynqNotifier, ev notify.Event) error { return n.NotifyReservationCancelled(ctx, ev) }, evType: notify.EventReservationCancelled, expectType: queue.TypeReservationCancelled},
		{name: "payment", notify: func(n *queue.AsynqNotifier, ev notify.Event) error { return n.NotifyPaymentRecorded(ctx, ev) }, evType: notify.EventPaymentRecorded, expectType: queue.TypePaymentRecorded},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := queuemock.NewMockEnqueuer(ctrl)
			client.EXPECT().EnqueueContext(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
					assert.Equal(t, tc.expectType, task.Type())
					assert.Len(t, opts, 3)
					return &asynq.TaskInfo{ID: "task-1", Queue: queue.QueueNotifications}, nil
				})

			err := tc.notify(queue.NewAsynqNotifier(client, cfg), testEvent(tc.evType))
			assert.NoError(t, err)
		})
	}

	t.Run("error: enqueue failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := queuemock.NewMockEnqueuer(ctrl)
		client.EXPECT().EnqueueContext(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("redis unavailable"))

		n := queue.NewAsynqNotifier(client, config.NotifyConfig{MaxRetry: 3})
		err := n.NotifyReservationCreated(ctx, testEvent(notify.EventReservationCreated))
		assert.EqualError(t, err, "redis unavailable")
	})
}

// =============================================================================
// EmailHandler
// =============================================================================

type enqueuedDelivery struct {
	id  string
	msg mail.Message
}

// captureDeliveries records every mail:deliver task handed to the client and
// answers with the next result in order; nil results succeed.
func captureDeliveries(t *testing.T, client *queuemock.MockEnqueuer, results ...error) *[]enqueuedDelivery {
	t.Helper()
	got := &[]enqueuedDelivery{}
	for _, result := range results {
		client.EXPECT().EnqueueContext(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
				require.Equal(t, queue.TypeDeliverMail, task.Type())
				msg, err := queue.ParseDeliverMailTask(task)
				require.NoError(t, err)

				d := enqueuedDelivery{msg: msg}
				for _, o := range opts {
					if o.Type() == asynq.TaskIDOpt {
						d.id, _ = o.Value().(string)
					}
				}
				*got = append(*got, d)
				if result != nil {
					return nil, result
				}
				return &asynq.TaskInfo{ID: d.id, Queue: queue.QueueNotifications}, nil
			})
	}
	return got
}

func TestEmailHandler_ProcessTask(t *testing.T) {
	ctx := context.Background()
	cfg := config.NotifyConfig{MaxRetry: 3, Timeout: 5 * time.Second}

	testCases := []struct {
		name         string
		evType       notify.EventType
		expectTo     []string
		expectInBody string
	}{
		{name: "created mails guest and owner", evType: notify.EventReservationCreated, expectTo: []string{"grace@example.com", "olive@example.com"}, expectInBody: "pending until payment"},
		{name: "status change mails guest", evType: notify.EventStatusChanged, expectTo: []string{"grace@example.com"}, expectInBody: "moved from"},
		{name: "cancellation mails guest and owner", evType: notify.EventReservationCancelled, expectTo: []string{"grace@example.com", "olive@example.com"}, expectInBody: reservation.ReasonCancelledByGuest},
		{name: "payment mails guest", evType: notify.EventPaymentRecorded, expectTo: []string{"grace@example.com"}, expectInBody: "reference ch_42"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ev := testEvent(tc.evType)
			lookup := notifymock.NewMockRecipientLookup(ctrl)
			lookup.EXPECT().RecipientsFor(ctx, ev.ReservationID).Return(testRecipients, nil)

			client := queuemock.NewMockEnqueuer(ctrl)
			got := captureDeliveries(t, client, make([]error, len(tc.expectTo))...)

			handler, err := queue.NewEmailHandler(lookup, client, cfg)
			require.NoError(t, err)

			task, err := queue.NewNotificationTask(ev)
			require.NoError(t, err)
			require.NoError(t, handler.ProcessTask(ctx, task))

			deliveries := *got
			require.Len(t, deliveries, len(tc.expectTo))
			roles := []string{queue.RoleGuest, queue.RoleOwner}
			for i, to := range tc.expectTo {
				assert.Equal(t, to, deliveries[i].msg.To)
				assert.Equal(t, queue.DeliveryTaskID(ev, roles[i]), deliveries[i].id)
				assert.True(t, strings.HasSuffix(deliveries[i].msg.Subject, ": Seaside Cottage"))
			}
			guestBody := deliveries[0].msg.HTMLBody
			assert.Contains(t, guestBody, tc.expectInBody)
			assert.Contains(t, guestBody, "Hello Grace")
			assert.Contains(t, guestBody, ev.TotalPrice)
		})
	}

	t.Run("retried fan-out keeps delivery ids and skips queued mail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ev := testEvent(notify.EventReservationCreated)
		lookup := notifymock.NewMockRecipientLookup(ctrl)
		lookup.EXPECT().RecipientsFor(ctx, ev.ReservationID).Return(testRecipients, nil).Times(2)

		client := queuemock.NewMockEnqueuer(ctrl)
		got := captureDeliveries(t, client,
			nil, errors.New("redis unavailable"),
			asynq.ErrTaskIDConflict, nil,
		)

		handler, err := queue.NewEmailHandler(lookup, client, cfg)
		require.NoError(t, err)
		task, err := queue.NewNotificationTask(ev)
		require.NoError(t, err)

		err = handler.ProcessTask(ctx, task)
		require.Error(t, err)
		assert.False(t, errors.Is(err, asynq.SkipRetry))

		require.NoError(t, handler.ProcessTask(ctx, task))

		deliveries := *got
		require.Len(t, deliveries, 4)
		guestID := queue.DeliveryTaskID(ev, queue.RoleGuest)
		ownerID := queue.DeliveryTaskID(ev, queue.RoleOwner)
		assert.NotEqual(t, guestID, ownerID)
		assert.Equal(t, []string{guestID, ownerID, guestID, ownerID},
			[]string{deliveries[0].id, deliveries[1].id, deliveries[2].id, deliveries[3].id})
	})

	t.Run("unknown reservation is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ev := testEvent(notify.EventStatusChanged)
		lookup := notifymock.NewMockRecipientLookup(ctrl)
		lookup.EXPECT().RecipientsFor(ctx, ev.ReservationID).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found"))

		handler, err := queue.NewEmailHandler(lookup, queuemock.NewMockEnqueuer(ctrl), cfg)
		require.NoError(t, err)

		task, _ := queue.NewNotificationTask(ev)
		assert.NoError(t, handler.ProcessTask(ctx, task))
	})

	t.Run("lookup failure is retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ev := testEvent(notify.EventStatusChanged)
		lookup := notifymock.NewMockRecipientLookup(ctrl)
		lookup.EXPECT().RecipientsFor(ctx, ev.ReservationID).Return(nil, errors.New("db down"))

		handler, err := queue.NewEmailHandler(lookup, queuemock.NewMockEnqueuer(ctrl), cfg)
		require.NoError(t, err)
		task, _ := queue.NewNotificationTask(ev)

		err = handler.ProcessTask(ctx, task)
		require.Error(t, err)
		assert.False(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("malformed payload is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler, err := queue.NewEmailHandler(notifymock.NewMockRecipientLookup(ctrl), queuemock.NewMockEnqueuer(ctrl), cfg)
		require.NoError(t, err)

		err = handler.ProcessTask(ctx, asynq.NewTask(queue.TypeReservationCreated, []byte("not json")))
		assert.True(t, errors.Is(err, asynq.SkipRetry))

		err = handler.ProcessTask(ctx, asynq.NewTask(queue.TypeReservationCreated, []byte(`{"type":"nope"}`)))
		assert.True(t, errors.Is(err, asynq.SkipRetry))
	})
}

// =============================================================================
// DeliveryHandler
// =============================================================================

func TestDeliveryHandler_ProcessTask(t *testing.T) {
	ctx := context.Background()
	msg := mail.Message{To: "grace@example.com", Subject: "Hello: Seaside Cottage", HTMLBody: "<p>hi</p>"}

	t.Run("sends exactly the queued message", func(t *testing.T) {
		sender := &recordingSender{}
		task, err := queue.NewDeliverMailTask(msg)
		require.NoError(t, err)

		require.NoError(t, queue.NewDeliveryHandler(sender).ProcessTask(ctx, task))
		assert.Equal(t, []mail.Message{msg}, sender.sent)
	})

	t.Run("send failure is retried", func(t *testing.T) {
		sender := &recordingSender{err: errors.New("smtp down")}
		task, err := queue.NewDeliverMailTask(msg)
		require.NoError(t, err)

		err = queue.NewDeliveryHandler(sender).ProcessTask(ctx, task)
		require.Error(t, err)
		assert.False(t, errors.Is(err, asynq.SkipRetry))
	})

	t.Run("malformed payload is not retried", func(t *testing.T) {
		err := queue.NewDeliveryHandler(&recordingSender{}).ProcessTask(ctx, asynq.NewTask(queue.TypeDeliverMail, []byte("{")))
		assert.True(t, errors.Is(err, asynq.SkipRetry))
	})
}

// =============================================================================
// MaintenanceHandler
// =============================================================================

func TestMaintenanceHandler_ProcessTask(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		completed int
		err       error
	}{
		{name: "success: completes elapsed reservations", completed: 3},
		{name: "error: failure is returned for retry", err: errors.New("db down")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			completer := commandsmock.NewMockBookingCommands(ctrl)
			completer.EXPECT().CompleteElapsed(ctx).Return(tc.completed, tc.err)

			err := queue.NewMaintenanceHandler(completer).ProcessTask(ctx, queue.NewCompleteElapsedTask())
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
