//go:build unit

package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/usecase/notify"
	"stay-booking/tests/common/builder"
	notifymock "stay-booking/tests/mock/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type countingRecorder struct {
	failures atomic.Int32
}

func (r *countingRecorder) NotificationFailed(string) {
	r.failures.Add(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEvent(typ notify.EventType) notify.Event {
	r := builder.NewReservationBuilder().AsConfirmed().BuildDomain()
	return notify.NewEvent(typ, r, reservation.StatusPending, r.UpdatedAt())
}

func TestNewEvent(t *testing.T) {
	r := builder.NewReservationBuilder().
		With(func(b *builder.ReservationBuilder) {
			b.CheckIn = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
			b.CheckOut = time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)
		}).
		AsCancelled(reservation.ReasonCancelledByHost).
		BuildDomain()

	ev := notify.NewEvent(notify.EventReservationCancelled, r, reservation.StatusConfirmed, r.UpdatedAt())

	assert.Equal(t, r.ID(), ev.ReservationID)
	assert.Equal(t, "CONFIRMED", ev.PreviousStatus)
	assert.Equal(t, "CANCELLED", ev.Status)
	assert.Equal(t, "2024-07-01", ev.CheckIn)
	assert.Equal(t, "2024-07-04", ev.CheckOut)
	assert.Equal(t, r.TotalPrice().String(), ev.TotalPrice)
	assert.Equal(t, reservation.ReasonCancelledByHost, ev.CancellationReason)
}

func TestDispatcher_RoutesEventTypes(t *testing.T) {
	testCases := []struct {
		name   string
		typ    notify.EventType
		expect func(m *notifymock.MockNotifier, done chan struct{})
	}{
		{
			name: "reservation created",
			typ:  notify.EventReservationCreated,
			expect: func(m *notifymock.MockNotifier, done chan struct{}) {
				m.EXPECT().NotifyReservationCreated(gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, notify.Event) error { close(done); return nil })
			},
		},
		{
			name: "status changed",
			typ:  notify.EventStatusChanged,
			expect: func(m *notifymock.MockNotifier, done chan struct{}) {
				m.EXPECT().NotifyStatusChanged(gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, notify.Event) error { close(done); return nil })
			},
		},
		{
			name: "reservation cancelled",
			typ:  notify.EventReservationCancelled,
			expect: func(m *notifymock.MockNotifier, done chan struct{}) {
				m.EXPECT().NotifyReservationCancelled(gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, notify.Event) error { close(done); return nil })
			},
		},
		{
			name: "payment recorded",
			typ:  notify.EventPaymentRecorded,
			expect: func(m *notifymock.MockNotifier, done chan struct{}) {
				m.EXPECT().NotifyPaymentRecorded(gomock.Any(), gomock.Any()).
					DoAndReturn(func(context.Context, notify.Event) error { close(done); return nil })
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			notifier := notifymock.NewMockNotifier(ctrl)
			done := make(chan struct{})
			tc.expect(notifier, done)

			d := notify.NewDispatcher(notifier, time.Second, discardLogger(), nil)
			d.Dispatch(context.Background(), newEvent(tc.typ))

			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("notifier was not called")
			}
			require.NoError(t, d.Close(context.Background()))
		})
	}
}

func TestDispatcher_FailuresDoNotReachCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := notifymock.NewMockNotifier(ctrl)
	notifier.EXPECT().NotifyReservationCreated(gomock.Any(), gomock.Any()).
		Return(errors.New("smtp down"))
	notifier.EXPECT().NotifyStatusChanged(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, notify.Event) error { panic("boom") })

	recorder := &countingRecorder{}
	d := notify.NewDispatcher(notifier, time.Second, discardLogger(), recorder)

	d.Dispatch(context.Background(), newEvent(notify.EventReservationCreated))
	d.Dispatch(context.Background(), newEvent(notify.EventStatusChanged))

	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, int32(2), recorder.failures.Load())
}

func TestDispatcher_DetachesFromCallerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notifier := notifymock.NewMockNotifier(ctrl)
	release := make(chan struct{})
	var sendErr atomic.Value
	notifier.EXPECT().NotifyPaymentRecorded(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ notify.Event) error {
			<-release
			sendErr.Store(ctx.Err() == nil)
			return nil
		})

	d := notify.NewDispatcher(notifier, time.Second, discardLogger(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	d.Dispatch(ctx, newEvent(notify.EventPaymentRecorded))
	cancel()
	close(release)

	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, true, sendErr.Load())
}

func TestDispatcher_Close(t *testing.T) {
	t.Run("drops events after close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// No expectations: any notifier call fails the test.
		notifier := notifymock.NewMockNotifier(ctrl)
		d := notify.NewDispatcher(notifier, time.Second, discardLogger(), nil)

		require.NoError(t, d.Close(context.Background()))
		d.Dispatch(context.Background(), newEvent(notify.EventReservationCreated))
		require.NoError(t, d.Close(context.Background()))
	})

	t.Run("gives up when ctx expires", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		notifier := notifymock.NewMockNotifier(ctrl)
		release := make(chan struct{})
		notifier.EXPECT().NotifyReservationCreated(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, notify.Event) error {
				<-release
				return nil
			})

		d := notify.NewDispatcher(notifier, time.Minute, discardLogger(), nil)
		d.Dispatch(context.Background(), newEvent(notify.EventReservationCreated))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)

		close(release)
	})
}
