//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"stay-booking/internal/domain/reservation"
	"stay-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateMachine(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("transition table", func(t *testing.T) {
		all := []reservation.Status{
			reservation.StatusPending,
			reservation.StatusConfirmed,
			reservation.StatusCancelled,
			reservation.StatusCompleted,
		}
		allowed := map[[2]reservation.Status]bool{
			{reservation.StatusPending, reservation.StatusConfirmed}:   true,
			{reservation.StatusPending, reservation.StatusCancelled}:   true,
			{reservation.StatusConfirmed, reservation.StatusCancelled}: true,
			{reservation.StatusConfirmed, reservation.StatusCompleted}: true,
		}
		for _, from := range all {
			for _, to := range all {
				assert.Equal(t, allowed[[2]reservation.Status{from, to}], reservation.CanTransition(from, to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("confirm marks paid", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, r.Confirm(now))

		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.True(t, r.Payment().IsPaid)
		require.NotNil(t, r.Payment().PaidAt)
		assert.Equal(t, now, *r.Payment().PaidAt)
		assert.Equal(t, now, r.UpdatedAt())
	})

	t.Run("cancelled cannot be confirmed", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsCancelled(reservation.ReasonCancelledByGuest).BuildDomain()

		err := r.Confirm(now)
		require.ErrorIs(t, err, reservation.ErrInvalidTransition)

		var tErr *reservation.InvalidTransitionError
		require.ErrorAs(t, err, &tErr)
		assert.Equal(t, reservation.StatusCancelled, tErr.From)
		assert.Equal(t, reservation.StatusConfirmed, tErr.To)
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		assert.ErrorIs(t, r.Complete(now), reservation.ErrInvalidTransition)
		assert.Equal(t, reservation.StatusPending, r.Status())
	})

	t.Run("completed is terminal", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsConfirmed().BuildDomain()
		require.NoError(t, r.Complete(now))
		assert.ErrorIs(t, r.Cancel("late", now), reservation.ErrInvalidTransition)
		assert.ErrorIs(t, r.Confirm(now), reservation.ErrInvalidTransition)
	})

	t.Run("cancel stores trimmed reason", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsConfirmed().BuildDomain()
		require.NoError(t, r.Cancel("  Cancelled by host ", now))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
		assert.Equal(t, reservation.ReasonCancelledByHost, r.CancellationReason())
	})

	t.Run("record payment confirms pending", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		confirmed, err := r.RecordPayment("card", "ch_123", now)
		require.NoError(t, err)

		assert.True(t, confirmed)
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, "card", r.Payment().Method)
		assert.Equal(t, "ch_123", r.Payment().Reference)
		assert.True(t, r.Payment().IsPaid)
	})

	t.Run("record payment on confirmed keeps paid date", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsConfirmed().BuildDomain()
		paidAt := *r.Payment().PaidAt

		confirmed, err := r.RecordPayment("bank", "", now)
		require.NoError(t, err)
		assert.False(t, confirmed)
		assert.Equal(t, paidAt, *r.Payment().PaidAt)
		assert.Equal(t, "bank", r.Payment().Method)
	})

	t.Run("record payment on cancelled fails", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsCancelled("x").BuildDomain()
		_, err := r.RecordPayment("card", "ch_1", now)

		var tErr *reservation.InvalidTransitionError
		require.ErrorAs(t, err, &tErr)
		assert.Equal(t, reservation.StatusCancelled, tErr.From)
		assert.False(t, r.Payment().IsPaid)
	})

	t.Run("record payment requires method", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		_, err := r.RecordPayment("  ", "ref", now)
		assert.ErrorIs(t, err, reservation.ErrEmptyPaymentMethod)
		assert.Equal(t, reservation.StatusPending, r.Status())
	})
}

func TestCancellationPolicy(t *testing.T) {
	policy := reservation.NewCancellationPolicy(reservation.DefaultCancellationWindowDays)

	tests := []struct {
		name       string
		checkIn    time.Time
		privileged bool
		wantErr    bool
	}{
		{name: "guest well ahead", checkIn: day(10)},
		{name: "guest exactly two days ahead", checkIn: day(2)},
		{name: "guest one day ahead", checkIn: day(1), wantErr: true},
		{name: "guest on check-in day", checkIn: day(0), wantErr: true},
		{name: "admin one day ahead", checkIn: day(1), privileged: true},
		{name: "owner after check-in", checkIn: day(-1), privileged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := builder.NewReservationBuilder().WithDates(tt.checkIn, tt.checkIn.AddDate(0, 0, 3)).BuildDomain()

			err := policy.Check(r, today, tt.privileged)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, reservation.ErrCancellationWindow)

			var wErr *reservation.CancellationWindowError
			require.ErrorAs(t, err, &wErr)
			assert.Equal(t, reservation.DefaultCancellationWindowDays, wErr.MinimumDays)
		})
	}

	t.Run("negative window is clamped", func(t *testing.T) {
		assert.Equal(t, 0, reservation.NewCancellationPolicy(-3).MinDaysBeforeCheckIn)
	})
}

func TestCancellationReasonFor(t *testing.T) {
	guest := uuid.New()
	r := builder.NewReservationBuilder().WithUserID(guest).BuildDomain()

	assert.Equal(t, reservation.ReasonCancelledByGuest, reservation.CancellationReasonFor(r, guest))
	assert.Equal(t, reservation.ReasonCancelledByHost, reservation.CancellationReasonFor(r, uuid.New()))
}
