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

func TestNewReservation(t *testing.T) {
	calc := reservation.NewPricingCalculator(reservation.DefaultFeeSchedule())
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	t.Run("starts pending with frozen price", func(t *testing.T) {
		prop := builder.NewPropertyBuilder().WithBedrooms(1).MustBuild()
		period := reservation.NewStayPeriod(day(3), day(6))
		quote, err := calc.Quote(prop, period)
		require.NoError(t, err)

		userID := uuid.New()
		r, err := reservation.NewReservation(prop, userID, period, 2, reservation.NewNote("  crib please "), quote, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, prop.ID(), r.PropertyID())
		assert.Equal(t, userID, r.UserID())
		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.Equal(t, 3, r.NumberOfDays())
		assert.Equal(t, quote.Total, r.TotalPrice())
		assert.Equal(t, "crib please", r.SpecialRequests().String())
		assert.Equal(t, int32(1), r.Version())
		assert.False(t, r.Payment().IsPaid)
		assert.True(t, r.PriceIsConsistent())
	})

	t.Run("rejects invalid period and guest count", func(t *testing.T) {
		prop := builder.NewPropertyBuilder().MustBuild()

		_, err := reservation.NewReservation(prop, uuid.New(), reservation.NewStayPeriod(day(3), day(3)), 1, reservation.Note{}, reservation.PriceBreakdown{}, now)
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)

		_, err = reservation.NewReservation(prop, uuid.New(), reservation.NewStayPeriod(day(3), day(4)), 0, reservation.Note{}, reservation.PriceBreakdown{}, now)
		assert.ErrorIs(t, err, reservation.ErrOccupancyExceeded)
	})
}

// total == pricePerDay*days + cleaning + service + tax for any quoted stay.
func TestPriceRoundTripLaw(t *testing.T) {
	calc := reservation.NewPricingCalculator(reservation.DefaultFeeSchedule())

	for _, price := range []int64{0, 1, 999, 1005, 12345, 100000} {
		for _, bedrooms := range []int{0, 1, 3, 7} {
			for days := 1; days <= 15; days++ {
				prop := builder.NewPropertyBuilder().WithPricePerDay(price).WithBedrooms(bedrooms).MustBuild()
				period := reservation.NewStayPeriod(day(1), day(1+days))

				quote, err := calc.Quote(prop, period)
				require.NoError(t, err)

				r, err := reservation.NewReservation(prop, uuid.New(), period, 1, reservation.Note{}, quote, today)
				require.NoError(t, err)

				want := r.PricePerDay().Times(int64(r.NumberOfDays())).Add(r.CleaningFee()).Add(r.ServiceFee()).Add(r.TaxAmount())
				if want != r.TotalPrice() || !r.PriceIsConsistent() {
					t.Fatalf("price=%d bedrooms=%d days=%d: total %s, parts sum %s", price, bedrooms, days, r.TotalPrice(), want)
				}
			}
		}
	}
}

func TestStayPeriod(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		p, err := reservation.ParseStayPeriod("2024-07-01", "2024-07-04")
		require.NoError(t, err)
		assert.Equal(t, 3, p.Days())
		assert.True(t, p.IsValid())
		assert.Equal(t, "2024-07-01/2024-07-04", p.String())
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := reservation.ParseStayPeriod("2024-02-30", "2024-03-02")
		assert.ErrorIs(t, err, reservation.ErrInvalidDate)
	})

	t.Run("clock part is dropped", func(t *testing.T) {
		p := reservation.NewStayPeriod(
			time.Date(2024, 7, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2024, 7, 2, 0, 1, 0, 0, time.UTC),
		)
		assert.Equal(t, 1, p.Days())
	})

	t.Run("leap year month boundary", func(t *testing.T) {
		p, err := reservation.ParseStayPeriod("2024-02-27", "2024-03-02")
		require.NoError(t, err)
		assert.Equal(t, 4, p.Days())
	})
}

func TestClone(t *testing.T) {
	r := builder.NewReservationBuilder().AsConfirmed().BuildDomain()
	c := r.Clone()

	require.NoError(t, c.Cancel("x", today))
	assert.Equal(t, reservation.StatusConfirmed, r.Status())
	assert.NotSame(t, r.Payment().PaidAt, c.Payment().PaidAt)
}
